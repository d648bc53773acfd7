package config

var defaultInstall = []string{
	"dnf-plugins-core",
	"git",
	"curl",
	"wget",
	"vim-enhanced",
	"htop",
	"fastfetch",
	"gnome-tweaks",
	"unzip",
	"p7zip",
}

// Pre-bundled GNOME applications most desktops never use.
var defaultRemove = []string{
	"gnome-contacts",
	"gnome-weather",
	"gnome-maps",
	"gnome-tour",
	"gnome-boxes",
	"gnome-connections",
	"totem",
	"rhythmbox",
	"cheese",
	"simple-scan",
	"mediawriter",
	"libreoffice-core",
}

var defaultFlatpakApps = []string{
	"com.github.tchx84.Flatseal",
}
