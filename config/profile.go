package config

import "time"

type Profile struct {
	Shell          string            `koanf:"shell"`
	Elevator       string            `koanf:"elevator"`
	CommandTimeout time.Duration     `koanf:"command_timeout"`
	StrictConfirm  bool              `koanf:"strict_confirm"`
	Env            map[string]string `koanf:"env"`
	Packages       PackagesConfig    `koanf:"packages"`
	Flatpak        FlatpakConfig     `koanf:"flatpak"`
	Nvidia         NvidiaConfig      `koanf:"nvidia"`
	Brave          BraveConfig       `koanf:"brave"`
	RPMFusion      RPMFusionConfig   `koanf:"rpmfusion"`
}

type PackagesConfig struct {
	Install []string `koanf:"install"`
	Remove  []string `koanf:"remove"`
}

type FlatpakConfig struct {
	Remote    string   `koanf:"remote"`
	RemoteURL string   `koanf:"remote_url"`
	Apps      []string `koanf:"apps"`
}

type NvidiaConfig struct {
	Packages     []string      `koanf:"packages"`
	SecureBoot   *bool         `koanf:"secure_boot"`
	SigningCert  string        `koanf:"signing_cert"`
	Module       string        `koanf:"module"`
	ModuleRoot   string        `koanf:"module_root"`
	BuildTimeout time.Duration `koanf:"build_timeout"`
}

type BraveConfig struct {
	InstallScript string `koanf:"install_script"`
}

// ReleaseURLs may contain ReleasePlaceholder, substituted with the running
// Fedora release before install.
type RPMFusionConfig struct {
	ReleaseURLs     []string `koanf:"release_urls"`
	OpenH264Repo    string   `koanf:"openh264_repo"`
	SwapFrom        string   `koanf:"swap_from"`
	SwapTo          string   `koanf:"swap_to"`
	MultimediaGroup string   `koanf:"multimedia_group"`
	Exclude         []string `koanf:"exclude"`
}

const ReleasePlaceholder = "%fedora"

func (p *Profile) SetDefaults() {
	if p.Shell == "" {
		p.Shell = "/bin/sh"
	}
	if p.Elevator == "" {
		p.Elevator = "sudo"
	}
	if p.Env == nil {
		p.Env = make(map[string]string)
	}
	p.Packages.SetDefaults()
	p.Flatpak.SetDefaults()
	p.Nvidia.SetDefaults()
	p.Brave.SetDefaults()
	p.RPMFusion.SetDefaults()
}

func (p *PackagesConfig) SetDefaults() {
	if p.Install == nil {
		p.Install = append([]string(nil), defaultInstall...)
	}
	if p.Remove == nil {
		p.Remove = append([]string(nil), defaultRemove...)
	}
}

func (f *FlatpakConfig) SetDefaults() {
	if f.Remote == "" {
		f.Remote = "flathub"
	}
	if f.RemoteURL == "" {
		f.RemoteURL = "https://dl.flathub.org/repo/flathub.flatpakrepo"
	}
	if f.Apps == nil {
		f.Apps = append([]string(nil), defaultFlatpakApps...)
	}
}

func (n *NvidiaConfig) SetDefaults() {
	if n.Packages == nil {
		n.Packages = []string{"akmod-nvidia", "xorg-x11-drv-nvidia-cuda"}
	}
	if n.SecureBoot == nil {
		secureBoot := true
		n.SecureBoot = &secureBoot
	}
	if n.SigningCert == "" {
		n.SigningCert = "/etc/pki/akmods/certs/public_key.der"
	}
	if n.Module == "" {
		n.Module = "nvidia"
	}
	if n.ModuleRoot == "" {
		n.ModuleRoot = "/lib/modules"
	}
	if n.BuildTimeout == 0 {
		n.BuildTimeout = 10 * time.Minute
	}
}

func (b *BraveConfig) SetDefaults() {
	if b.InstallScript == "" {
		b.InstallScript = "https://dl.brave.com/install.sh"
	}
}

func (r *RPMFusionConfig) SetDefaults() {
	if r.ReleaseURLs == nil {
		r.ReleaseURLs = []string{
			"https://mirrors.rpmfusion.org/free/fedora/rpmfusion-free-release-" + ReleasePlaceholder + ".noarch.rpm",
			"https://mirrors.rpmfusion.org/nonfree/fedora/rpmfusion-nonfree-release-" + ReleasePlaceholder + ".noarch.rpm",
		}
	}
	if r.OpenH264Repo == "" {
		r.OpenH264Repo = "fedora-cisco-openh264"
	}
	if r.SwapFrom == "" {
		r.SwapFrom = "ffmpeg-free"
	}
	if r.SwapTo == "" {
		r.SwapTo = "ffmpeg"
	}
	if r.MultimediaGroup == "" {
		r.MultimediaGroup = "@multimedia"
	}
	if r.Exclude == nil {
		r.Exclude = []string{"PackageKit-gstreamer-plugin"}
	}
}
