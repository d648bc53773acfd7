package config

import (
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const EnvConfigPath = "PROVISION_CONFIG"

// Load reads the profile at path. An empty path falls back to
// $PROVISION_CONFIG and then the user config dir; when none of those
// exist the built-in defaults are used.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = os.Getenv(EnvConfigPath)
		explicit = path != ""
	}
	if !explicit {
		path = defaultPath()
	}

	if path == "" {
		return Default(), nil
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !explicit {
			return Default(), nil
		}
		return nil, errors.Wrapf(err, "failed to read profile %s", path)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "failed to read profile %s", path)
	}

	var profile Profile
	if err := k.Unmarshal("", &profile); err != nil {
		return nil, errors.Wrapf(err, "failed to parse profile %s", path)
	}

	cfg := New(profile)
	cfg.path = path
	return cfg, nil
}

func defaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "provision", "profile.yml")
}
