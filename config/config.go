package config

import (
	"slices"
	"time"
)

// Config is read once at startup and never mutated afterwards. Accessors
// hand out copies so callers cannot alter the lists of another flow.
type Config struct {
	path    string
	profile Profile
}

func New(profile Profile) *Config {
	profile.SetDefaults()
	return &Config{profile: profile}
}

func Default() *Config {
	return New(Profile{})
}

func (c *Config) Path() string {
	return c.path
}

func (c *Config) Shell() string {
	return c.profile.Shell
}

func (c *Config) Elevator() string {
	return c.profile.Elevator
}

func (c *Config) CommandTimeout() time.Duration {
	return c.profile.CommandTimeout
}

func (c *Config) StrictConfirm() bool {
	return c.profile.StrictConfirm
}

func (c *Config) Env() map[string]string {
	env := make(map[string]string, len(c.profile.Env))
	for k, v := range c.profile.Env {
		env[k] = v
	}
	return env
}

func (c *Config) Packages() PackagesConfig {
	return PackagesConfig{
		Install: slices.Clone(c.profile.Packages.Install),
		Remove:  slices.Clone(c.profile.Packages.Remove),
	}
}

func (c *Config) Flatpak() FlatpakConfig {
	f := c.profile.Flatpak
	f.Apps = slices.Clone(f.Apps)
	return f
}

func (c *Config) Nvidia() NvidiaConfig {
	n := c.profile.Nvidia
	n.Packages = slices.Clone(n.Packages)
	secureBoot := *n.SecureBoot
	n.SecureBoot = &secureBoot
	return n
}

func (c *Config) Brave() BraveConfig {
	return c.profile.Brave
}

func (c *Config) RPMFusion() RPMFusionConfig {
	r := c.profile.RPMFusion
	r.ReleaseURLs = slices.Clone(r.ReleaseURLs)
	r.Exclude = slices.Clone(r.Exclude)
	return r
}
