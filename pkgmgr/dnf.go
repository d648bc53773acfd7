package pkgmgr

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/vcnkl/provision/exec"
)

type DNF struct {
	runner exec.Runner
	bin    string
}

func NewDNF(runner exec.Runner) *DNF {
	return &DNF{runner: runner, bin: "dnf"}
}

func (d *DNF) Install(ctx context.Context, pkgs ...string) error {
	if len(pkgs) == 0 {
		return errors.New("no packages specified for installation")
	}
	args := append([]string{d.bin, "install", "-y"}, pkgs...)
	return errors.Wrapf(d.runner.Run(ctx, exec.Sudo(args...)), "dnf install %s", strings.Join(pkgs, " "))
}

func (d *DNF) Remove(ctx context.Context, pkgs ...string) error {
	if len(pkgs) == 0 {
		return errors.New("no packages specified for removal")
	}
	args := append([]string{d.bin, "remove", "-y"}, pkgs...)
	return errors.Wrapf(d.runner.Run(ctx, exec.Sudo(args...)), "dnf remove %s", strings.Join(pkgs, " "))
}

func (d *DNF) Autoremove(ctx context.Context) error {
	return errors.Wrap(d.runner.Run(ctx, exec.Sudo(d.bin, "autoremove", "-y")), "dnf autoremove")
}

func (d *DNF) Upgrade(ctx context.Context, args ...string) error {
	full := append([]string{d.bin, "upgrade", "-y"}, args...)
	return errors.Wrap(d.runner.Run(ctx, exec.Sudo(full...)), "dnf upgrade")
}

func (d *DNF) Swap(ctx context.Context, from, to string) error {
	err := d.runner.Run(ctx, exec.Sudo(d.bin, "swap", "-y", from, to, "--allowerasing"))
	return errors.Wrapf(err, "dnf swap %s %s", from, to)
}

// SetOption persists a repo option through the dnf5 config-manager, e.g.
// "fedora-cisco-openh264.enabled=1".
func (d *DNF) SetOption(ctx context.Context, option string) error {
	err := d.runner.Run(ctx, exec.Sudo(d.bin, "config-manager", "setopt", option))
	return errors.Wrapf(err, "dnf config-manager setopt %s", option)
}

func (d *DNF) ReleaseVersion(ctx context.Context) (string, error) {
	out, err := d.runner.Output(ctx, exec.Cmd("rpm", "-E", "%fedora"))
	if err != nil {
		return "", errors.Wrap(err, "rpm -E %fedora")
	}
	if out == "" || strings.Contains(out, "%") {
		return "", errors.Errorf("unexpected release version %q", out)
	}
	return out, nil
}
