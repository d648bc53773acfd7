package pkgmgr

import (
	"context"
	osexec "os/exec"

	"github.com/pkg/errors"
	"github.com/vcnkl/provision/exec"
)

type Flatpak struct {
	runner   exec.Runner
	bin      string
	lookPath func(string) (string, error)
}

func NewFlatpak(runner exec.Runner) *Flatpak {
	return &Flatpak{runner: runner, bin: "flatpak", lookPath: osexec.LookPath}
}

func (f *Flatpak) Available() bool {
	_, err := f.lookPath(f.bin)
	return err == nil
}

// AddRemote registers the remote system-wide; adding an existing remote is
// not an error.
func (f *Flatpak) AddRemote(ctx context.Context, name, url string) error {
	err := f.runner.Run(ctx, exec.Sudo(f.bin, "remote-add", "--if-not-exists", name, url))
	return errors.Wrapf(err, "flatpak remote-add %s", name)
}

func (f *Flatpak) Install(ctx context.Context, remote, app string) error {
	err := f.runner.Run(ctx, exec.Cmd(f.bin, "install", "-y", "--noninteractive", remote, app))
	return errors.Wrapf(err, "flatpak install %s", app)
}
