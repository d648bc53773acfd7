package pkgmgr

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/vcnkl/provision/exec"
)

// Akmods drives the akmods signing key tooling and module metadata queries.
type Akmods struct {
	runner exec.Runner
}

func NewAkmods(runner exec.Runner) *Akmods {
	return &Akmods{runner: runner}
}

func (a *Akmods) GenerateSigningKey(ctx context.Context) error {
	return errors.Wrap(a.runner.Run(ctx, exec.Sudo("kmodgenca", "-a")), "kmodgenca")
}

// EnrollKey queues the certificate for MOK enrollment. mokutil asks the
// operator for a one-time password, so stdin stays attached.
func (a *Akmods) EnrollKey(ctx context.Context, cert string) error {
	cmd := exec.Sudo("mokutil", "--import", cert)
	cmd.Interactive = true
	return errors.Wrapf(a.runner.Run(ctx, cmd), "mokutil --import %s", cert)
}

func (a *Akmods) ModuleVersion(ctx context.Context, module string) (string, error) {
	out, err := a.runner.Output(ctx, exec.Cmd("modinfo", "-F", "version", module))
	if err != nil {
		return "", errors.Wrapf(err, "modinfo %s", module)
	}
	if out == "" {
		return "", errors.Errorf("module %s reports no version", module)
	}
	return out, nil
}

// ModuleFile matches the compiled module file for name, compressed or not.
func ModuleFile(name string) func(string) bool {
	prefix := name + ".ko"
	return func(base string) bool {
		if !strings.HasPrefix(base, prefix) {
			return false
		}
		switch strings.TrimPrefix(base, prefix) {
		case "", ".xz", ".zst", ".gz":
			return true
		}
		return false
	}
}
