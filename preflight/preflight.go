package preflight

import (
	"os"
	osexec "os/exec"

	"github.com/pkg/errors"
)

var (
	ErrRunningAsRoot   = errors.New("do not run as root; run as a regular user with sudo rights")
	ErrElevatorMissing = errors.New("elevation helper not found")
)

type Checker struct {
	Geteuid  func() int
	LookPath func(file string) (string, error)
}

func New() *Checker {
	return &Checker{
		Geteuid:  os.Geteuid,
		LookPath: osexec.LookPath,
	}
}

// Check refuses the superuser and requires the elevation helper on PATH.
func (c *Checker) Check(elevator string) error {
	if c.Geteuid() == 0 {
		return ErrRunningAsRoot
	}
	if _, err := c.LookPath(elevator); err != nil {
		return errors.Wrapf(ErrElevatorMissing, "%s is required to install packages", elevator)
	}
	return nil
}
