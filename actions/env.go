package actions

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sys/unix"

	"github.com/vcnkl/provision/batch"
	"github.com/vcnkl/provision/config"
	"github.com/vcnkl/provision/exec"
	"github.com/vcnkl/provision/logger"
	"github.com/vcnkl/provision/models"
	"github.com/vcnkl/provision/pkgmgr"
	"github.com/vcnkl/provision/prompt"
	"github.com/vcnkl/provision/ui"
	"github.com/vcnkl/provision/watcher"
)

// Env carries the collaborators every flow needs.
type Env struct {
	Config   *config.Config
	Packages pkgmgr.PackageManager
	Sandbox  pkgmgr.SandboxManager
	Modules  pkgmgr.KernelModules
	Runner   exec.Runner
	Confirm  prompt.Confirmer
	Out      *ui.Printer
	Log      logger.Logger
	DryRun   bool

	KernelRelease func() (string, error)
	WaitForFile   func(ctx context.Context, root string, match watcher.MatchFunc, timeout time.Duration) (string, error)
}

func NewEnv(cfg *config.Config, runner exec.Runner, confirm prompt.Confirmer, out *ui.Printer, log logger.Logger) *Env {
	return &Env{
		Config:        cfg,
		Packages:      pkgmgr.NewDNF(runner),
		Sandbox:       pkgmgr.NewFlatpak(runner),
		Modules:       pkgmgr.NewAkmods(runner),
		Runner:        runner,
		Confirm:       confirm,
		Out:           out,
		Log:           log,
		KernelRelease: kernelRelease,
		WaitForFile:   watcher.WaitForFile,
	}
}

// PreconditionError aborts the whole process rather than one flow.
type PreconditionError struct {
	Reason string
	Err    error
}

func (e *PreconditionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	return e.Reason
}

func (e *PreconditionError) Unwrap() error {
	return e.Err
}

func (e *Env) run(ctx context.Context, label string, kind models.Kind, items []models.WorkItem, opts ...batch.Option) *models.Summary {
	start := time.Now()
	log := e.Log.WithPrefix(string(kind))

	opts = append(opts, batch.WithObserver(func(o models.Outcome) {
		e.Out.Outcome(kind, o)
		if !o.Succeeded() {
			log.Warn("item failed", logger.String("item", o.ID), logger.Err(o.Err))
		}
	}))

	if e.DryRun {
		e.Out.Faint("dry run: state-changing commands are logged, not executed")
	}
	summary := batch.Run(ctx, kind, items, opts...)

	log.Info("batch completed",
		logger.String("batch", label),
		logger.Int("total", summary.Total),
		logger.Strings("failed", summary.FailedIDs()),
		logger.Duration("duration", time.Since(start)))

	return summary
}

func kernelRelease() (string, error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return "", err
	}
	return unix.ByteSliceToString(uts.Release[:]), nil
}
