package actions

import (
	"context"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/vcnkl/provision/batch"
	"github.com/vcnkl/provision/config"
	"github.com/vcnkl/provision/logger"
	"github.com/vcnkl/provision/models"
	"github.com/vcnkl/provision/pkgmgr"
)

type NvidiaAction struct {
	env *Env
}

func NewNvidiaAction(env *Env) *NvidiaAction {
	return &NvidiaAction{env: env}
}

// Execute runs every step even when an earlier one failed.
func (a *NvidiaAction) Execute(ctx context.Context) (*models.Summary, error) {
	cfg := a.env.Config.Nvidia()

	a.env.Out.Title("Installing NVIDIA drivers")
	a.env.Out.Warn("This needs the RPM Fusion nonfree repository and a reboot afterwards")
	if !a.env.Confirm.Confirm("Install the proprietary NVIDIA drivers?") {
		a.env.Out.Info("Skipping NVIDIA driver installation")
		return nil, nil
	}

	steps := []models.WorkItem{
		batch.Step("refresh system", func(ctx context.Context) error {
			return a.env.Packages.Upgrade(ctx, "--refresh")
		}),
		batch.Step("install driver packages", func(ctx context.Context) error {
			return a.env.Packages.Install(ctx, cfg.Packages...)
		}),
	}

	if *cfg.SecureBoot {
		steps = append(steps,
			batch.Step("generate signing key", a.env.Modules.GenerateSigningKey),
			batch.Step("enroll signing key", func(ctx context.Context) error {
				a.env.Out.Info("mokutil will ask for a one-time password; enter it again at the next boot")
				return a.env.Modules.EnrollKey(ctx, cfg.SigningCert)
			}),
		)
	}

	if !a.env.DryRun {
		steps = append(steps,
			batch.Step("wait for kernel module", func(ctx context.Context) error {
				return a.waitForModule(ctx, cfg)
			}),
			batch.Step("query module version", func(ctx context.Context) error {
				version, err := a.env.Modules.ModuleVersion(ctx, cfg.Module)
				if err != nil {
					return err
				}
				a.env.Out.Success("%s kernel module version %s", cfg.Module, version)
				return nil
			}),
		)
	}

	summary := a.env.run(ctx, "nvidia", models.KindSetup, steps)
	a.env.Out.Summary("Install NVIDIA drivers", summary)
	if summary.OK() {
		a.env.Out.Warn("Reboot to load the NVIDIA driver")
	}
	return summary, nil
}

// waitForModule blocks until akmods has built the module for the running
// kernel, which happens in the background after the driver install.
func (a *NvidiaAction) waitForModule(ctx context.Context, cfg config.NvidiaConfig) error {
	release, err := a.env.KernelRelease()
	if err != nil {
		return errors.Wrap(err, "failed to read kernel release")
	}

	root := filepath.Join(cfg.ModuleRoot, release, "extra")
	a.env.Out.Info("Waiting up to %s for akmods to build the %s module", cfg.BuildTimeout, cfg.Module)

	path, err := a.env.WaitForFile(ctx, root, pkgmgr.ModuleFile(cfg.Module), cfg.BuildTimeout)
	if err != nil {
		return errors.Wrapf(err, "%s module was not built for kernel %s", cfg.Module, release)
	}

	a.env.Log.Debug("kernel module built", logger.String("path", path))
	return nil
}
