package actions

import (
	"context"

	"github.com/vcnkl/provision/batch"
	"github.com/vcnkl/provision/models"
)

type FlatpakAction struct {
	env *Env
}

func NewFlatpakAction(env *Env) *FlatpakAction {
	return &FlatpakAction{env: env}
}

// Execute returns a *PreconditionError when flatpak is missing and cannot
// be installed.
func (a *FlatpakAction) Execute(ctx context.Context) (*models.Summary, error) {
	cfg := a.env.Config.Flatpak()

	a.env.Out.Title("Installing Flatpak applications")

	if err := a.ensureFlatpak(ctx); err != nil {
		return nil, err
	}

	setup := a.env.run(ctx, "flatpak remote", models.KindSetup, []models.WorkItem{
		batch.Step("add remote "+cfg.Remote, func(ctx context.Context) error {
			return a.env.Sandbox.AddRemote(ctx, cfg.Remote, cfg.RemoteURL)
		}),
	})

	apps := a.env.run(ctx, "flatpak apps", models.KindInstall,
		batch.Items(cfg.Apps, func(ctx context.Context, app string) error {
			return a.env.Sandbox.Install(ctx, cfg.Remote, app)
		}))

	summary := models.Merge(models.KindInstall, setup, apps)
	a.env.Out.Summary("Install Flatpak applications", summary)
	return summary, nil
}

func (a *FlatpakAction) ensureFlatpak(ctx context.Context) error {
	if a.env.Sandbox.Available() {
		return nil
	}

	a.env.Out.Warn("Flatpak is not installed")
	if !a.env.Confirm.Confirm("Install Flatpak now?") {
		return &PreconditionError{Reason: "flatpak is required to install sandboxed applications"}
	}

	if err := a.env.Packages.Install(ctx, "flatpak"); err != nil {
		return &PreconditionError{Reason: "failed to install flatpak", Err: err}
	}
	a.env.Out.Success("Flatpak installed")
	return nil
}
