package actions

import (
	"context"
	"strings"

	"github.com/vcnkl/provision/batch"
	"github.com/vcnkl/provision/models"
)

type InstallAction struct {
	env *Env
}

func NewInstallAction(env *Env) *InstallAction {
	return &InstallAction{env: env}
}

func (a *InstallAction) Execute(ctx context.Context) (*models.Summary, error) {
	pkgs := a.env.Config.Packages().Install

	a.env.Out.Title("Installing system packages")
	if len(pkgs) == 0 {
		a.env.Out.Info("No packages configured for installation")
		return &models.Summary{Kind: models.KindInstall}, nil
	}

	summary := a.env.run(ctx, "install packages", models.KindInstall,
		batch.Items(pkgs, func(ctx context.Context, pkg string) error {
			return a.env.Packages.Install(ctx, pkg)
		}))

	a.env.Out.Summary("Install system packages", summary)
	return summary, nil
}

type RemoveAction struct {
	env *Env
}

func NewRemoveAction(env *Env) *RemoveAction {
	return &RemoveAction{env: env}
}

// Execute returns a nil summary when the operator declines.
func (a *RemoveAction) Execute(ctx context.Context) (*models.Summary, error) {
	pkgs := a.env.Config.Packages().Remove

	a.env.Out.Title("Removing pre-installed packages")
	if len(pkgs) == 0 {
		a.env.Out.Info("No packages configured for removal")
		return &models.Summary{Kind: models.KindRemove}, nil
	}

	a.env.Out.Warn("The following packages will be removed: %s", strings.Join(pkgs, ", "))
	if !a.env.Confirm.Confirm("Remove these packages?") {
		a.env.Out.Info("Skipping package removal")
		return nil, nil
	}

	summary := a.env.run(ctx, "remove packages", models.KindRemove,
		batch.Items(pkgs, func(ctx context.Context, pkg string) error {
			return a.env.Packages.Remove(ctx, pkg)
		}),
		batch.WithCleanup("unused dependencies", a.env.Packages.Autoremove))

	a.env.Out.Summary("Remove system packages", summary)
	return summary, nil
}
