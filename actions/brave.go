package actions

import (
	"context"

	"github.com/pkg/errors"

	"github.com/vcnkl/provision/batch"
	"github.com/vcnkl/provision/exec"
	"github.com/vcnkl/provision/models"
)

type BraveAction struct {
	env *Env
}

func NewBraveAction(env *Env) *BraveAction {
	return &BraveAction{env: env}
}

func (a *BraveAction) Execute(ctx context.Context) (*models.Summary, error) {
	url := a.env.Config.Brave().InstallScript

	a.env.Out.Title("Installing Brave browser")
	a.env.Out.Warn("This downloads and runs %s", url)
	if !a.env.Confirm.Confirm("Install Brave?") {
		a.env.Out.Info("Skipping Brave installation")
		return nil, nil
	}

	summary := a.env.run(ctx, "brave", models.KindInstall, []models.WorkItem{
		batch.Step("brave-browser", func(ctx context.Context) error {
			return errors.Wrap(a.env.Runner.Run(ctx, exec.RemoteScript(url)), "brave install script")
		}),
	})

	a.env.Out.Summary("Install Brave browser", summary)
	return summary, nil
}
