package subcmds

import (
	"context"

	"github.com/vcnkl/provision/actions"
	"github.com/vcnkl/provision/menu"
	"github.com/vcnkl/provision/models"

	"github.com/urfave/cli/v2"
)

func MenuCmd() *cli.Command {
	return &cli.Command{
		Name:   "menu",
		Usage:  "Choose flows from the interactive menu (default)",
		Action: RunMenu,
	}
}

func RunMenu(ctx *cli.Context) error {
	s, err := newSession(ctx)
	if err != nil {
		return cli.Exit("error: "+err.Error(), 1)
	}

	d := menu.New(s.input, s.out, s.log, flows(s.env)...)
	if err := d.Run(ctx.Context); err != nil {
		return cli.Exit("error: "+err.Error(), 1)
	}
	return nil
}

func flows(env *actions.Env) []menu.Flow {
	return []menu.Flow{
		{Label: "Install system packages", Run: discardSummary(actions.NewInstallAction(env))},
		{Label: "Remove system packages", Run: discardSummary(actions.NewRemoveAction(env))},
		{Label: "Install Flatpak packages", Run: discardSummary(actions.NewFlatpakAction(env))},
		{Label: "Install NVIDIA drivers", Run: discardSummary(actions.NewNvidiaAction(env))},
		{Label: "Install Brave browser", Run: discardSummary(actions.NewBraveAction(env))},
		{Label: "Install RPM Fusion repositories", Run: discardSummary(actions.NewRPMFusionAction(env))},
	}
}

type executor interface {
	Execute(ctx context.Context) (*models.Summary, error)
}

// The menu has already shown the summary; only precondition errors leave
// the loop.
func discardSummary(a executor) func(context.Context) error {
	return func(ctx context.Context) error {
		_, err := a.Execute(ctx)
		return err
	}
}
