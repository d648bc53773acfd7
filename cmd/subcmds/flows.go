package subcmds

import (
	"time"

	"github.com/vcnkl/provision/actions"
	"github.com/vcnkl/provision/logger"

	"github.com/urfave/cli/v2"
)

func InstallCmd() *cli.Command {
	return flowCmd("install", "Install the configured system packages", func(env *actions.Env) executor {
		return actions.NewInstallAction(env)
	})
}

func RemoveCmd() *cli.Command {
	return flowCmd("remove", "Remove the configured pre-installed packages", func(env *actions.Env) executor {
		return actions.NewRemoveAction(env)
	})
}

func FlatpakCmd() *cli.Command {
	return flowCmd("flatpak", "Install the configured Flatpak applications", func(env *actions.Env) executor {
		return actions.NewFlatpakAction(env)
	})
}

func NvidiaCmd() *cli.Command {
	return flowCmd("nvidia", "Install the proprietary NVIDIA drivers", func(env *actions.Env) executor {
		return actions.NewNvidiaAction(env)
	})
}

func BraveCmd() *cli.Command {
	return flowCmd("brave", "Install the Brave browser", func(env *actions.Env) executor {
		return actions.NewBraveAction(env)
	})
}

func RPMFusionCmd() *cli.Command {
	return flowCmd("rpmfusion", "Enable RPM Fusion and the multimedia codecs", func(env *actions.Env) executor {
		return actions.NewRPMFusionAction(env)
	})
}

func flowCmd(name, usage string, newAction func(*actions.Env) executor) *cli.Command {
	return &cli.Command{
		Name:  name,
		Usage: usage,
		Flags: []cli.Flag{yesFlag()},
		Action: func(ctx *cli.Context) error {
			s, err := newSession(ctx)
			if err != nil {
				return cli.Exit("error: "+err.Error(), 1)
			}

			start := time.Now()
			summary, err := newAction(s.env).Execute(ctx.Context)
			if err != nil {
				return cli.Exit("error: "+err.Error(), 1)
			}
			if summary == nil {
				return nil
			}

			s.log.Info(name+" completed",
				logger.Int("total", summary.Total),
				logger.Int("failed", len(summary.Failed)),
				logger.Duration("duration", time.Since(start)))

			if !summary.OK() {
				return cli.Exit(name+" failed", 1)
			}
			return nil
		},
	}
}
