package cmd

import (
	"github.com/vcnkl/provision/cmd/subcmds"
	"github.com/vcnkl/provision/config"
	"github.com/vcnkl/provision/preflight"

	"github.com/urfave/cli/v2"
)

func NewApp() *cli.App {
	return newApp(preflight.New().Check)
}

func newApp(check func(elevator string) error) *cli.App {
	return &cli.App{
		Name:    "provision",
		Usage:   "Provision a fresh Fedora workstation",
		Version: "1.0.0",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "debug",
				Aliases: []string{"d"},
				Usage:   "Enable debug logging",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to profile.yml (default: $" + config.EnvConfigPath + " or ~/.config/provision/profile.yml)",
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "Log state-changing commands instead of running them",
			},
			&cli.BoolFlag{
				Name:  "strict-confirm",
				Usage: "Only accept y or yes at confirmation prompts",
			},
		},
		Before: before(check),
		Action: subcmds.RunMenu,
		Commands: []*cli.Command{
			subcmds.MenuCmd(),
			subcmds.InstallCmd(),
			subcmds.RemoveCmd(),
			subcmds.FlatpakCmd(),
			subcmds.NvidiaCmd(),
			subcmds.BraveCmd(),
			subcmds.RPMFusionCmd(),
		},
	}
}

// before loads the profile and refuses to continue when the process cannot
// safely provision the machine. Nothing is shown to the operator first.
func before(check func(elevator string) error) cli.BeforeFunc {
	return func(ctx *cli.Context) error {
		cfg, err := config.Load(ctx.String("config"))
		if err != nil {
			return cli.Exit("error: "+err.Error(), 1)
		}

		if err := check(cfg.Elevator()); err != nil {
			return cli.Exit("error: "+err.Error(), 1)
		}

		subcmds.SetConfig(ctx, cfg)
		return nil
	}
}
