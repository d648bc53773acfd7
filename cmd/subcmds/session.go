package subcmds

import (
	"os"

	"github.com/vcnkl/provision/actions"
	"github.com/vcnkl/provision/config"
	"github.com/vcnkl/provision/exec"
	"github.com/vcnkl/provision/logger"
	"github.com/vcnkl/provision/prompt"
	"github.com/vcnkl/provision/ui"

	"github.com/urfave/cli/v2"
)

const configKey = "provision.config"

func yesFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:    "yes",
		Aliases: []string{"y"},
		Usage:   "Answer yes to every confirmation",
	}
}

func SetConfig(ctx *cli.Context, cfg *config.Config) {
	if ctx.App.Metadata == nil {
		ctx.App.Metadata = make(map[string]interface{})
	}
	ctx.App.Metadata[configKey] = cfg
}

type session struct {
	cfg   *config.Config
	log   logger.Logger
	out   *ui.Printer
	input *prompt.Prompter
	env   *actions.Env
}

func newSession(ctx *cli.Context) (*session, error) {
	level := logger.InfoLevel
	if ctx.Bool("debug") {
		level = logger.DebugLevel
	}
	log := logger.New(level)

	cfg, ok := ctx.App.Metadata[configKey].(*config.Config)
	if !ok {
		var err error
		if cfg, err = config.Load(ctx.String("config")); err != nil {
			return nil, err
		}
	}
	if cfg.Path() != "" {
		log.Debug("profile loaded", logger.String("path", cfg.Path()))
	}

	parser := prompt.LoosePrefix
	if ctx.Bool("strict-confirm") || cfg.StrictConfirm() {
		parser = prompt.Strict
	}

	stdin := ctx.App.Reader
	if stdin == nil {
		stdin = os.Stdin
	}
	stdout := ctx.App.Writer
	if stdout == nil {
		stdout = os.Stdout
	}

	out := ui.NewPrinter(stdout)
	input := prompt.New(stdin, stdout, parser)

	var confirm prompt.Confirmer = input
	if ctx.Bool("yes") {
		confirm = prompt.AutoAccept
	}

	dryRun := ctx.Bool("dry-run")
	runner := &exec.ShellRunner{
		Shell:    cfg.Shell(),
		Elevator: cfg.Elevator(),
		Env:      exec.ComposeEnv(cfg.Env()),
		Timeout:  cfg.CommandTimeout(),
		DryRun:   dryRun,
		Stdin:    stdin,
		Stdout:   stdout,
		Stderr:   os.Stderr,
		Log:      log.WithPrefix("exec"),
	}

	env := actions.NewEnv(cfg, runner, confirm, out, log)
	env.DryRun = dryRun

	return &session{
		cfg:   cfg,
		log:   log,
		out:   out,
		input: input,
		env:   env,
	}, nil
}
