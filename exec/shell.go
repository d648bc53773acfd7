package exec

import (
	"context"
	"io"
	"os"
	osexec "os/exec"
	"strings"
	"time"

	"github.com/bitfield/script"
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"

	"github.com/vcnkl/provision/logger"
)

type ShellOptions struct {
	Env     []string
	Shell   string
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	Timeout time.Duration
}

// killGrace is how long a cancelled command gets to exit after SIGTERM
// before it is killed outright.
const killGrace = 5 * time.Second

// RunCommand runs cmdStr under opts.Shell, streaming its output, and
// reports a non-zero exit status as *ExitError. It returns only after the
// process has exited, also when ctx is cancelled or the timeout expires.
func RunCommand(ctx context.Context, cmdStr string, opts *ShellOptions) error {
	_, err := execute(ctx, cmdStr, opts, false)
	return err
}

// OutputCommand runs cmdStr and returns its trimmed stdout.
func OutputCommand(ctx context.Context, cmdStr string, opts *ShellOptions) (string, error) {
	return execute(ctx, cmdStr, opts, true)
}

func execute(ctx context.Context, cmdStr string, opts *ShellOptions, capture bool) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if opts.Shell == "" {
		opts.Shell = "/bin/sh"
	}

	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	pipe := script.NewPipe().Filter(func(_ io.Reader, w io.Writer) error {
		return start(ctx, cmdStr, opts, w)
	})

	var out string
	var err error
	if capture {
		out, err = pipe.String()
	} else {
		_, err = pipe.WithStdout(opts.Stdout).Stdout()
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return "", ctxErr
	}
	if status := pipe.ExitStatus(); status != 0 {
		return "", &ExitError{Line: cmdStr, Status: status}
	}
	return strings.TrimSpace(out), err
}

// start runs one shell process to completion, writing its stdout to w.
// On cancellation the shell gets SIGTERM (sudo relays it to its child) and
// is killed if it is still running killGrace later.
func start(ctx context.Context, cmdStr string, opts *ShellOptions, w io.Writer) error {
	shell := strings.Fields(opts.Shell)
	cmd := osexec.CommandContext(ctx, shell[0], append(shell[1:], "-c", cmdStr)...)
	cmd.Env = opts.Env
	cmd.Stdin = opts.Stdin
	cmd.Stdout = w
	cmd.Stderr = opts.Stderr
	cmd.WaitDelay = killGrace
	cmd.Cancel = func() error {
		return cmd.Process.Signal(unix.SIGTERM)
	}

	err := cmd.Run()
	if errors.Is(err, osexec.ErrWaitDelay) {
		// The process exited cleanly; only a non-file stdin was left unread.
		return nil
	}
	return err
}

func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "'\"'\"'") + "'"
}

// ShellRunner is the Runner backed by real processes.
type ShellRunner struct {
	Shell    string
	Elevator string
	Env      []string
	Timeout  time.Duration
	DryRun   bool
	Stdin    io.Reader
	Stdout   io.Writer
	Stderr   io.Writer
	Log      logger.Logger
}

func (r *ShellRunner) Run(ctx context.Context, cmd Command) error {
	line := cmd.Line(r.Elevator)
	r.log().Debug("exec", logger.String("cmd", line), logger.Bool("dry_run", r.DryRun))

	if r.DryRun {
		r.log().Info("dry run", logger.String("cmd", line))
		return nil
	}

	return RunCommand(ctx, line, r.options(cmd))
}

// Output always executes, even in dry-run mode; it is only used for
// read-only queries.
func (r *ShellRunner) Output(ctx context.Context, cmd Command) (string, error) {
	line := cmd.Line(r.Elevator)
	r.log().Debug("exec", logger.String("cmd", line), logger.Bool("capture", true))

	return OutputCommand(ctx, line, r.options(cmd))
}

func (r *ShellRunner) options(cmd Command) *ShellOptions {
	opts := &ShellOptions{
		Env:     r.Env,
		Shell:   r.Shell,
		Stdout:  r.Stdout,
		Stderr:  r.Stderr,
		Timeout: r.Timeout,
	}
	if cmd.Interactive {
		// An *os.File is handed to the child as is, so a terminal stays a
		// terminal for password prompts.
		opts.Stdin = r.Stdin
		if opts.Stdin == nil {
			opts.Stdin = os.Stdin
		}
	}
	return opts
}

func (r *ShellRunner) log() logger.Logger {
	if r.Log == nil {
		return logger.Nop()
	}
	return r.Log
}
