package exec

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// Runner executes one external command. The zero exit status is the only
// success signal.
type Runner interface {
	Run(ctx context.Context, cmd Command) error
	Output(ctx context.Context, cmd Command) (string, error)
}

// Command is either an argv (Args) or a shell snippet (Script). Elevate
// prefixes the elevation helper; Interactive connects the operator's stdin.
type Command struct {
	Args        []string
	Script      string
	Elevate     bool
	Interactive bool
}

func Cmd(args ...string) Command {
	return Command{Args: args}
}

func Sudo(args ...string) Command {
	return Command{Args: args, Elevate: true}
}

func Shell(script string) Command {
	return Command{Script: script}
}

// RemoteScript fetches url over HTTPS and pipes it to sh.
func RemoteScript(url string) Command {
	return Shell("curl -fsS --proto =https " + quoteArg(url) + " | sh")
}

func (c Command) Line(elevator string) string {
	var line string
	if c.Script != "" {
		line = c.Script
		if c.Elevate {
			line = "sh -c " + shellQuote(c.Script)
		}
	} else {
		quoted := make([]string, len(c.Args))
		for i, arg := range c.Args {
			quoted[i] = quoteArg(arg)
		}
		line = strings.Join(quoted, " ")
	}

	if c.Elevate && elevator != "" {
		line = elevator + " " + line
	}
	return line
}

type ExitError struct {
	Line   string
	Status int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("command exited with status %d: %s", e.Status, e.Line)
}

var plainArg = regexp.MustCompile(`^[A-Za-z0-9@%+=:,./_-]+$`)

func quoteArg(s string) string {
	if plainArg.MatchString(s) {
		return s
	}
	return shellQuote(s)
}
