// Package menu is the interactive loop in front of the provisioning flows.
package menu

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/vcnkl/provision/logger"
	"github.com/vcnkl/provision/ui"
)

const title = "Fedora provisioning"

type Flow struct {
	Label string
	Run   func(ctx context.Context) error
}

// Input is the subset of *prompt.Prompter the loop reads from.
type Input interface {
	ReadLine(label string) (string, error)
	Pause()
}

type Dispatcher struct {
	in    Input
	out   *ui.Printer
	log   logger.Logger
	flows []Flow
}

func New(in Input, out *ui.Printer, log logger.Logger, flows ...Flow) *Dispatcher {
	return &Dispatcher{
		in:    in,
		out:   out,
		log:   log.WithPrefix("menu"),
		flows: flows,
	}
}

// Run loops until the operator exits, input ends, ctx is cancelled or a
// flow returns an error. Only the last case yields a non-nil error from a
// live context.
func (d *Dispatcher) Run(ctx context.Context) error {
	entries := d.entries()
	exitKey := entries[len(entries)-1].Key

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		d.out.Menu(title, entries)
		line, err := d.in.ReadLine("Choose an option: ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				d.out.Blank()
				d.log.Debug("input closed, leaving menu")
				return nil
			}
			return errors.Wrap(err, "failed to read selection")
		}

		choice := strings.TrimSpace(line)
		if isExit(choice, exitKey) {
			d.out.Info("Goodbye")
			return nil
		}

		flow, ok := d.lookup(choice)
		if !ok {
			d.out.Error("Invalid choice %q, pick 1-%s", choice, exitKey)
			continue
		}

		d.log.Debug("running flow", logger.String("flow", flow.Label))
		if err := flow.Run(ctx); err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		d.in.Pause()
	}
}

func (d *Dispatcher) entries() []ui.MenuEntry {
	entries := make([]ui.MenuEntry, 0, len(d.flows)+1)
	for i, f := range d.flows {
		entries = append(entries, ui.MenuEntry{Key: strconv.Itoa(i + 1), Label: f.Label})
	}
	return append(entries, ui.MenuEntry{Key: strconv.Itoa(len(d.flows) + 1), Label: "Exit"})
}

func (d *Dispatcher) lookup(choice string) (Flow, bool) {
	n, err := strconv.Atoi(choice)
	if err != nil || n < 1 || n > len(d.flows) {
		return Flow{}, false
	}
	return d.flows[n-1], true
}

func isExit(choice, exitKey string) bool {
	switch strings.ToLower(choice) {
	case exitKey, "exit", "q", "quit":
		return true
	}
	return false
}
