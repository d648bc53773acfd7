package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vcnkl/provision/models"
)

// Printer writes the colour-coded status lines the operator reads. Colour
// is dropped automatically when out is not a terminal.
type Printer struct {
	out io.Writer

	title lipgloss.Style
	info  lipgloss.Style
	ok    lipgloss.Style
	warn  lipgloss.Style
	err   lipgloss.Style
	dim   lipgloss.Style
}

func NewPrinter(out io.Writer) *Printer {
	r := lipgloss.NewRenderer(out)
	return &Printer{
		out:   out,
		title: r.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		info:  r.NewStyle().Foreground(lipgloss.Color("39")),
		ok:    r.NewStyle().Foreground(lipgloss.Color("2")),
		warn:  r.NewStyle().Foreground(lipgloss.Color("214")),
		err:   r.NewStyle().Foreground(lipgloss.Color("196")),
		dim:   r.NewStyle().Faint(true),
	}
}

func (p *Printer) Title(msg string) {
	fmt.Fprintln(p.out, p.title.Render(msg))
}

func (p *Printer) Info(format string, args ...any) {
	fmt.Fprintln(p.out, p.info.Render("[INFO] "+fmt.Sprintf(format, args...)))
}

func (p *Printer) Success(format string, args ...any) {
	fmt.Fprintln(p.out, p.ok.Render("[OK] "+fmt.Sprintf(format, args...)))
}

func (p *Printer) Warn(format string, args ...any) {
	fmt.Fprintln(p.out, p.warn.Render("[WARN] "+fmt.Sprintf(format, args...)))
}

func (p *Printer) Error(format string, args ...any) {
	fmt.Fprintln(p.out, p.err.Render("[ERROR] "+fmt.Sprintf(format, args...)))
}

func (p *Printer) Blank() {
	fmt.Fprintln(p.out)
}

type MenuEntry struct {
	Key   string
	Label string
}

func (p *Printer) Menu(title string, entries []MenuEntry) {
	p.Blank()
	p.Title(title)
	for _, e := range entries {
		fmt.Fprintf(p.out, "  %s) %s\n", p.info.Render(e.Key), e.Label)
	}
	p.Blank()
}

// Outcome is the immediate per-item line, printed as each item finishes.
func (p *Printer) Outcome(kind models.Kind, o models.Outcome) {
	if o.Succeeded() {
		p.Success("%s", kind.Describe(o.ID))
		return
	}
	p.Error("%s failed: %v", kind.Describe(o.ID), o.Err)
}

// Summary repeats every failure once the batch is over.
func (p *Printer) Summary(label string, s *models.Summary) {
	p.Blank()
	if s.OK() {
		p.Success("%s: all %d %s succeeded", label, s.Total, plural(s.Total, "step", "steps"))
	} else {
		p.Error("%s: %d of %d failed: %s", label, len(s.Failed), s.Total, strings.Join(s.FailedIDs(), ", "))
	}
	if s.Cleanup != nil {
		p.Warn("%s: cleanup %q failed: %v", label, s.Cleanup.ID, s.Cleanup.Err)
	}
}

func (p *Printer) Faint(msg string) {
	fmt.Fprintln(p.out, p.dim.Render(msg))
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
