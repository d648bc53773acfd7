package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Confirmer is the yes/no gate in front of state-changing flows.
type Confirmer interface {
	Confirm(question string) bool
}

type autoAccept struct{}

func (autoAccept) Confirm(string) bool { return true }

// AutoAccept confirms everything; used by non-interactive runs with --yes.
var AutoAccept Confirmer = autoAccept{}

type Prompter struct {
	in     *bufio.Reader
	out    io.Writer
	parser Parser
}

func New(in io.Reader, out io.Writer, parser Parser) *Prompter {
	if parser == nil {
		parser = LoosePrefix
	}
	return &Prompter{
		in:     bufio.NewReader(in),
		out:    out,
		parser: parser,
	}
}

// ReadLine prints label and returns the next line without its line ending.
// io.EOF is only returned when no input at all was read.
func (p *Prompter) ReadLine(label string) (string, error) {
	if label != "" {
		fmt.Fprint(p.out, label)
	}

	line, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Confirm asks once; a read error counts as a decline.
func (p *Prompter) Confirm(question string) bool {
	line, err := p.ReadLine(question + " [y/N]: ")
	if err != nil {
		fmt.Fprintln(p.out)
		return false
	}
	return p.parser.Parse(line) == Accept
}

func (p *Prompter) Pause() {
	_, _ = p.ReadLine("Press Enter to continue...")
}
