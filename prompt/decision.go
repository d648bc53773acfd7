package prompt

import (
	"regexp"
	"strings"
)

type Decision int

const (
	Decline Decision = iota
	Accept
)

// Parser turns one line of operator input into a decision.
type Parser interface {
	Parse(input string) Decision
}

type ParserFunc func(input string) Decision

func (f ParserFunc) Parse(input string) Decision {
	return f(input)
}

var loose = regexp.MustCompile(`^[Yy]`)

// LoosePrefix accepts anything starting with y or Y, "ymaybe" included.
var LoosePrefix Parser = ParserFunc(func(input string) Decision {
	if loose.MatchString(strings.TrimSpace(input)) {
		return Accept
	}
	return Decline
})

// Strict accepts only "y" or "yes", ignoring case.
var Strict Parser = ParserFunc(func(input string) Decision {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "y", "yes":
		return Accept
	}
	return Decline
})
