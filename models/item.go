package models

import "context"

type Kind string

const (
	KindInstall Kind = "install"
	KindRemove  Kind = "remove"
	KindEnable  Kind = "enable"
	KindSetup   Kind = "setup"
)

// Verb is the progressive form used in status lines ("installing vim").
// Named steps already start with a verb, so setup and enable have none.
func (k Kind) Verb() string {
	switch k {
	case KindInstall:
		return "installing"
	case KindRemove:
		return "removing"
	case KindEnable, KindSetup:
		return ""
	}
	return string(k)
}

func (k Kind) Describe(id string) string {
	if verb := k.Verb(); verb != "" {
		return verb + " " + id
	}
	return id
}

// WorkItem is one identifier and the external action applied to it.
type WorkItem struct {
	ID string
	Do func(ctx context.Context) error
}
