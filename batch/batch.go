// Package batch runs independent work items one after another and
// summarises which of them failed.
//
// A failing item never stops the batch. Items run strictly in input order
// and each is attempted at most once per call to Run. Once ctx is done no
// further item is started: the rest are recorded as failed with ctx.Err()
// and the cleanup is skipped.
package batch

import (
	"context"

	"github.com/vcnkl/provision/models"
)

// Action performs the external operation for a single identifier.
type Action func(ctx context.Context, id string) error

type Observer func(o models.Outcome)

type options struct {
	cleanup  *models.WorkItem
	observer Observer
}

type Option func(*options)

// WithCleanup runs fn once after every item was attempted, whatever their
// outcomes. Its failure lands in Summary.Cleanup only.
func WithCleanup(name string, fn func(ctx context.Context) error) Option {
	return func(o *options) {
		o.cleanup = &models.WorkItem{ID: name, Do: fn}
	}
}

// WithObserver reports each outcome as soon as it is known.
func WithObserver(fn Observer) Option {
	return func(o *options) {
		o.observer = fn
	}
}

// Items pairs every identifier with the same action.
func Items(ids []string, action Action) []models.WorkItem {
	items := make([]models.WorkItem, 0, len(ids))
	for _, id := range ids {
		items = append(items, models.WorkItem{
			ID: id,
			Do: func(ctx context.Context) error { return action(ctx, id) },
		})
	}
	return items
}

func Step(name string, fn func(ctx context.Context) error) models.WorkItem {
	return models.WorkItem{ID: name, Do: fn}
}

func Run(ctx context.Context, kind models.Kind, items []models.WorkItem, opts ...Option) *models.Summary {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	summary := &models.Summary{
		Kind:  kind,
		Total: len(items),
	}

	for _, item := range items {
		err := ctx.Err()
		if err == nil {
			err = item.Do(ctx)
		}

		outcome := models.Outcome{ID: item.ID, Err: err}
		if !outcome.Succeeded() {
			summary.Failed = append(summary.Failed, outcome)
		}
		o.notify(outcome)
	}

	if o.cleanup != nil && ctx.Err() == nil {
		outcome := models.Outcome{ID: o.cleanup.ID, Err: o.cleanup.Do(ctx)}
		if !outcome.Succeeded() {
			summary.Cleanup = &outcome
		}
		o.notify(outcome)
	}

	return summary
}

func (o *options) notify(outcome models.Outcome) {
	if o.observer != nil {
		o.observer(outcome)
	}
}
