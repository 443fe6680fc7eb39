// Package watcher reports form controls entering and leaving a subtree.
package watcher

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/formkit/pkg/dom"
	"github.com/dmitrymomot/formkit/pkg/logger"
)

// Handler receives the form controls of one mutation batch.
type Handler func(fields []*dom.Element)

// Watcher observes a subtree and reports added and removed form controls,
// including controls nested inside inserted or removed containers.
type Watcher struct {
	observer *dom.MutationObserver
	onAdd    Handler
	onRemove Handler
	logger   *slog.Logger
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithLogger sets the logger used for batch diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(w *Watcher) {
		w.logger = logger.OrNop(l)
	}
}

// New starts watching root. For every batch, onAdd runs first with the
// added controls, then onRemove with the removed ones; a handler is skipped
// when its list is empty. Handlers run on the delivery goroutine.
func New(doc *dom.Document, root *dom.Element, onAdd, onRemove Handler, opts ...Option) *Watcher {
	w := &Watcher{
		onAdd:    onAdd,
		onRemove: onRemove,
		logger:   logger.Nop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.observer = doc.Observe(root, w.handle)
	return w
}

func (w *Watcher) handle(records []dom.MutationRecord, _ *dom.MutationObserver) {
	var added, removed []*dom.Element
	for _, rec := range records {
		added = appendFields(added, rec.Added)
		removed = appendFields(removed, rec.Removed)
	}

	w.logger.Debug("mutation batch",
		logger.Count("records", len(records)),
		logger.Count("added", len(added)),
		logger.Count("removed", len(removed)),
	)

	if len(added) > 0 && w.onAdd != nil {
		w.onAdd(added)
	}
	if len(removed) > 0 && w.onRemove != nil {
		w.onRemove(removed)
	}
}

func appendFields(dst, nodes []*dom.Element) []*dom.Element {
	for _, n := range nodes {
		if n.IsText() {
			continue
		}
		if n.Kind().IsField() {
			dst = append(dst, n)
		}
		for _, d := range n.Descendants() {
			if d.Kind().IsField() {
				dst = append(dst, d)
			}
		}
	}
	return dst
}

// Settle waits until the batch being delivered, if any, has been handled.
// It returns ctx.Err() when ctx ends first.
func (w *Watcher) Settle(ctx context.Context) error {
	_, err := w.observer.Pending().AwaitContext(ctx)
	return err
}

// Pending reports whether a batch is waiting for or undergoing delivery.
func (w *Watcher) Pending() bool {
	return w.observer.Pending() != nil
}

// Destroy stops observation. No handler runs afterwards, except one that is
// already running.
func (w *Watcher) Destroy() {
	w.observer.Disconnect()
}
