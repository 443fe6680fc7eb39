package watcher_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/dom"
	"github.com/dmitrymomot/formkit/pkg/watcher"
)

type collector struct {
	mu      sync.Mutex
	events  []string
	added   []*dom.Element
	removed []*dom.Element
}

func (c *collector) onAdd(fs []*dom.Element) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, "add")
	c.added = append(c.added, fs...)
}

func (c *collector) onRemove(fs []*dom.Element) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, "remove")
	c.removed = append(c.removed, fs...)
}

func (c *collector) snapshot() ([]string, []*dom.Element, []*dom.Element) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.events...), append([]*dom.Element(nil), c.added...), append([]*dom.Element(nil), c.removed...)
}

func settle(t *testing.T, w *watcher.Watcher) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, w.Settle(ctx))
}

func TestWatcher(t *testing.T) {
	t.Parallel()

	t.Run("reports nested fields and skips other nodes", func(t *testing.T) {
		t.Parallel()
		doc := dom.New()
		c := &collector{}
		w := watcher.New(doc, doc.Form(), c.onAdd, c.onRemove)
		defer w.Destroy()

		box := doc.CreateElement("div")
		in := doc.CreateElement("input", dom.A("name", "a"))
		sel := doc.CreateElement("select", dom.A("name", "b"))
		require.NoError(t, box.AppendChild(in))
		require.NoError(t, box.AppendChild(doc.CreateElement("p")))
		require.NoError(t, box.AppendChild(sel))

		require.NoError(t, doc.Form().AppendChild(box))
		require.NoError(t, doc.Form().AppendChild(doc.CreateElement("span")))
		settle(t, w)

		events, added, removed := c.snapshot()
		assert.Equal(t, []string{"add"}, events)
		assert.Equal(t, []*dom.Element{in, sel}, added)
		assert.Empty(t, removed)
	})

	t.Run("adds run before removes in one batch", func(t *testing.T) {
		t.Parallel()
		doc := dom.New()
		old := doc.CreateElement("input", dom.A("name", "old"))
		require.NoError(t, doc.Form().AppendChild(old))

		c := &collector{}
		gate := make(chan struct{})
		started := make(chan struct{})
		var once sync.Once
		w := watcher.New(doc, doc.Form(), func(fs []*dom.Element) {
			c.onAdd(fs)
			once.Do(func() {
				close(started)
				<-gate
			})
		}, c.onRemove)
		defer w.Destroy()

		primer := doc.CreateElement("input", dom.A("name", "primer"))
		require.NoError(t, doc.Form().AppendChild(primer))
		<-started

		old.Remove()
		fresh := doc.CreateElement("textarea", dom.A("name", "fresh"))
		require.NoError(t, doc.Form().AppendChild(fresh))
		close(gate)
		settle(t, w)

		events, added, removed := c.snapshot()
		assert.Equal(t, []string{"add", "add", "remove"}, events)
		assert.Equal(t, []*dom.Element{primer, fresh}, added)
		assert.Equal(t, []*dom.Element{old}, removed)
	})

	t.Run("nothing fires after destroy", func(t *testing.T) {
		t.Parallel()
		doc := dom.New()
		c := &collector{}
		w := watcher.New(doc, doc.Form(), c.onAdd, c.onRemove)
		w.Destroy()

		require.NoError(t, doc.Form().AppendChild(doc.CreateElement("input")))
		settle(t, w)
		assert.False(t, w.Pending())

		events, _, _ := c.snapshot()
		assert.Empty(t, events)
	})

	t.Run("settle honours the context", func(t *testing.T) {
		t.Parallel()
		doc := dom.New()
		block := make(chan struct{})
		w := watcher.New(doc, doc.Form(), func([]*dom.Element) { <-block }, nil)
		defer w.Destroy()

		require.NoError(t, doc.Form().AppendChild(doc.CreateElement("input")))
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		err := w.Settle(ctx)
		assert.ErrorIs(t, err, context.DeadlineExceeded)

		close(block)
		settle(t, w)
	})
}
