package dom

import (
	"context"
	"sync"

	"github.com/dmitrymomot/formkit/pkg/async"
)

// MutationCallback receives a batch of records in the order they were made.
type MutationCallback func(records []MutationRecord, o *MutationObserver)

// MutationObserver queues child-list records for a subtree and delivers them
// in batches on a separate goroutine.
type MutationObserver struct {
	doc      *Document
	target   *Element
	callback MutationCallback

	mu           sync.Mutex
	queue        []MutationRecord
	pending      *async.Future[int]
	disconnected bool
}

// Pending returns the future of the delivery in progress, or nil when the
// observer is idle. The future resolves with the number of records delivered
// once the queue is drained, including records that arrived while a callback
// was running.
func (o *MutationObserver) Pending() *async.Future[int] {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.pending
}

// Disconnect stops observing. Queued records are dropped and the callback is
// not invoked again, except for a batch that is already being delivered.
func (o *MutationObserver) Disconnect() {
	o.mu.Lock()
	if o.disconnected {
		o.mu.Unlock()
		return
	}
	o.disconnected = true
	o.queue = nil
	o.mu.Unlock()

	o.doc.forget(o)
}

func (o *MutationObserver) enqueue(rec MutationRecord) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.disconnected {
		return
	}
	o.queue = append(o.queue, rec)
	if o.pending == nil {
		o.pending = async.Async(context.Background(), o, deliver)
	}
}

func deliver(_ context.Context, o *MutationObserver) (int, error) {
	delivered := 0
	for {
		o.mu.Lock()
		if o.disconnected || len(o.queue) == 0 {
			o.pending = nil
			o.mu.Unlock()
			return delivered, nil
		}
		batch := o.queue
		o.queue = nil
		o.mu.Unlock()

		o.callback(batch, o)
		delivered += len(batch)
	}
}
