// Package async provides a small generic Future used to signal the completion
// of work that runs on its own goroutine.
//
// A Future is obtained by calling Async, which starts the supplied function and
// immediately returns. Callers wait with Await, AwaitContext or
// AwaitWithTimeout, or poll the state with IsComplete.
//
// Inside formkit the Future is the "settle signal" of a DOM mutation observer:
// the observer delivers queued mutation batches on a goroutine started with
// Async, and validation calls await the returned Future before they read field
// membership.
//
// # Usage
//
//	future := async.Async(ctx, records, func(ctx context.Context, in []Record) (int, error) {
//	    return deliver(in), nil
//	})
//
//	// do other work …
//	n, err := future.AwaitContext(ctx)
//
// A nil *Future is treated as already complete by every waiting method, which
// lets callers await an optional pending signal without a nil check.
package async
