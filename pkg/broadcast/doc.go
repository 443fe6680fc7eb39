// Package broadcast provides a non-blocking, in-memory fan-out of typed
// messages to any number of subscribers.
//
// formkit publishes validation outcome events (field valid, field invalid,
// form valid, form invalid) through a Broadcaster so that consumers such as
// live-update transports can observe a form without registering callbacks.
// Delivery never blocks the publisher: when a subscriber's buffer is full the
// message is dropped for that subscriber and the subscriber is removed.
//
// # Usage
//
//	b := broadcast.NewMemoryBroadcaster[formkit.Event](32)
//	defer b.Close()
//
//	sub := b.Subscribe(ctx)
//	go func() {
//	    for msg := range sub.Receive(ctx) {
//	        render(msg.Data)
//	    }
//	}()
package broadcast
