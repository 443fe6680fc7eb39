package broadcast_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/broadcast"
)

func TestMemoryBroadcaster_Subscribe(t *testing.T) {
	t.Run("subscribe after close returns closed subscriber", func(t *testing.T) {
		b := broadcast.NewMemoryBroadcaster[string](10)
		require.NoError(t, b.Close())

		sub := b.Subscribe(context.Background())
		_, ok := <-sub.Receive(context.Background())
		assert.False(t, ok)
	})

	t.Run("context cancellation unsubscribes", func(t *testing.T) {
		b := broadcast.NewMemoryBroadcaster[string](10)
		defer b.Close()

		ctx, cancel := context.WithCancel(context.Background())
		sub := b.Subscribe(ctx)
		cancel()

		require.Eventually(t, func() bool {
			select {
			case _, ok := <-sub.Receive(context.Background()):
				return !ok
			default:
				return false
			}
		}, time.Second, 5*time.Millisecond)
	})

	t.Run("close does not wait for live contexts", func(t *testing.T) {
		b := broadcast.NewMemoryBroadcaster[int](1)
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		_ = b.Subscribe(ctx)

		done := make(chan struct{})
		go func() {
			_ = b.Close()
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("close blocked on an active subscription context")
		}
	})
}

func TestMemoryBroadcaster_Broadcast(t *testing.T) {
	t.Run("fan-out to every subscriber", func(t *testing.T) {
		b := broadcast.NewMemoryBroadcaster[int](10)
		defer b.Close()

		ctx := context.Background()
		subs := []broadcast.Subscriber[int]{b.Subscribe(ctx), b.Subscribe(ctx), b.Subscribe(ctx)}

		require.NoError(t, b.Broadcast(ctx, broadcast.Message[int]{Data: 42}))

		for i, sub := range subs {
			select {
			case msg := <-sub.Receive(ctx):
				assert.Equal(t, 42, msg.Data, "subscriber %d", i)
			case <-time.After(100 * time.Millisecond):
				t.Fatalf("subscriber %d timeout", i)
			}
		}
	})

	t.Run("slow subscriber is dropped", func(t *testing.T) {
		b := broadcast.NewMemoryBroadcaster[int](1)
		defer b.Close()

		ctx := context.Background()
		sub := b.Subscribe(ctx)

		for i := range 5 {
			require.NoError(t, b.Broadcast(ctx, broadcast.Message[int]{Data: i}))
		}

		count := 0
		timeout := time.After(200 * time.Millisecond)
		for {
			select {
			case _, ok := <-sub.Receive(ctx):
				if !ok {
					assert.LessOrEqual(t, count, 1)
					return
				}
				count++
			case <-timeout:
				t.Fatal("slow subscriber was not dropped")
			}
		}
	})

	t.Run("broadcast after close is a no-op", func(t *testing.T) {
		b := broadcast.NewMemoryBroadcaster[string](10)
		require.NoError(t, b.Close())
		require.NoError(t, b.Close())
		assert.NoError(t, b.Broadcast(context.Background(), broadcast.Message[string]{Data: "x"}))
	})
}
