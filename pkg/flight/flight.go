// Package flight coalesces concurrent calls for the same key and caches
// finished results for a bounded time. Identical illustration prompts map to
// the same durable URL, so one upstream call can serve every waiter.
package flight

import (
	"context"
	"sync"
	"time"
)

type Cache[K comparable, V any] struct {
	mu       sync.Mutex
	finished map[K]entry[V]
	pending  map[K]*job[V]
	work     func(context.Context, K) (V, error)
	ttl      time.Duration
}

type entry[V any] struct {
	val      V
	deadline time.Time // zero means never expires
}

type job[V any] struct {
	val  V
	err  error
	done chan struct{}
}

func New[K comparable, V any](work func(context.Context, K) (V, error)) *Cache[K, V] {
	return &Cache[K, V]{
		finished: make(map[K]entry[V]),
		pending:  make(map[K]*job[V]),
		work:     work,
		ttl:      time.Hour,
	}
}

// Expiry sets how long finished results are kept. d <= 0 keeps them forever.
func (c *Cache[K, V]) Expiry(d time.Duration) {
	c.mu.Lock()
	c.ttl = d
	c.mu.Unlock()
}

// Get returns the cached value for k, joins an in-flight call for k, or runs
// the work itself. A waiter whose ctx ends leaves without cancelling the
// shared call; the call runs on the initiating caller's ctx.
func (c *Cache[K, V]) Get(ctx context.Context, k K) (V, error) {
	c.mu.Lock()

	if e, ok := c.finished[k]; ok {
		if e.deadline.IsZero() || time.Now().Before(e.deadline) {
			c.mu.Unlock()
			return e.val, nil
		}
		delete(c.finished, k)
	}

	if p, ok := c.pending[k]; ok {
		c.mu.Unlock()
		select {
		case <-p.done:
			return p.val, p.err
		case <-ctx.Done():
			var zero V
			return zero, ctx.Err()
		}
	}

	j := &job[V]{done: make(chan struct{})}
	c.pending[k] = j
	c.mu.Unlock()

	j.val, j.err = c.work(ctx, k)

	c.mu.Lock()
	if j.err == nil {
		c.store(k, j.val)
	}
	delete(c.pending, k)
	close(j.done)
	c.mu.Unlock()

	return j.val, j.err
}

// store must be called with c.mu held.
func (c *Cache[K, V]) store(k K, val V) {
	e := entry[V]{val: val}
	if c.ttl > 0 {
		e.deadline = time.Now().Add(c.ttl)
	}
	c.finished[k] = e
}
