package flight

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGetCachesSuccesses(t *testing.T) {
	var calls atomic.Int64
	c := New(func(ctx context.Context, k string) (string, error) {
		calls.Add(1)
		return "url-for-" + k, nil
	})

	ctx := context.Background()
	for range 3 {
		v, err := c.Get(ctx, "a")
		require.NoError(t, err)
		require.Equal(t, "url-for-a", v)
	}
	require.Equal(t, int64(1), calls.Load())

	_, err := c.Get(ctx, "b")
	require.NoError(t, err)
	require.Equal(t, int64(2), calls.Load())
}

func TestGetDoesNotCacheFailures(t *testing.T) {
	var calls atomic.Int64
	c := New(func(ctx context.Context, k string) (string, error) {
		if calls.Add(1) == 1 {
			return "", errors.New("transient")
		}
		return "ok", nil
	})

	_, err := c.Get(context.Background(), "k")
	require.Error(t, err)

	v, err := c.Get(context.Background(), "k")
	require.NoError(t, err)
	require.Equal(t, "ok", v)
	require.Equal(t, int64(2), calls.Load())
}

func TestGetCoalescesConcurrentCalls(t *testing.T) {
	var calls atomic.Int64
	release := make(chan struct{})
	c := New(func(ctx context.Context, k string) (string, error) {
		calls.Add(1)
		<-release
		return "shared", nil
	})

	const n = 5
	var wg sync.WaitGroup
	results := make([]string, n)
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := c.Get(context.Background(), "k")
			require.NoError(t, err)
			results[i] = v
		}()
	}

	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	require.Equal(t, int64(1), calls.Load())
	for _, v := range results {
		require.Equal(t, "shared", v)
	}
}

func TestExpiredEntryIsRecomputed(t *testing.T) {
	var calls atomic.Int64
	c := New(func(ctx context.Context, k string) (string, error) {
		calls.Add(1)
		return "v", nil
	})
	c.Expiry(time.Millisecond)

	_, err := c.Get(context.Background(), "k")
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)
	_, err = c.Get(context.Background(), "k")
	require.NoError(t, err)
	require.Equal(t, int64(2), calls.Load())
}

func TestWaiterLeavesOnCancelledContext(t *testing.T) {
	release := make(chan struct{})
	c := New(func(ctx context.Context, k string) (string, error) {
		<-release
		return "late", nil
	})

	started := make(chan struct{})
	go func() {
		close(started)
		c.Get(context.Background(), "k")
	}()
	<-started
	time.Sleep(10 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.Get(ctx, "k")
	require.ErrorIs(t, err, context.Canceled)

	close(release)
}
