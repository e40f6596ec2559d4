package trending

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPool_RunsAllTasks(t *testing.T) {
	pool := NewPool(context.Background(), 4)

	var completed int64
	for i := 0; i < 100; i++ {
		pool.Submit(context.Background(), func(ctx context.Context) error {
			atomic.AddInt64(&completed, 1)
			return nil
		})
	}

	pool.Close()
	assert.Equal(t, int64(100), atomic.LoadInt64(&completed))
}

func TestPool_TaskErrorDoesNotStopOthers(t *testing.T) {
	pool := NewPool(context.Background(), 2)

	var completed int64
	pool.Submit(context.Background(), func(ctx context.Context) error {
		return errors.New("boom")
	})
	for i := 0; i < 10; i++ {
		pool.Submit(context.Background(), func(ctx context.Context) error {
			atomic.AddInt64(&completed, 1)
			return nil
		})
	}

	pool.Close()
	assert.Equal(t, int64(10), atomic.LoadInt64(&completed))
}

func TestPool_ConcurrentAppend(t *testing.T) {
	pool := NewPool(context.Background(), 8)

	var (
		mu      sync.Mutex
		results []int
	)
	for i := 0; i < 50; i++ {
		n := i
		pool.Submit(context.Background(), func(ctx context.Context) error {
			mu.Lock()
			results = append(results, n)
			mu.Unlock()
			return nil
		})
	}

	pool.Close()
	assert.Len(t, results, 50)
}

func TestPool_CancelledContextDoesNotBlockSubmit(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	pool := NewPool(ctx, 1)
	cancel()

	// Workers are gone; every Submit must still return promptly
	for i := 0; i < 20; i++ {
		pool.Submit(ctx, func(ctx context.Context) error { return nil })
	}
}
