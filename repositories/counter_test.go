package repositories

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_CounterRepository_StrictlyIncreasing(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	counter, err := NewCounterRepository(openTestDB(t))
	req.NoError(err)
	defer func() { _ = counter.Close() }()

	var last int64
	for i := 0; i < 100; i++ {
		id, err := counter.NextID(ctx)
		req.NoError(err)
		req.Greater(id, last)
		last = id
	}
}

func Test_CounterRepository_NoDuplicatesUnderConcurrency(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	counter, err := NewCounterRepository(openTestDB(t))
	req.NoError(err)
	defer func() { _ = counter.Close() }()

	const workers = 8
	const perWorker = 50

	var mu sync.Mutex
	seen := make(map[int64]bool)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				id, err := counter.NextID(ctx)
				mu.Lock()
				require.NoError(t, err)
				require.False(t, seen[id], "id %d issued twice", id)
				seen[id] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	req.Len(seen, workers*perWorker)
}
