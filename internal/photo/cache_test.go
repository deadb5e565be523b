package photo

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCacheGetOrComputeOnce(t *testing.T) {
	cache := NewCache()

	var calls int32
	compute := func(ctx context.Context, path string) Record {
		atomic.AddInt32(&calls, 1)
		return Record{Place: "Lisbon, Portugal"}
	}

	first := cache.GetOrCompute(context.Background(), "/photos/a.jpg", compute)
	second := cache.GetOrCompute(context.Background(), "/photos/a.jpg", compute)

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	assert.Equal(t, first, second)
	assert.Equal(t, 1, cache.Len())
}

func TestCacheDistinctKeys(t *testing.T) {
	cache := NewCache()

	compute := func(ctx context.Context, path string) Record {
		return Record{Place: path}
	}

	a := cache.GetOrCompute(context.Background(), "/photos/a.jpg", compute)
	b := cache.GetOrCompute(context.Background(), "/photos/b.jpg", compute)

	assert.Equal(t, "/photos/a.jpg", a.Place)
	assert.Equal(t, "/photos/b.jpg", b.Place)
	assert.Equal(t, 2, cache.Len())
}

func TestCacheConcurrentSingleComputation(t *testing.T) {
	cache := NewCache()

	var calls int32
	release := make(chan struct{})
	compute := func(ctx context.Context, path string) Record {
		atomic.AddInt32(&calls, 1)
		<-release
		return Record{Place: "Kyoto, Japan"}
	}

	const workers = 8
	var wg sync.WaitGroup
	results := make([]Record, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = cache.GetOrCompute(context.Background(), "/photos/a.jpg", compute)
		}(i)
	}

	// Let every worker reach the cache before the computation finishes.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	for _, rec := range results {
		assert.Equal(t, "Kyoto, Japan", rec.Place)
	}
}

func TestCachePutFirstWriteWins(t *testing.T) {
	cache := NewCache()
	cache.Put("/photos/a.jpg", Record{Place: "first"})
	cache.Put("/photos/a.jpg", Record{Place: "second"})

	rec, ok := cache.Get("/photos/a.jpg")
	assert.True(t, ok)
	assert.Equal(t, "first", rec.Place)
}
