package orgcache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/punchpoint/punchpoint-backend-go/internal/domain/department"
)

func countingFetch(calls *int64) FetchFunc {
	return func(ctx context.Context, userID string) (Config, error) {
		atomic.AddInt64(calls, 1)
		return Config{
			Timezone: "UTC",
			Location: time.UTC,
			Shift:    department.DefaultShiftConfig(),
		}, nil
	}
}

func TestGetCachesWithinTTL(t *testing.T) {
	var calls int64
	cache := New(time.Minute, countingFetch(&calls))

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		cfg, err := cache.Get(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, "UTC", cfg.Timezone)
	}

	assert.Equal(t, int64(1), atomic.LoadInt64(&calls))
}

func TestGetRefetchesAfterTTL(t *testing.T) {
	var calls int64
	cache := New(10*time.Millisecond, countingFetch(&calls))

	ctx := context.Background()
	_, err := cache.Get(ctx, "u1")
	require.NoError(t, err)

	time.Sleep(20 * time.Millisecond)

	_, err = cache.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), atomic.LoadInt64(&calls))
}

func TestGetSharesConcurrentFetches(t *testing.T) {
	var calls int64
	slowFetch := func(ctx context.Context, userID string) (Config, error) {
		atomic.AddInt64(&calls, 1)
		time.Sleep(20 * time.Millisecond)
		return Config{Timezone: "UTC", Location: time.UTC}, nil
	}
	cache := New(time.Minute, slowFetch)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := cache.Get(context.Background(), "u1")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1), atomic.LoadInt64(&calls))
}

func TestGetKeysPerUser(t *testing.T) {
	var calls int64
	cache := New(time.Minute, countingFetch(&calls))

	ctx := context.Background()
	_, _ = cache.Get(ctx, "u1")
	_, _ = cache.Get(ctx, "u2")

	assert.Equal(t, int64(2), atomic.LoadInt64(&calls))
}

func TestInvalidateDropsOneUser(t *testing.T) {
	var calls int64
	cache := New(time.Minute, countingFetch(&calls))

	ctx := context.Background()
	_, _ = cache.Get(ctx, "u1")
	_, _ = cache.Get(ctx, "u2")

	cache.Invalidate("u1")

	_, _ = cache.Get(ctx, "u1")
	_, _ = cache.Get(ctx, "u2")

	// u1 refetched, u2 still cached.
	assert.Equal(t, int64(3), atomic.LoadInt64(&calls))
}

func TestInvalidateAll(t *testing.T) {
	var calls int64
	cache := New(time.Minute, countingFetch(&calls))

	ctx := context.Background()
	_, _ = cache.Get(ctx, "u1")
	_, _ = cache.Get(ctx, "u2")

	cache.InvalidateAll()

	_, _ = cache.Get(ctx, "u1")
	_, _ = cache.Get(ctx, "u2")

	assert.Equal(t, int64(4), atomic.LoadInt64(&calls))
}

func TestGetDoesNotCacheErrors(t *testing.T) {
	var calls int64
	failing := func(ctx context.Context, userID string) (Config, error) {
		atomic.AddInt64(&calls, 1)
		return Config{}, errors.New("upstream down")
	}
	cache := New(time.Minute, failing)

	ctx := context.Background()
	_, err := cache.Get(ctx, "u1")
	require.Error(t, err)

	_, err = cache.Get(ctx, "u1")
	require.Error(t, err)
	assert.Equal(t, int64(2), atomic.LoadInt64(&calls))
}
