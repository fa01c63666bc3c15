package ratelimiter_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/targetform/pkg/ratelimiter"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newBucket(t *testing.T, cfg ratelimiter.Config) (*ratelimiter.Bucket, *fakeClock) {
	t.Helper()

	clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	store := ratelimiter.NewMemoryStore(
		ratelimiter.WithCleanupInterval(0),
		ratelimiter.WithClock(clock.Now),
	)
	t.Cleanup(store.Close)

	b, err := ratelimiter.NewBucket(store, cfg)
	require.NoError(t, err)
	return b, clock
}

func TestNewBucketValidatesConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  ratelimiter.Config
	}{
		{"zero capacity", ratelimiter.Config{Capacity: 0, RefillRate: 1, RefillInterval: time.Second}},
		{"zero refill rate", ratelimiter.Config{Capacity: 1, RefillRate: 0, RefillInterval: time.Second}},
		{"zero interval", ratelimiter.Config{Capacity: 1, RefillRate: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ratelimiter.NewBucket(ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(0)), tt.cfg)
			assert.ErrorIs(t, err, ratelimiter.ErrInvalidConfig)
		})
	}
}

func TestBucketAllow(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	b, clock := newBucket(t, ratelimiter.Config{Capacity: 2, RefillRate: 1, RefillInterval: time.Second})

	for want := 1; want >= 0; want-- {
		res, err := b.Allow(ctx, "198.51.100.1")
		require.NoError(t, err)
		assert.True(t, res.Allowed())
		assert.Equal(t, want, res.Remaining)
		assert.Equal(t, 2, res.Limit)
	}

	res, err := b.Allow(ctx, "198.51.100.1")
	require.NoError(t, err)
	assert.False(t, res.Allowed())

	t.Run("keys are independent", func(t *testing.T) {
		res, err := b.Allow(ctx, "198.51.100.2")
		require.NoError(t, err)
		assert.True(t, res.Allowed())
	})

	clock.Advance(time.Second)
	res, err = b.Allow(ctx, "198.51.100.1")
	require.NoError(t, err)
	assert.True(t, res.Allowed())
	assert.Equal(t, 0, res.Remaining)

	require.NoError(t, b.Reset(ctx, "198.51.100.1"))
	res, err = b.Allow(ctx, "198.51.100.1")
	require.NoError(t, err)
	assert.Equal(t, 1, res.Remaining)
}

func TestBucketRefillIsCapped(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	b, clock := newBucket(t, ratelimiter.Config{Capacity: 3, RefillRate: 2, RefillInterval: time.Second})

	_, err := b.AllowN(ctx, "k", 3)
	require.NoError(t, err)

	clock.Advance(24 * time.Hour)
	res, err := b.Allow(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, 2, res.Remaining)
}

func TestBucketAllowNInvalidCount(t *testing.T) {
	t.Parallel()

	b, _ := newBucket(t, ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Second})
	_, err := b.AllowN(context.Background(), "k", 0)
	assert.ErrorIs(t, err, ratelimiter.ErrInvalidTokenCount)
}

func TestMemoryStoreCanceledContext(t *testing.T) {
	t.Parallel()

	b, _ := newBucket(t, ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Second})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := b.Allow(ctx, "k")
	assert.ErrorIs(t, err, context.Canceled)
}
