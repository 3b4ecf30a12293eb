package cache

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTTLCachesUntilExpiry(t *testing.T) {
	c := New[int](time.Minute)
	now := time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	calls := 0
	load := func(context.Context) (int, error) { calls++; return calls, nil }

	v, err := c.Get(context.Background(), "k", load)
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	v, _ = c.Get(context.Background(), "k", load)
	assert.Equal(t, 1, v, "masih dalam ttl")

	now = now.Add(2 * time.Minute)
	v, _ = c.Get(context.Background(), "k", load)
	assert.Equal(t, 2, v, "setelah ttl habis loader dipanggil lagi")
}

func TestTTLDoesNotCacheErrors(t *testing.T) {
	c := New[string](time.Minute)
	boom := errors.New("db down")

	_, err := c.Get(context.Background(), "k", func(context.Context) (string, error) { return "", boom })
	assert.ErrorIs(t, err, boom)

	v, err := c.Get(context.Background(), "k", func(context.Context) (string, error) { return "ok", nil })
	require.NoError(t, err)
	assert.Equal(t, "ok", v)
}

func TestTTLDisabled(t *testing.T) {
	c := New[int](0)
	calls := 0
	for i := 0; i < 3; i++ {
		_, _ = c.Get(context.Background(), "k", func(context.Context) (int, error) { calls++; return calls, nil })
	}
	assert.Equal(t, 3, calls)
}

func TestTTLSharedLoadIgnoresCallerCancel(t *testing.T) {
	c := New[string](time.Minute)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	load := func(ctx context.Context) (string, error) {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		return "ok", nil
	}

	v, err := c.Get(ctx, "k", load)
	require.NoError(t, err)
	assert.Equal(t, "ok", v)
}

func TestTTLConcurrentCallersShareLoad(t *testing.T) {
	c := New[int](time.Minute)
	release := make(chan struct{})
	var calls atomic.Int32

	load := func(ctx context.Context) (int, error) {
		calls.Add(1)
		<-release
		return 7, ctx.Err()
	}

	ctx, cancel := context.WithCancel(context.Background())
	results := make(chan error, 2)
	go func() {
		_, err := c.Get(ctx, "k", load)
		results <- err
	}()
	require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, time.Millisecond)
	go func() {
		_, err := c.Get(context.Background(), "k", load)
		results <- err
	}()

	cancel()
	time.Sleep(10 * time.Millisecond)
	close(release)

	for i := 0; i < 2; i++ {
		assert.NoError(t, <-results)
	}
	assert.EqualValues(t, 1, calls.Load())
}
