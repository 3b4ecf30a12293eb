// file: internals/helpers/cache/ttl.go
package cache

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// TTL adalah cache in-process untuk lookup read-only (jadwal, jam pelajaran,
// tahun ajaran aktif). Loader yang bersamaan untuk key sama digabung.
type TTL[V any] struct {
	ttl   time.Duration
	now   func() time.Time
	mu    sync.RWMutex
	items map[string]entry[V]
	group singleflight.Group
}

type entry[V any] struct {
	val     V
	expires time.Time
}

// New; ttl <= 0 mematikan cache (loader selalu dipanggil).
func New[V any](ttl time.Duration) *TTL[V] {
	return &TTL[V]{ttl: ttl, now: time.Now, items: map[string]entry[V]{}}
}

func (c *TTL[V]) Get(ctx context.Context, key string, load func(ctx context.Context) (V, error)) (V, error) {
	if c.ttl <= 0 {
		return load(ctx)
	}

	c.mu.RLock()
	e, ok := c.items[key]
	c.mu.RUnlock()
	if ok && c.now().Before(e.expires) {
		return e.val, nil
	}

	// loader dipakai bersama; jangan ikut batal kalau request pertama batal
	shared := context.WithoutCancel(ctx)
	v, err, _ := c.group.Do(key, func() (any, error) {
		val, err := load(shared)
		if err != nil {
			return val, err
		}
		c.mu.Lock()
		c.items[key] = entry[V]{val: val, expires: c.now().Add(c.ttl)}
		c.mu.Unlock()
		return val, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return v.(V), nil
}
