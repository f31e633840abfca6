package notification

import (
	"context"
	"fmt"
	"sync"
	"time"

	goredis "github.com/go-redis/redis/v8"
	"github.com/jonboulle/clockwork"
)

// setNXStore is the part of the wbf redis client the deduplicator needs.
type setNXStore interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *goredis.BoolCmd
	Del(ctx context.Context, key string) error
}

// RedisDeduplicator lets exactly one consumer instance claim a notification key.
type RedisDeduplicator struct {
	store setNXStore
}

func NewRedisDeduplicator(store setNXStore) *RedisDeduplicator {
	return &RedisDeduplicator{store: store}
}

func (d *RedisDeduplicator) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := d.store.SetNX(ctx, key, "1", ttl).Result()
	if err != nil {
		return false, fmt.Errorf("redis setnx: %w", err)
	}
	return ok, nil
}

func (d *RedisDeduplicator) Release(ctx context.Context, key string) error {
	if err := d.store.Del(ctx, key); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

// MemoryDeduplicator is the single-instance fallback when Redis is not configured.
type MemoryDeduplicator struct {
	mu    sync.Mutex
	keys  map[string]time.Time
	clock clockwork.Clock
}

func NewMemoryDeduplicator(clock clockwork.Clock) *MemoryDeduplicator {
	return &MemoryDeduplicator{keys: make(map[string]time.Time), clock: clock}
}

func (d *MemoryDeduplicator) Acquire(_ context.Context, key string, ttl time.Duration) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := d.clock.Now()
	for k, exp := range d.keys {
		if !now.Before(exp) {
			delete(d.keys, k)
		}
	}

	if _, held := d.keys[key]; held {
		return false, nil
	}
	d.keys[key] = now.Add(ttl)
	return true, nil
}

func (d *MemoryDeduplicator) Release(_ context.Context, key string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.keys, key)
	return nil
}
