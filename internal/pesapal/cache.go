package pesapal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/wb-go/wbf/redis"
)

type MemoryTokenCache struct {
	mu    sync.RWMutex
	token Token
	clock clockwork.Clock
}

func NewMemoryTokenCache(clock clockwork.Clock) *MemoryTokenCache {
	return &MemoryTokenCache{clock: clock}
}

func (c *MemoryTokenCache) Get(_ context.Context) (Token, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.token.Valid(c.clock.Now()) {
		return Token{}, false, nil
	}
	return c.token, true, nil
}

func (c *MemoryTokenCache) Set(_ context.Context, t Token) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = t
	return nil
}

func (c *MemoryTokenCache) Invalidate(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = Token{}
	return nil
}

// kvStore is the part of the wbf redis client the shared cache needs.
type kvStore interface {
	Get(ctx context.Context, key string) (string, error)
	SetWithExpiration(ctx context.Context, key string, value any, expiration time.Duration) error
	Del(ctx context.Context, key string) error
}

// RedisTokenCache shares one provider token between all instances.
type RedisTokenCache struct {
	store kvStore
	key   string
	clock clockwork.Clock
}

func NewRedisTokenCache(store kvStore, key string, clock clockwork.Clock) *RedisTokenCache {
	return &RedisTokenCache{store: store, key: key, clock: clock}
}

func (c *RedisTokenCache) Get(ctx context.Context) (Token, bool, error) {
	raw, err := c.store.Get(ctx, c.key)
	if err != nil {
		if errors.Is(err, redis.NoMatches) {
			return Token{}, false, nil
		}
		return Token{}, false, fmt.Errorf("redis get token: %w", err)
	}

	var t Token
	if err = json.Unmarshal([]byte(raw), &t); err != nil {
		return Token{}, false, fmt.Errorf("decode cached token: %w", err)
	}
	if !t.Valid(c.clock.Now()) {
		return Token{}, false, nil
	}
	return t, true, nil
}

func (c *RedisTokenCache) Set(ctx context.Context, t Token) error {
	ttl := t.ExpiresAt.Sub(c.clock.Now())
	if ttl <= 0 {
		return nil
	}
	raw, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("encode token: %w", err)
	}
	if err = c.store.SetWithExpiration(ctx, c.key, string(raw), ttl); err != nil {
		return fmt.Errorf("redis set token: %w", err)
	}
	return nil
}

func (c *RedisTokenCache) Invalidate(ctx context.Context) error {
	if err := c.store.Del(ctx, c.key); err != nil {
		return fmt.Errorf("redis del token: %w", err)
	}
	return nil
}
