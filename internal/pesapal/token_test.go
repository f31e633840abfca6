package pesapal

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/redis"
)

type fakeKV struct {
	mu   sync.Mutex
	data map[string]string
	ttl  map[string]time.Duration
	err  error
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: map[string]string{}, ttl: map[string]time.Duration{}}
}

func (f *fakeKV) Get(_ context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	v, ok := f.data[key]
	if !ok {
		return "", redis.NoMatches
	}
	return v, nil
}

func (f *fakeKV) SetWithExpiration(_ context.Context, key string, value any, exp time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[key] = value.(string)
	f.ttl[key] = exp
	return nil
}

func (f *fakeKV) Del(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.data, key)
	return nil
}

func TestTokenSource_CacheExpiry(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	s := &TokenSource{maxTTL: 4 * time.Minute, margin: 30 * time.Second}

	tests := []struct {
		name     string
		provider time.Time
		expected time.Time
	}{
		{"capped by max ttl", now.Add(5 * time.Minute), now.Add(4 * time.Minute)},
		{"inside provider expiry", now.Add(2 * time.Minute), now.Add(90 * time.Second)},
		{"unknown provider expiry", time.Time{}, now.Add(4 * time.Minute)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, s.cacheExpiry(tt.provider, now))
		})
	}
}

func TestTokenSource_ConcurrentCallersFetchOnce(t *testing.T) {
	clock := clockwork.NewFakeClock()
	var fetches atomic.Int32
	fetch := func(context.Context) (Token, error) {
		fetches.Add(1)
		time.Sleep(10 * time.Millisecond)
		return Token{Value: "tok", ExpiresAt: clock.Now().Add(5 * time.Minute)}, nil
	}
	src := newTokenSource(NewMemoryTokenCache(clock), fetch, clock, 4*time.Minute, 30*time.Second, newTestLogger(t))

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := src.Token(context.Background())
			assert.NoError(t, err)
			assert.Equal(t, "tok", v)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), fetches.Load())
}

func TestTokenSource_ShortLivedTokenNotCached(t *testing.T) {
	clock := clockwork.NewFakeClock()
	var fetches int
	fetch := func(context.Context) (Token, error) {
		fetches++
		return Token{Value: "tok", ExpiresAt: clock.Now().Add(10 * time.Second)}, nil
	}
	src := newTokenSource(NewMemoryTokenCache(clock), fetch, clock, 4*time.Minute, 30*time.Second, newTestLogger(t))

	for i := 0; i < 2; i++ {
		v, err := src.Token(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "tok", v)
	}
	assert.Equal(t, 2, fetches)
}

func TestTokenSource_FetchError(t *testing.T) {
	clock := clockwork.NewFakeClock()
	boom := errors.New("boom")
	src := newTokenSource(NewMemoryTokenCache(clock), func(context.Context) (Token, error) {
		return Token{}, boom
	}, clock, 4*time.Minute, 30*time.Second, newTestLogger(t))

	_, err := src.Token(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestRedisTokenCache_RoundTrip(t *testing.T) {
	clock := clockwork.NewFakeClock()
	kv := newFakeKV()
	cache := NewRedisTokenCache(kv, "pesapal:token", clock)
	ctx := context.Background()

	_, ok, err := cache.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, cache.Set(ctx, Token{Value: "tok", ExpiresAt: clock.Now().Add(3 * time.Minute)}))
	assert.Equal(t, 3*time.Minute, kv.ttl["pesapal:token"])

	got, ok, err := cache.Get(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "tok", got.Value)

	clock.Advance(3 * time.Minute)
	_, ok, err = cache.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, cache.Invalidate(ctx))
	_, present := kv.data["pesapal:token"]
	assert.False(t, present)
}

func TestRedisTokenCache_SkipsExpired(t *testing.T) {
	clock := clockwork.NewFakeClock()
	kv := newFakeKV()
	cache := NewRedisTokenCache(kv, "k", clock)

	require.NoError(t, cache.Set(context.Background(), Token{Value: "old", ExpiresAt: clock.Now().Add(-time.Second)}))
	assert.Empty(t, kv.data)
}

func TestTokenSource_SharedCacheAcrossInstances(t *testing.T) {
	clock := clockwork.NewFakeClock()
	kv := newFakeKV()
	var fetches int
	fetch := func(context.Context) (Token, error) {
		fetches++
		return Token{Value: "shared", ExpiresAt: clock.Now().Add(5 * time.Minute)}, nil
	}

	a := newTokenSource(NewRedisTokenCache(kv, "k", clock), fetch, clock, 4*time.Minute, 30*time.Second, newTestLogger(t))
	b := newTokenSource(NewRedisTokenCache(kv, "k", clock), fetch, clock, 4*time.Minute, 30*time.Second, newTestLogger(t))

	va, err := a.Token(context.Background())
	require.NoError(t, err)
	vb, err := b.Token(context.Background())
	require.NoError(t, err)

	assert.Equal(t, va, vb)
	assert.Equal(t, 1, fetches)
}

func TestTokenSource_CacheReadErrorFallsBackToFetch(t *testing.T) {
	clock := clockwork.NewFakeClock()
	kv := newFakeKV()
	kv.err = errors.New("connection refused")
	src := newTokenSource(NewRedisTokenCache(kv, "k", clock), func(context.Context) (Token, error) {
		return Token{Value: "tok", ExpiresAt: clock.Now().Add(5 * time.Minute)}, nil
	}, clock, 4*time.Minute, 30*time.Second, newTestLogger(t))

	v, err := src.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok", v)
}
