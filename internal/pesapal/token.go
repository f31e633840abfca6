package pesapal

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/wb-go/wbf/logger"
)

type Token struct {
	Value     string    `json:"value"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (t Token) Valid(now time.Time) bool {
	return t.Value != "" && now.Before(t.ExpiresAt)
}

// TokenCache stores the bearer token between requests. A shared implementation is
// required once more than one instance talks to the provider.
type TokenCache interface {
	Get(ctx context.Context) (Token, bool, error)
	Set(ctx context.Context, t Token) error
	Invalidate(ctx context.Context) error
}

type fetchFunc func(ctx context.Context) (Token, error)

// TokenSource hands out cached tokens and refreshes them before the provider's
// stated expiry.
type TokenSource struct {
	mu     sync.Mutex
	cache  TokenCache
	fetch  fetchFunc
	clock  clockwork.Clock
	maxTTL time.Duration
	margin time.Duration
	logger logger.Logger
}

func newTokenSource(
	cache TokenCache,
	fetch fetchFunc,
	clock clockwork.Clock,
	maxTTL, margin time.Duration,
	log logger.Logger,
) *TokenSource {
	return &TokenSource{
		cache:  cache,
		fetch:  fetch,
		clock:  clock,
		maxTTL: maxTTL,
		margin: margin,
		logger: log,
	}
}

func (s *TokenSource) Token(ctx context.Context) (string, error) {
	if t, ok := s.cached(ctx); ok {
		return t.Value, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// another caller may have refreshed while we waited
	if t, ok := s.cached(ctx); ok {
		return t.Value, nil
	}

	fresh, err := s.fetch(ctx)
	if err != nil {
		return "", fmt.Errorf("request token: %w", err)
	}

	now := s.clock.Now()
	entry := Token{Value: fresh.Value, ExpiresAt: s.cacheExpiry(fresh.ExpiresAt, now)}
	if !entry.Valid(now) {
		s.logger.Warn("pesapal token expires too soon to cache",
			logger.Time("provider_expiry", fresh.ExpiresAt),
		)
		return fresh.Value, nil
	}

	if err = s.cache.Set(ctx, entry); err != nil {
		s.logger.Warn("failed to cache pesapal token",
			logger.String("error", err.Error()),
		)
	}

	return fresh.Value, nil
}

func (s *TokenSource) Invalidate(ctx context.Context) error {
	return s.cache.Invalidate(ctx)
}

func (s *TokenSource) cached(ctx context.Context) (Token, bool) {
	t, ok, err := s.cache.Get(ctx)
	if err != nil {
		s.logger.Warn("failed to read cached pesapal token",
			logger.String("error", err.Error()),
		)
		return Token{}, false
	}
	if !ok || !t.Valid(s.clock.Now()) {
		return Token{}, false
	}
	return t, true
}

// cacheExpiry keeps the cached lifetime strictly inside the provider's one.
func (s *TokenSource) cacheExpiry(providerExpiry, now time.Time) time.Time {
	limit := now.Add(s.maxTTL)
	if providerExpiry.IsZero() {
		return limit
	}
	early := providerExpiry.Add(-s.margin)
	if early.Before(limit) {
		return early
	}
	return limit
}
