package messaging

import (
	"context"
	"fmt"
	"sync"
)

// LocalBus delivers published messages synchronously to in-process handlers.
// A handler error fails the publish, so the outbox keeps the message and retries.
type LocalBus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
}

func NewLocalBus() *LocalBus {
	return &LocalBus{handlers: make(map[string][]Handler)}
}

func (b *LocalBus) Register(topic string, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[topic] = append(b.handlers[topic], h)
}

func (b *LocalBus) Publish(ctx context.Context, routingKey string, body []byte) error {
	b.mu.RLock()
	handlers := b.handlers[routingKey]
	b.mu.RUnlock()

	for _, h := range handlers {
		if err := h(ctx, body); err != nil {
			return fmt.Errorf("deliver %s: %w", routingKey, err)
		}
	}
	return nil
}
