package ports

import (
	"context"
	"time"

	"github.com/Felixdivoar/natuasili/internal/domain"
)

type Alerter interface {
	Alert(ctx context.Context, text string)
}

type ConfirmationMailer interface {
	SendBookingConfirmation(ctx context.Context, d *domain.ConfirmationDetails) error
}

type PartnerNotifier interface {
	NotifyPartnerBooking(ctx context.Context, d *domain.ConfirmationDetails)
}

type Publisher interface {
	Publish(ctx context.Context, routingKey string, body []byte) error
}

// Deduplicator hands out one-shot keys so a side effect runs once per key.
type Deduplicator interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}
