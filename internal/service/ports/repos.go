package ports

import (
	"context"
	"time"

	"github.com/Felixdivoar/natuasili/internal/domain"
)

type CartRepo interface {
	Create(ctx context.Context, c *domain.Cart) error
	GetByID(ctx context.Context, id string) (*domain.Cart, error)
	Touch(ctx context.Context, id string, expiresAt, now time.Time) (*domain.Cart, error)
	RestartHold(ctx context.Context, id string, holdExpiresAt, now time.Time) (*domain.Cart, error)
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type BookingRepo interface {
	CreateFromCart(ctx context.Context, b *domain.Booking, cartID string, now time.Time) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ListByPartner(ctx context.Context, partnerID string) ([]*domain.Booking, error)
	CancelAbandoned(ctx context.Context, olderThan time.Time) ([]*domain.Booking, error)
}

type ExperienceRepo interface {
	Create(ctx context.Context, e *domain.Experience) error
	GetBySlug(ctx context.Context, slug string) (*domain.Experience, error)
	GetByID(ctx context.Context, id string) (*domain.Experience, error)
	List(ctx context.Context, activeOnly bool) ([]*domain.Experience, error)
}

type PartnerRepo interface {
	Create(ctx context.Context, p *domain.Partner) error
	GetByID(ctx context.Context, id string) (*domain.Partner, error)
	List(ctx context.Context) ([]*domain.Partner, error)
}

type PaymentRepo interface {
	Create(ctx context.Context, p *domain.PaymentRecord) error
	GetByTrackingID(ctx context.Context, trackingID string) (*domain.PaymentRecord, error)
	GetLiveByBooking(ctx context.Context, bookingID string) (*domain.PaymentRecord, error)
	LogEvent(ctx context.Context, e *domain.PaymentEvent) error
	ApplyStatus(ctx context.Context, upd domain.StatusUpdate) (*domain.ApplyResult, error)
}

type ReconcileQueue interface {
	Enqueue(ctx context.Context, trackingID string, source domain.PaymentEventSource, lastErr string, at time.Time) error
	ClaimDue(ctx context.Context, now time.Time, lease time.Duration, limit int) ([]*domain.ReconcileJob, error)
	MarkDone(ctx context.Context, id int64) error
	Reschedule(ctx context.Context, id int64, attempts int, next time.Time, lastErr string) error
	MarkDead(ctx context.Context, id int64, attempts int, lastErr string) error
	ListDead(ctx context.Context, limit int) ([]*domain.ReconcileJob, error)
	Requeue(ctx context.Context, id int64, at time.Time) error
}

type OutboxRepo interface {
	ClaimPending(ctx context.Context, now time.Time, lease time.Duration, limit int) ([]*domain.OutboxMessage, error)
	MarkPublished(ctx context.Context, id int64, at time.Time) error
	MarkFailed(ctx context.Context, id int64, lastErr string) error
}
