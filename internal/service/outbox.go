package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Felixdivoar/natuasili/internal/service/ports"
	"github.com/jonboulle/clockwork"
	"github.com/wb-go/wbf/logger"
)

type OutboxSettings struct {
	BatchSize int
	Lease     time.Duration
}

// OutboxRelay publishes messages written by the confirmation transaction.
// Delivery is at least once; consumers deduplicate.
type OutboxRelay struct {
	outboxRepo ports.OutboxRepo
	publisher  ports.Publisher
	settings   OutboxSettings
	clock      clockwork.Clock
	logger     logger.Logger
}

func NewOutboxRelay(
	outboxRepo ports.OutboxRepo,
	publisher ports.Publisher,
	settings OutboxSettings,
	clock clockwork.Clock,
	logger logger.Logger,
) *OutboxRelay {
	if settings.BatchSize < 1 {
		settings.BatchSize = 50
	}
	return &OutboxRelay{
		outboxRepo: outboxRepo,
		publisher:  publisher,
		settings:   settings,
		clock:      clock,
		logger:     logger,
	}
}

// RelayPending publishes one batch and returns the number of messages sent.
func (r *OutboxRelay) RelayPending(ctx context.Context) (int, error) {
	msgs, err := r.outboxRepo.ClaimPending(ctx, r.clock.Now().UTC(), r.settings.Lease, r.settings.BatchSize)
	if err != nil {
		return 0, fmt.Errorf("claim outbox: %w", err)
	}

	sent := 0
	for _, m := range msgs {
		if err = r.publisher.Publish(ctx, m.Topic, m.Payload); err != nil {
			r.logger.Warn("failed to publish outbox message",
				logger.Int64("message_id", m.ID),
				logger.String("topic", m.Topic),
				logger.Int("attempts", m.Attempts+1),
				logger.String("error", err.Error()),
			)
			if markErr := r.outboxRepo.MarkFailed(ctx, m.ID, err.Error()); markErr != nil {
				r.logger.Error("failed to record publish failure",
					logger.Int64("message_id", m.ID),
					logger.String("error", markErr.Error()),
				)
			}
			continue
		}

		if err = r.outboxRepo.MarkPublished(ctx, m.ID, r.clock.Now().UTC()); err != nil {
			// the lease runs out and the message goes out again; consumers dedupe
			r.logger.Error("failed to mark outbox message published",
				logger.Int64("message_id", m.ID),
				logger.String("error", err.Error()),
			)
			continue
		}
		sent++
	}

	if sent > 0 {
		r.logger.Info("outbox relayed", logger.Int("count", sent))
	}

	return sent, nil
}
