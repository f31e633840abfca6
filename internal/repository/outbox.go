package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Felixdivoar/natuasili/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type OutboxRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewOutboxRepo(db *dbpg.DB) *OutboxRepository {
	return &OutboxRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// ClaimPending leases up to limit unpublished messages, oldest first.
func (r *OutboxRepository) ClaimPending(ctx context.Context, now time.Time, lease time.Duration, limit int) ([]*domain.OutboxMessage, error) {
	query := `
        UPDATE outbox o
        SET locked_until = $2
        FROM (
            SELECT id FROM outbox
            WHERE published_at IS NULL
              AND (locked_until IS NULL OR locked_until < $1)
            ORDER BY created_at
            LIMIT $3
            FOR UPDATE SKIP LOCKED
        ) due
        WHERE o.id = due.id
        RETURNING o.id, o.topic, o.aggregate_id, o.payload, o.attempts, o.last_error, o.created_at, o.published_at`

	rows, err := r.db.QueryContext(ctx, query, now, now.Add(lease), limit)
	if err != nil {
		return nil, fmt.Errorf("claim outbox: %w", err)
	}
	defer rows.Close()

	var res []*domain.OutboxMessage
	for rows.Next() {
		var m domain.OutboxMessage
		var payload []byte
		var publishedAt sql.NullTime
		if err = rows.Scan(
			&m.ID, &m.Topic, &m.AggregateID, &payload,
			&m.Attempts, &m.LastError, &m.CreatedAt, &publishedAt,
		); err != nil {
			return nil, fmt.Errorf("scan outbox: %w", err)
		}
		m.Payload = payload
		if publishedAt.Valid {
			t := publishedAt.Time
			m.PublishedAt = &t
		}
		res = append(res, &m)
	}

	return res, rows.Err()
}

func (r *OutboxRepository) MarkPublished(ctx context.Context, id int64, at time.Time) error {
	query := `UPDATE outbox SET published_at = $2, locked_until = NULL WHERE id = $1`
	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, at); err != nil {
		return fmt.Errorf("mark published: %w", err)
	}
	return nil
}

// MarkFailed records a failed publish and releases the lease so the next relay
// run picks the message up again.
func (r *OutboxRepository) MarkFailed(ctx context.Context, id int64, lastErr string) error {
	query := `UPDATE outbox SET attempts = attempts + 1, last_error = $2, locked_until = NULL WHERE id = $1`
	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, lastErr); err != nil {
		return fmt.Errorf("mark failed: %w", err)
	}
	return nil
}
