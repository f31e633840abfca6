package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Felixdivoar/natuasili/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const jobColumns = `id, order_tracking_id, source, attempts, next_attempt_at, last_error, state, created_at, updated_at`

// ReconcileQueue is the durable retry and dead-letter store for reconciliation.
type ReconcileQueue struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewReconcileQueue(db *dbpg.DB) *ReconcileQueue {
	return &ReconcileQueue{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Enqueue schedules a retry. At most one pending job exists per order; a second
// enqueue while one is pending is a no-op.
func (q *ReconcileQueue) Enqueue(
	ctx context.Context,
	trackingID string,
	source domain.PaymentEventSource,
	lastErr string,
	at time.Time,
) error {
	query := `INSERT INTO reconcile_jobs (order_tracking_id, source, attempts, next_attempt_at, last_error, state, created_at, updated_at)
			  VALUES ($1, $2, 0, $3, $4, $5, $6, $6)
			  ON CONFLICT (order_tracking_id) WHERE state = 'pending' DO NOTHING`
	_, err := q.db.ExecWithRetry(ctx, q.strategy, query, trackingID, source, at, lastErr, domain.JobStatePending, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("enqueue reconcile job: %w", err)
	}

	return nil
}

// ClaimDue leases up to limit due jobs. Claimed rows are skipped by other
// instances until the lease runs out.
func (q *ReconcileQueue) ClaimDue(ctx context.Context, now time.Time, lease time.Duration, limit int) ([]*domain.ReconcileJob, error) {
	query := `
        UPDATE reconcile_jobs j
        SET locked_until = $2, updated_at = $1
        FROM (
            SELECT id FROM reconcile_jobs
            WHERE state = $4
              AND next_attempt_at <= $1
              AND (locked_until IS NULL OR locked_until < $1)
            ORDER BY next_attempt_at
            LIMIT $3
            FOR UPDATE SKIP LOCKED
        ) due
        WHERE j.id = due.id
        RETURNING j.id, j.order_tracking_id, j.source, j.attempts, j.next_attempt_at,
                  j.last_error, j.state, j.created_at, j.updated_at`

	rows, err := q.db.QueryContext(ctx, query, now, now.Add(lease), limit, domain.JobStatePending)
	if err != nil {
		return nil, fmt.Errorf("claim reconcile jobs: %w", err)
	}
	defer rows.Close()

	var res []*domain.ReconcileJob
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}
		res = append(res, j)
	}

	return res, rows.Err()
}

func (q *ReconcileQueue) MarkDone(ctx context.Context, id int64) error {
	query := `UPDATE reconcile_jobs SET state = $2, locked_until = NULL, updated_at = now() WHERE id = $1`
	if _, err := q.db.ExecWithRetry(ctx, q.strategy, query, id, domain.JobStateDone); err != nil {
		return fmt.Errorf("mark job done: %w", err)
	}
	return nil
}

func (q *ReconcileQueue) Reschedule(ctx context.Context, id int64, attempts int, next time.Time, lastErr string) error {
	query := `UPDATE reconcile_jobs
			  SET attempts = $2, next_attempt_at = $3, last_error = $4, locked_until = NULL, updated_at = now()
			  WHERE id = $1`
	if _, err := q.db.ExecWithRetry(ctx, q.strategy, query, id, attempts, next, lastErr); err != nil {
		return fmt.Errorf("reschedule job: %w", err)
	}
	return nil
}

func (q *ReconcileQueue) MarkDead(ctx context.Context, id int64, attempts int, lastErr string) error {
	query := `UPDATE reconcile_jobs
			  SET state = $2, attempts = $3, last_error = $4, locked_until = NULL, updated_at = now()
			  WHERE id = $1`
	if _, err := q.db.ExecWithRetry(ctx, q.strategy, query, id, domain.JobStateDead, attempts, lastErr); err != nil {
		return fmt.Errorf("mark job dead: %w", err)
	}
	return nil
}

func (q *ReconcileQueue) ListDead(ctx context.Context, limit int) ([]*domain.ReconcileJob, error) {
	query := `SELECT ` + jobColumns + ` FROM reconcile_jobs
			  WHERE state = $1
			  ORDER BY updated_at DESC
			  LIMIT $2`

	rows, err := q.db.QueryWithRetry(ctx, q.strategy, query, domain.JobStateDead, limit)
	if err != nil {
		return nil, fmt.Errorf("list dead jobs: %w", err)
	}
	defer rows.Close()

	res := make([]*domain.ReconcileJob, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}
		res = append(res, j)
	}

	return res, rows.Err()
}

// Requeue puts a dead job back in line with a fresh attempt budget.
func (q *ReconcileQueue) Requeue(ctx context.Context, id int64, at time.Time) error {
	query := `UPDATE reconcile_jobs
			  SET state = $2, attempts = 0, next_attempt_at = $3, locked_until = NULL, updated_at = now()
			  WHERE id = $1 AND state = $4`
	res, err := q.db.ExecContext(ctx, query, id, domain.JobStatePending, at, domain.JobStateDead)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: order already has a pending job", domain.ErrValidation)
		}
		return fmt.Errorf("requeue job: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("job rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrJobNotFound
	}

	return nil
}

func scanJob(row rowScanner) (*domain.ReconcileJob, error) {
	var j domain.ReconcileJob
	if err := row.Scan(
		&j.ID, &j.OrderTrackingID, &j.Source, &j.Attempts, &j.NextAttemptAt,
		&j.LastError, &j.State, &j.CreatedAt, &j.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &j, nil
}
