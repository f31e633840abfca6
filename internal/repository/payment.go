package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Felixdivoar/natuasili/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

var livePaymentStatuses = []string{string(domain.PaymentStatusPending), string(domain.PaymentStatusCompleted)}

const paymentColumns = `id, booking_id, reference, order_tracking_id, amount, currency, status,
			  confirmation_code, payment_method, raw_provider_payload, created_at, updated_at`

type PaymentRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewPaymentRepo(db *dbpg.DB) *PaymentRepository {
	return &PaymentRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *PaymentRepository) Create(ctx context.Context, p *domain.PaymentRecord) error {
	query := `INSERT INTO payment_records (` + paymentColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.ExecContext(
		ctx, query,
		p.ID, p.BookingID, p.Reference, p.OrderTrackingID, p.Amount, p.Currency, p.Status,
		p.ConfirmationCode, p.PaymentMethod, nullJSON(p.RawProviderPayload), p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrDuplicatePayment
		}
		return fmt.Errorf("insert payment record: %w", err)
	}

	return nil
}

func (r *PaymentRepository) GetByTrackingID(ctx context.Context, trackingID string) (*domain.PaymentRecord, error) {
	query := `SELECT ` + paymentColumns + ` FROM payment_records WHERE order_tracking_id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, trackingID)
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}

	p, err := scanPayment(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("scan payment: %w", err)
	}

	return p, nil
}

// GetLiveByBooking returns the newest pending or completed payment of a
// booking. A booking has at most one live order at a time.
func (r *PaymentRepository) GetLiveByBooking(ctx context.Context, bookingID string) (*domain.PaymentRecord, error) {
	query := `SELECT ` + paymentColumns + `
			  FROM payment_records
			  WHERE booking_id = $1 AND status = ANY($2)
			  ORDER BY created_at DESC
			  LIMIT 1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, bookingID, pq.Array(livePaymentStatuses))
	if err != nil {
		return nil, fmt.Errorf("get live payment: %w", err)
	}

	p, err := scanPayment(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("scan payment: %w", err)
	}

	return p, nil
}

// LogEvent appends to the payment audit trail.
func (r *PaymentRepository) LogEvent(ctx context.Context, e *domain.PaymentEvent) error {
	query := `INSERT INTO payment_events (order_tracking_id, source, payload, created_at)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id`
	payload := e.Payload
	if len(payload) == 0 {
		payload = json.RawMessage(`{}`)
	}
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, e.OrderTrackingID, e.Source, string(payload), e.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert payment event: %w", err)
	}
	if err = row.Scan(&e.ID); err != nil {
		return fmt.Errorf("insert payment event: %w", err)
	}

	return nil
}

// ApplyStatus feeds a provider status through the payment state machine and
// applies the booking effect in the same transaction. Both rows are locked for
// the duration, which serializes concurrent updates for one order across
// instances. A booking.confirmed outbox message is written only by the call that
// moves the booking out of pending. The booking mirrors payment_status only
// while it is pending, so a stale order can never overwrite a settled booking.
func (r *PaymentRepository) ApplyStatus(ctx context.Context, upd domain.StatusUpdate) (*domain.ApplyResult, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	lockPayment := `SELECT ` + paymentColumns + ` FROM payment_records WHERE order_tracking_id = $1 FOR UPDATE`
	p, err := scanPayment(tx.QueryRowContext(ctx, lockPayment, upd.OrderTrackingID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("lock payment: %w", err)
	}

	var bookingStatus domain.BookingStatus
	lockBooking := `SELECT status FROM bookings WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, lockBooking, p.BookingID).Scan(&bookingStatus); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("lock booking: %w", err)
	}

	res := &domain.ApplyResult{
		Payment:       p,
		Previous:      p.Status,
		Transition:    p.Status.Apply(upd.Status),
		BookingStatus: bookingStatus,
		Effect:        domain.BookingEffectNone,
	}
	if res.Transition == domain.TransitionRejected {
		return res, nil
	}

	now := upd.At.UTC()
	if upd.At.IsZero() {
		now = time.Now().UTC()
	}
	updPayment := `UPDATE payment_records
				   SET status = $2,
				       confirmation_code = COALESCE(NULLIF($3, ''), confirmation_code),
				       payment_method = COALESCE(NULLIF($4, ''), payment_method),
				       raw_provider_payload = COALESCE($5, raw_provider_payload),
				       updated_at = $6
				   WHERE id = $1`
	if _, err = tx.ExecContext(
		ctx, updPayment,
		p.ID, upd.Status, upd.ConfirmationCode, upd.PaymentMethod, nullJSON(upd.Payload), now,
	); err != nil {
		return nil, fmt.Errorf("update payment: %w", err)
	}

	p.Status = upd.Status
	if upd.ConfirmationCode != "" {
		p.ConfirmationCode = upd.ConfirmationCode
	}
	if upd.PaymentMethod != "" {
		p.PaymentMethod = upd.PaymentMethod
	}
	if len(upd.Payload) > 0 {
		p.RawProviderPayload = upd.Payload
	}
	p.UpdatedAt = now

	if res.Transition == domain.TransitionUnchanged {
		return res, tx.Commit()
	}

	res.Effect = domain.BookingEffectFor(bookingStatus, upd.Status)
	switch res.Effect {
	case domain.BookingEffectConfirmed:
		if err = confirmBooking(ctx, tx, p, now); err != nil {
			return nil, err
		}
		res.BookingStatus = domain.BookingStatusConfirmed
	case domain.BookingEffectRefunded:
		refunded, err := refundBooking(ctx, tx, p, now)
		if err != nil {
			return nil, err
		}
		if refunded {
			res.BookingStatus = domain.BookingStatusRefunded
		} else {
			res.Effect = domain.BookingEffectNone
		}
	case domain.BookingEffectConflict:
		// cancelled booking or second settled order; left for manual review
	default:
		if bookingStatus == domain.BookingStatusPending {
			query := `UPDATE bookings SET payment_status = $2, updated_at = $3 WHERE id = $1 AND status = $4`
			if _, err = tx.ExecContext(ctx, query, p.BookingID, upd.Status, now, domain.BookingStatusPending); err != nil {
				return nil, fmt.Errorf("mirror payment status: %w", err)
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return res, nil
}

func confirmBooking(ctx context.Context, tx *sql.Tx, p *domain.PaymentRecord, now time.Time) error {
	query := `UPDATE bookings
			  SET status = $2, payment_status = $3, confirmed_at = $4, updated_at = $4
			  WHERE id = $1 AND status = ANY($5)`
	res, err := tx.ExecContext(
		ctx, query, p.BookingID,
		domain.BookingStatusConfirmed, domain.PaymentStatusCompleted, now,
		pq.Array(domain.StatusesLeadingTo(domain.BookingStatusConfirmed)),
	)
	if err != nil {
		return fmt.Errorf("confirm booking: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("booking rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrBookingNotPending
	}

	payload, err := json.Marshal(domain.BookingConfirmedEvent{
		BookingID:        p.BookingID,
		OrderTrackingID:  p.OrderTrackingID,
		ConfirmationCode: p.ConfirmationCode,
		ConfirmedAt:      now,
	})
	if err != nil {
		return fmt.Errorf("encode outbox payload: %w", err)
	}

	outbox := `INSERT INTO outbox (topic, aggregate_id, payload, created_at)
			   VALUES ($1, $2, $3, $4)
			   ON CONFLICT (topic, aggregate_id) DO NOTHING`
	if _, err = tx.ExecContext(ctx, outbox, domain.TopicBookingConfirmed, p.BookingID, string(payload), now); err != nil {
		return fmt.Errorf("insert outbox: %w", err)
	}

	return nil
}

// refundBooking marks the booking refunded after its payment was reversed. When
// another completed order still pays for the booking, only the duplicate was
// reversed and the booking stays confirmed.
func refundBooking(ctx context.Context, tx *sql.Tx, p *domain.PaymentRecord, now time.Time) (bool, error) {
	var stillPaid bool
	paid := `SELECT EXISTS (
				 SELECT 1 FROM payment_records
				 WHERE booking_id = $1 AND id <> $2 AND status = $3
			 )`
	if err := tx.QueryRowContext(ctx, paid, p.BookingID, p.ID, domain.PaymentStatusCompleted).Scan(&stillPaid); err != nil {
		return false, fmt.Errorf("check other payments: %w", err)
	}
	if stillPaid {
		return false, nil
	}

	query := `UPDATE bookings SET status = $2, payment_status = $3, updated_at = $4
			  WHERE id = $1 AND status = ANY($5)`
	if _, err := tx.ExecContext(
		ctx, query, p.BookingID, domain.BookingStatusRefunded, p.Status, now,
		pq.Array(domain.StatusesLeadingTo(domain.BookingStatusRefunded)),
	); err != nil {
		return false, fmt.Errorf("refund booking: %w", err)
	}

	return true, nil
}

func scanPayment(row rowScanner) (*domain.PaymentRecord, error) {
	var p domain.PaymentRecord
	var raw []byte
	if err := row.Scan(
		&p.ID, &p.BookingID, &p.Reference, &p.OrderTrackingID, &p.Amount, &p.Currency, &p.Status,
		&p.ConfirmationCode, &p.PaymentMethod, &raw, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if len(raw) > 0 {
		p.RawProviderPayload = json.RawMessage(raw)
	}
	return &p, nil
}

// nullJSON maps an empty payload to SQL NULL. Payloads go out as text: lib/pq
// would encode a []byte as bytea, which jsonb rejects.
func nullJSON(raw json.RawMessage) any {
	if len(raw) == 0 {
		return nil
	}
	return string(raw)
}
