package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Felixdivoar/natuasili/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const bookingColumns = `b.id, b.experience_id, b.cart_id, b.first_name, b.last_name, b.email, b.phone,
			  b.country_code, b.date, b.quantity, b.price_option, b.total_amount, b.currency,
			  b.status, b.payment_status, b.created_at, b.updated_at, b.confirmed_at`

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// CreateFromCart stores a pending booking and removes the cart it supersedes in
// one transaction. The cart must still be inside both its windows at now.
func (r *BookingRepository) CreateFromCart(ctx context.Context, b *domain.Booking, cartID string, now time.Time) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var expiresAt, holdExpiresAt time.Time
	lockQuery := `SELECT expires_at, hold_expires_at FROM carts WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, lockQuery, cartID).Scan(&expiresAt, &holdExpiresAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrCartNotFound
		}
		return fmt.Errorf("lock cart: %w", err)
	}
	if !now.Before(expiresAt) {
		return domain.ErrCartExpired
	}
	if !now.Before(holdExpiresAt) {
		return domain.ErrHoldExpired
	}

	query := `INSERT INTO bookings (id, experience_id, cart_id, first_name, last_name, email, phone,
			  country_code, date, quantity, price_option, total_amount, currency,
			  status, payment_status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	if _, err = tx.ExecContext(
		ctx, query,
		b.ID, b.ExperienceID, cartID, b.Customer.FirstName, b.Customer.LastName,
		b.Customer.Email, b.Customer.Phone, b.Customer.CountryCode,
		b.Date, b.Quantity, b.PriceOption, b.TotalAmount, b.Currency,
		b.Status, b.PaymentStatus, b.CreatedAt, b.UpdatedAt,
	); err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM carts WHERE id = $1`, cartID); err != nil {
		return fmt.Errorf("delete cart: %w", err)
	}

	return tx.Commit()
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings b WHERE b.id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

func (r *BookingRepository) ListByPartner(ctx context.Context, partnerID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings b
			  JOIN experiences e ON e.id = b.experience_id
			  WHERE e.partner_id = $1
			  ORDER BY b.created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, partnerID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by partner: %w", err)
	}
	defer rows.Close()

	res := make([]*domain.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}

// CancelAbandoned cancels bookings created before olderThan that may still be
// cancelled and have no live payment. Bookings with a pending or completed
// payment belong to the reconciler.
func (r *BookingRepository) CancelAbandoned(ctx context.Context, olderThan time.Time) ([]*domain.Booking, error) {
	query := `
        UPDATE bookings b
        SET status = $2, updated_at = NOW()
        WHERE b.status = ANY($1)
          AND b.created_at < $3
          AND NOT EXISTS (
              SELECT 1 FROM payment_records p
              WHERE p.booking_id = b.id AND p.status = ANY($4)
          )
        RETURNING ` + bookingColumns

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		pq.Array(domain.StatusesLeadingTo(domain.BookingStatusCancelled)), domain.BookingStatusCancelled, olderThan,
		pq.Array(livePaymentStatuses),
	)
	if err != nil {
		return nil, fmt.Errorf("cancel abandoned: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	var confirmedAt sql.NullTime
	if err := row.Scan(
		&b.ID, &b.ExperienceID, &b.CartID,
		&b.Customer.FirstName, &b.Customer.LastName, &b.Customer.Email,
		&b.Customer.Phone, &b.Customer.CountryCode,
		&b.Date, &b.Quantity, &b.PriceOption, &b.TotalAmount, &b.Currency,
		&b.Status, &b.PaymentStatus, &b.CreatedAt, &b.UpdatedAt, &confirmedAt,
	); err != nil {
		return nil, err
	}
	if confirmedAt.Valid {
		t := confirmedAt.Time
		b.ConfirmedAt = &t
	}
	return &b, nil
}
