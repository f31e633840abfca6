package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Felixdivoar/natuasili/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const cartColumns = `id, session_id, experience_slug, date, party_size, price_option,
			  expires_at, hold_expires_at, touched_at, created_at`

type CartRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewCartRepo(db *dbpg.DB) *CartRepository {
	return &CartRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *CartRepository) Create(ctx context.Context, c *domain.Cart) error {
	query := `INSERT INTO carts (` + cartColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		c.ID, c.SessionID, c.ExperienceSlug, c.Date, c.PartySize, c.PriceOption,
		c.ExpiresAt, c.HoldExpiresAt, c.TouchedAt, c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert cart: %w", err)
	}

	return nil
}

func (r *CartRepository) GetByID(ctx context.Context, id string) (*domain.Cart, error) {
	query := `SELECT ` + cartColumns + ` FROM carts WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get cart: %w", err)
	}

	c, err := scanCart(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCartNotFound
		}
		return nil, fmt.Errorf("scan cart: %w", err)
	}

	return c, nil
}

// Touch slides the inactivity window. The update only lands while the cart is
// still alive at now, so an expired cart is never revived.
func (r *CartRepository) Touch(ctx context.Context, id string, expiresAt, now time.Time) (*domain.Cart, error) {
	query := `UPDATE carts
			  SET expires_at = $2, touched_at = $3
			  WHERE id = $1 AND expires_at > $3
			  RETURNING ` + cartColumns
	return r.conditionalUpdate(ctx, query, id, expiresAt, now)
}

func (r *CartRepository) RestartHold(ctx context.Context, id string, holdExpiresAt, now time.Time) (*domain.Cart, error) {
	query := `UPDATE carts
			  SET hold_expires_at = $2
			  WHERE id = $1 AND expires_at > $3
			  RETURNING ` + cartColumns
	return r.conditionalUpdate(ctx, query, id, holdExpiresAt, now)
}

func (r *CartRepository) conditionalUpdate(ctx context.Context, query, id string, at, now time.Time) (*domain.Cart, error) {
	c, err := scanCart(r.db.QueryRowContext(ctx, query, id, at, now))
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("update cart: %w", err)
	}

	// nothing updated: the cart is either gone or already expired
	var exists bool
	checkQuery := `SELECT EXISTS (SELECT 1 FROM carts WHERE id = $1)`
	if err = r.db.QueryRowContext(ctx, checkQuery, id).Scan(&exists); err != nil {
		return nil, fmt.Errorf("check cart: %w", err)
	}
	if !exists {
		return nil, domain.ErrCartNotFound
	}

	return nil, domain.ErrCartExpired
}

// DeleteExpired evicts every cart whose inactivity window has elapsed at now.
func (r *CartRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	query := `DELETE FROM carts WHERE expires_at <= $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, now)
	if err != nil {
		return 0, fmt.Errorf("delete expired carts: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("carts rows affected: %w", err)
	}

	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCart(row rowScanner) (*domain.Cart, error) {
	var c domain.Cart
	if err := row.Scan(
		&c.ID, &c.SessionID, &c.ExperienceSlug, &c.Date, &c.PartySize, &c.PriceOption,
		&c.ExpiresAt, &c.HoldExpiresAt, &c.TouchedAt, &c.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &c, nil
}
