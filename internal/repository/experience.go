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

// price options are folded into one JSON column so an experience loads in a single query
const experienceSelect = `SELECT e.id, e.slug, e.title, e.description, e.partner_id, e.currency,
			  e.capacity, e.active, e.created_at, e.updated_at,
			  COALESCE((
			      SELECT json_agg(json_build_object(
			          'code', p.code, 'label', p.label, 'unit_amount', p.unit_amount
			      ) ORDER BY p.position)
			      FROM price_options p WHERE p.experience_id = e.id
			  ), '[]')
			  FROM experiences e`

type ExperienceRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewExperienceRepo(db *dbpg.DB) *ExperienceRepository {
	return &ExperienceRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ExperienceRepository) Create(ctx context.Context, e *domain.Experience) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO experiences (id, slug, title, description, partner_id, currency,
			  capacity, active, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	if _, err = tx.ExecContext(
		ctx, query,
		e.ID, e.Slug, e.Title, e.Description, e.PartnerID, e.Currency,
		e.Capacity, e.Active, e.CreatedAt, e.UpdatedAt,
	); err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return domain.ErrSlugTaken
			case "23503":
				return domain.ErrPartnerNotFound
			}
		}
		return fmt.Errorf("insert experience: %w", err)
	}

	optQuery := `INSERT INTO price_options (experience_id, code, label, unit_amount, position)
				 VALUES ($1, $2, $3, $4, $5)`
	for i, o := range e.PriceOptions {
		if _, err = tx.ExecContext(ctx, optQuery, e.ID, o.Code, o.Label, o.UnitAmount, i); err != nil {
			return fmt.Errorf("insert price option %q: %w", o.Code, err)
		}
	}

	return tx.Commit()
}

func (r *ExperienceRepository) GetBySlug(ctx context.Context, slug string) (*domain.Experience, error) {
	return r.getOne(ctx, experienceSelect+` WHERE e.slug = $1`, slug)
}

func (r *ExperienceRepository) GetByID(ctx context.Context, id string) (*domain.Experience, error) {
	return r.getOne(ctx, experienceSelect+` WHERE e.id = $1`, id)
}

func (r *ExperienceRepository) getOne(ctx context.Context, query string, arg string) (*domain.Experience, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, arg)
	if err != nil {
		return nil, fmt.Errorf("get experience: %w", err)
	}

	e, err := scanExperience(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrExperienceNotFound
		}
		return nil, fmt.Errorf("scan experience: %w", err)
	}

	return e, nil
}

func (r *ExperienceRepository) List(ctx context.Context, activeOnly bool) ([]*domain.Experience, error) {
	query := experienceSelect + ` WHERE ($1 = FALSE OR e.active) ORDER BY e.title`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("list experiences: %w", err)
	}
	defer rows.Close()

	res := make([]*domain.Experience, 0)
	for rows.Next() {
		e, err := scanExperience(rows)
		if err != nil {
			return nil, fmt.Errorf("scan experience: %w", err)
		}
		res = append(res, e)
	}

	return res, rows.Err()
}

func scanExperience(row rowScanner) (*domain.Experience, error) {
	var e domain.Experience
	var options []byte
	if err := row.Scan(
		&e.ID, &e.Slug, &e.Title, &e.Description, &e.PartnerID, &e.Currency,
		&e.Capacity, &e.Active, &e.CreatedAt, &e.UpdatedAt, &options,
	); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(options, &e.PriceOptions); err != nil {
		return nil, fmt.Errorf("decode price options: %w", err)
	}
	return &e, nil
}
