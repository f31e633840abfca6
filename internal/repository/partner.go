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

type PartnerRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewPartnerRepo(db *dbpg.DB) *PartnerRepository {
	return &PartnerRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *PartnerRepository) Create(ctx context.Context, p *domain.Partner) error {
	query := `INSERT INTO partners (id, name, email, telegram_chat_id, created_at)
			  VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, p.ID, p.Name, p.Email, p.TelegramChatID, p.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert partner: %w", err)
	}

	return nil
}

func (r *PartnerRepository) GetByID(ctx context.Context, id string) (*domain.Partner, error) {
	query := `SELECT id, name, email, telegram_chat_id, created_at FROM partners WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get partner: %w", err)
	}

	p, err := scanPartner(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPartnerNotFound
		}
		return nil, fmt.Errorf("scan partner: %w", err)
	}

	return p, nil
}

func (r *PartnerRepository) List(ctx context.Context) ([]*domain.Partner, error) {
	query := `SELECT id, name, email, telegram_chat_id, created_at FROM partners ORDER BY name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list partners: %w", err)
	}
	defer rows.Close()

	res := make([]*domain.Partner, 0)
	for rows.Next() {
		p, err := scanPartner(rows)
		if err != nil {
			return nil, fmt.Errorf("scan partner: %w", err)
		}
		res = append(res, p)
	}

	return res, rows.Err()
}

func scanPartner(row rowScanner) (*domain.Partner, error) {
	var p domain.Partner
	var chatID sql.NullInt64
	if err := row.Scan(&p.ID, &p.Name, &p.Email, &chatID, &p.CreatedAt); err != nil {
		return nil, err
	}
	if chatID.Valid {
		id := chatID.Int64
		p.TelegramChatID = &id
	}
	return &p, nil
}
