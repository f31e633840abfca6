package service

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/Felixdivoar/natuasili/internal/domain"
	"github.com/Felixdivoar/natuasili/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

type PartnerService struct {
	partnerRepo ports.PartnerRepo
	logger      logger.Logger
}

func NewPartnerService(partnerRepo ports.PartnerRepo, logger logger.Logger) *PartnerService {
	return &PartnerService{
		partnerRepo: partnerRepo,
		logger:      logger,
	}
}

func (s *PartnerService) Create(ctx context.Context, in domain.CreatePartnerInput) (*domain.Partner, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return nil, fmt.Errorf("%w: invalid email", domain.ErrValidation)
	}

	p := &domain.Partner{
		ID:             uuid.New().String(),
		Name:           name,
		Email:          in.Email,
		TelegramChatID: in.TelegramChatID,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.partnerRepo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create partner: %w", err)
	}

	s.logger.Info("partner created",
		logger.String("partner_id", p.ID),
		logger.String("name", p.Name),
	)

	return p, nil
}

func (s *PartnerService) GetByID(ctx context.Context, id string) (*domain.Partner, error) {
	return s.partnerRepo.GetByID(ctx, id)
}

func (s *PartnerService) List(ctx context.Context) ([]*domain.Partner, error) {
	return s.partnerRepo.List(ctx)
}
