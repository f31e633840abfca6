package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/Felixdivoar/natuasili/internal/domain"
	"github.com/Felixdivoar/natuasili/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

var (
	slugPattern     = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	currencyPattern = regexp.MustCompile(`^[A-Z]{3}$`)
)

type ExperienceService struct {
	experienceRepo ports.ExperienceRepo
	partnerRepo    ports.PartnerRepo
	logger         logger.Logger
}

func NewExperienceService(experienceRepo ports.ExperienceRepo, partnerRepo ports.PartnerRepo, logger logger.Logger) *ExperienceService {
	return &ExperienceService{
		experienceRepo: experienceRepo,
		partnerRepo:    partnerRepo,
		logger:         logger,
	}
}

func (s *ExperienceService) Create(ctx context.Context, in domain.CreateExperienceInput) (*domain.Experience, error) {
	in.Slug = strings.ToLower(strings.TrimSpace(in.Slug))
	in.Currency = strings.ToUpper(strings.TrimSpace(in.Currency))
	if err := validateExperience(in); err != nil {
		return nil, err
	}

	if _, err := s.partnerRepo.GetByID(ctx, in.PartnerID); err != nil {
		return nil, fmt.Errorf("check partner: %w", err)
	}

	now := time.Now().UTC()
	exp := &domain.Experience{
		ID:           uuid.New().String(),
		Slug:         in.Slug,
		Title:        in.Title,
		Description:  in.Description,
		PartnerID:    in.PartnerID,
		Currency:     in.Currency,
		Capacity:     in.Capacity,
		Active:       true,
		PriceOptions: in.PriceOptions,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.experienceRepo.Create(ctx, exp); err != nil {
		return nil, fmt.Errorf("create experience: %w", err)
	}

	s.logger.Info("experience created",
		logger.String("experience_id", exp.ID),
		logger.String("slug", exp.Slug),
		logger.String("partner_id", exp.PartnerID),
	)

	return exp, nil
}

func (s *ExperienceService) GetBySlug(ctx context.Context, slug string) (*domain.Experience, error) {
	exp, err := s.experienceRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !exp.Active {
		return nil, domain.ErrExperienceNotFound
	}
	return exp, nil
}

func (s *ExperienceService) List(ctx context.Context) ([]*domain.Experience, error) {
	return s.experienceRepo.List(ctx, true)
}

func validateExperience(in domain.CreateExperienceInput) error {
	switch {
	case !slugPattern.MatchString(in.Slug):
		return fmt.Errorf("%w: slug must be lowercase words joined by dashes", domain.ErrValidation)
	case strings.TrimSpace(in.Title) == "":
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	case !currencyPattern.MatchString(in.Currency):
		return fmt.Errorf("%w: currency must be an ISO 4217 code", domain.ErrValidation)
	case in.Capacity <= 0:
		return fmt.Errorf("%w: capacity must be positive", domain.ErrValidation)
	case len(in.PriceOptions) == 0:
		return fmt.Errorf("%w: at least one price option is required", domain.ErrValidation)
	}

	seen := make(map[string]struct{}, len(in.PriceOptions))
	for _, o := range in.PriceOptions {
		if o.Code == "" || o.UnitAmount <= 0 {
			return fmt.Errorf("%w: price option needs a code and a positive amount", domain.ErrValidation)
		}
		if _, dup := seen[o.Code]; dup {
			return fmt.Errorf("%w: duplicate price option %q", domain.ErrValidation, o.Code)
		}
		seen[o.Code] = struct{}{}
	}

	return nil
}
