package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Felixdivoar/natuasili/internal/domain"
	"github.com/Felixdivoar/natuasili/internal/service/ports"
	"github.com/jonboulle/clockwork"
	"github.com/wb-go/wbf/logger"
)

type BookingService struct {
	bookingRepo ports.BookingRepo
	partnerRepo ports.PartnerRepo
	holdWindow  time.Duration
	clock       clockwork.Clock
	logger      logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	partnerRepo ports.PartnerRepo,
	holdWindow time.Duration,
	clock clockwork.Clock,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		partnerRepo: partnerRepo,
		holdWindow:  holdWindow,
		clock:       clock,
		logger:      logger,
	}
}

func (s *BookingService) Get(ctx context.Context, id string) (*domain.Booking, error) {
	return s.bookingRepo.GetByID(ctx, id)
}

func (s *BookingService) ListByPartner(ctx context.Context, partnerID string) ([]*domain.Booking, error) {
	if _, err := s.partnerRepo.GetByID(ctx, partnerID); err != nil {
		return nil, fmt.Errorf("check partner: %w", err)
	}
	return s.bookingRepo.ListByPartner(ctx, partnerID)
}

// CancelAbandoned cancels pending bookings that outlived the hold window without
// ever reaching the payment provider.
func (s *BookingService) CancelAbandoned(ctx context.Context) ([]*domain.Booking, error) {
	cancelled, err := s.bookingRepo.CancelAbandoned(ctx, s.clock.Now().Add(-s.holdWindow).UTC())
	if err != nil {
		return nil, fmt.Errorf("cancel abandoned: %w", err)
	}

	for _, b := range cancelled {
		s.logger.Info("abandoned booking cancelled",
			logger.String("booking_id", b.ID),
			logger.String("experience_id", b.ExperienceID),
		)
	}

	return cancelled, nil
}
