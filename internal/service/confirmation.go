package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Felixdivoar/natuasili/internal/domain"
	"github.com/Felixdivoar/natuasili/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const confirmationKeyPrefix = "notify:" + domain.TopicBookingConfirmed + ":"

// ConfirmationService tells the customer and the partner about a confirmed
// booking. It consumes booking.confirmed events, which may arrive more than once.
type ConfirmationService struct {
	bookingRepo    ports.BookingRepo
	experienceRepo ports.ExperienceRepo
	partnerRepo    ports.PartnerRepo
	mailer         ports.ConfirmationMailer
	partners       ports.PartnerNotifier
	dedup          ports.Deduplicator
	dedupTTL       time.Duration
	logger         logger.Logger
}

func NewConfirmationService(
	bookingRepo ports.BookingRepo,
	experienceRepo ports.ExperienceRepo,
	partnerRepo ports.PartnerRepo,
	mailer ports.ConfirmationMailer,
	partners ports.PartnerNotifier,
	dedup ports.Deduplicator,
	dedupTTL time.Duration,
	logger logger.Logger,
) *ConfirmationService {
	return &ConfirmationService{
		bookingRepo:    bookingRepo,
		experienceRepo: experienceRepo,
		partnerRepo:    partnerRepo,
		mailer:         mailer,
		partners:       partners,
		dedup:          dedup,
		dedupTTL:       dedupTTL,
		logger:         logger,
	}
}

func (s *ConfirmationService) HandleBookingConfirmed(ctx context.Context, body []byte) error {
	var ev domain.BookingConfirmedEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		// a malformed message will never decode; drop it instead of looping
		s.logger.Error("invalid booking.confirmed payload", logger.String("error", err.Error()))
		return nil
	}

	key := confirmationKeyPrefix + ev.BookingID
	ok, err := s.dedup.Acquire(ctx, key, s.dedupTTL)
	if err != nil {
		return fmt.Errorf("acquire dedup key: %w", err)
	}
	if !ok {
		s.logger.Debug("duplicate booking.confirmed skipped", logger.String("booking_id", ev.BookingID))
		return nil
	}

	details, err := s.details(ctx, ev)
	if err != nil {
		s.release(ctx, key)
		return err
	}

	if err = s.mailer.SendBookingConfirmation(ctx, details); err != nil {
		s.release(ctx, key)
		return fmt.Errorf("send confirmation: %w", err)
	}

	s.partners.NotifyPartnerBooking(ctx, details)

	s.logger.Info("booking confirmation sent",
		logger.String("booking_id", ev.BookingID),
		logger.String("email", details.Booking.Customer.Email),
	)

	return nil
}

func (s *ConfirmationService) details(ctx context.Context, ev domain.BookingConfirmedEvent) (*domain.ConfirmationDetails, error) {
	booking, err := s.bookingRepo.GetByID(ctx, ev.BookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	exp, err := s.experienceRepo.GetByID(ctx, booking.ExperienceID)
	if err != nil {
		return nil, fmt.Errorf("get experience: %w", err)
	}
	partner, err := s.partnerRepo.GetByID(ctx, exp.PartnerID)
	if err != nil {
		return nil, fmt.Errorf("get partner: %w", err)
	}

	return &domain.ConfirmationDetails{
		Booking:          booking,
		Experience:       exp,
		Partner:          partner,
		OrderTrackingID:  ev.OrderTrackingID,
		ConfirmationCode: ev.ConfirmationCode,
	}, nil
}

func (s *ConfirmationService) release(ctx context.Context, key string) {
	if err := s.dedup.Release(ctx, key); err != nil {
		s.logger.Error("failed to release dedup key",
			logger.String("key", key),
			logger.String("error", err.Error()),
		)
	}
}
