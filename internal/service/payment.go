package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Felixdivoar/natuasili/internal/domain"
	"github.com/Felixdivoar/natuasili/internal/service/ports"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/wb-go/wbf/logger"
)

const referencePrefix = "NA-"

type PaymentSettings struct {
	CallbackURL    string
	NotificationID string
}

type PaymentOrderService struct {
	bookingRepo ports.BookingRepo
	paymentRepo ports.PaymentRepo
	gateway     ports.PaymentGateway
	settings    PaymentSettings
	locks       *keyedMutex
	clock       clockwork.Clock
	logger      logger.Logger
}

func NewPaymentOrderService(
	bookingRepo ports.BookingRepo,
	paymentRepo ports.PaymentRepo,
	gateway ports.PaymentGateway,
	settings PaymentSettings,
	clock clockwork.Clock,
	logger logger.Logger,
) *PaymentOrderService {
	return &PaymentOrderService{
		bookingRepo: bookingRepo,
		paymentRepo: paymentRepo,
		gateway:     gateway,
		settings:    settings,
		locks:       newKeyedMutex(),
		clock:       clock,
		logger:      logger,
	}
}

// CreateOrder registers a payment order with the provider for a pending booking
// and records it locally. Nothing is stored unless the provider accepted the
// order, and no redirect is returned unless the record was stored. A booking
// with a pending or completed order gets no second one.
func (s *PaymentOrderService) CreateOrder(ctx context.Context, in domain.CreateOrderInput) (*domain.OrderResult, error) {
	if err := validateOrder(in); err != nil {
		return nil, err
	}
	if s.settings.NotificationID == "" || s.settings.CallbackURL == "" {
		return nil, fmt.Errorf("%w: notification id and callback url are required", domain.ErrProviderConfig)
	}

	unlock := s.locks.Lock(in.BookingID)
	defer unlock()

	booking, err := s.bookingRepo.GetByID(ctx, in.BookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if booking.Status != domain.BookingStatusPending {
		return nil, domain.ErrBookingNotPending
	}
	if in.Amount != booking.TotalAmount || !strings.EqualFold(in.Currency, booking.Currency) {
		s.logger.Warn("order amount does not match booking",
			logger.String("booking_id", booking.ID),
			logger.Int64("requested", in.Amount),
			logger.Int64("expected", booking.TotalAmount),
		)
		return nil, domain.ErrAmountMismatch
	}

	live, err := s.paymentRepo.GetLiveByBooking(ctx, booking.ID)
	switch {
	case err == nil:
		s.logger.Warn("booking already has a live payment order",
			logger.String("booking_id", booking.ID),
			logger.String("order_tracking_id", live.OrderTrackingID),
			logger.String("status", string(live.Status)),
		)
		return nil, domain.ErrDuplicatePayment
	case !errors.Is(err, domain.ErrPaymentNotFound):
		return nil, fmt.Errorf("check live payment: %w", err)
	}

	customer := in.Customer
	if customer.Email == "" {
		customer = booking.Customer
	}

	reference := referencePrefix + strings.ReplaceAll(uuid.New().String(), "-", "")
	order, err := s.gateway.SubmitOrder(ctx, domain.OrderRequest{
		Reference:      reference,
		Amount:         booking.TotalAmount,
		Currency:       booking.Currency,
		Description:    in.Description,
		CallbackURL:    s.settings.CallbackURL,
		NotificationID: s.settings.NotificationID,
		Customer:       customer,
	})
	if err != nil {
		s.logger.Error("payment order rejected",
			logger.String("booking_id", booking.ID),
			logger.String("reference", reference),
			logger.String("error", err.Error()),
		)
		return nil, fmt.Errorf("submit order: %w", err)
	}

	now := s.clock.Now().UTC()
	record := &domain.PaymentRecord{
		ID:              uuid.New().String(),
		BookingID:       booking.ID,
		Reference:       reference,
		OrderTrackingID: order.OrderTrackingID,
		Amount:          booking.TotalAmount,
		Currency:        booking.Currency,
		Status:          domain.PaymentStatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err = s.paymentRepo.Create(ctx, record); err != nil {
		// the provider holds an order we could not record; it never gets a redirect
		s.logger.Error("failed to persist payment record",
			logger.String("booking_id", booking.ID),
			logger.String("order_tracking_id", order.OrderTrackingID),
			logger.String("error", err.Error()),
		)
		if errors.Is(err, domain.ErrDuplicatePayment) {
			return nil, err
		}
		return nil, fmt.Errorf("persist payment: %w", err)
	}

	s.logger.Info("payment order created",
		logger.String("booking_id", booking.ID),
		logger.String("reference", reference),
		logger.String("order_tracking_id", order.OrderTrackingID),
		logger.Int64("amount", record.Amount),
		logger.String("currency", record.Currency),
	)

	return &domain.OrderResult{
		PaymentID:   record.ID,
		Reference:   reference,
		TrackingID:  order.OrderTrackingID,
		RedirectURL: order.RedirectURL,
	}, nil
}

func validateOrder(in domain.CreateOrderInput) error {
	switch {
	case in.BookingID == "":
		return fmt.Errorf("%w: booking id is required", domain.ErrValidation)
	case in.Amount <= 0:
		return fmt.Errorf("%w: amount must be positive", domain.ErrValidation)
	case len(in.Currency) != 3:
		return fmt.Errorf("%w: currency must be an ISO 4217 code", domain.ErrValidation)
	case strings.TrimSpace(in.Description) == "":
		return fmt.Errorf("%w: description is required", domain.ErrValidation)
	}
	return nil
}
