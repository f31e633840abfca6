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
	"github.com/jonboulle/clockwork"
	"github.com/wb-go/wbf/logger"
)

const dateLayout = "2006-01-02"

type CartSettings struct {
	InactivityWindow  time.Duration
	HoldWindow        time.Duration
	TouchThrottle     time.Duration
	SameDayCutoffHour int
	Location          *time.Location
}

type CartService struct {
	cartRepo       ports.CartRepo
	bookingRepo    ports.BookingRepo
	experienceRepo ports.ExperienceRepo
	settings       CartSettings
	clock          clockwork.Clock
	logger         logger.Logger
}

func NewCartService(
	cartRepo ports.CartRepo,
	bookingRepo ports.BookingRepo,
	experienceRepo ports.ExperienceRepo,
	settings CartSettings,
	clock clockwork.Clock,
	logger logger.Logger,
) *CartService {
	if settings.Location == nil {
		settings.Location = time.UTC
	}
	return &CartService{
		cartRepo:       cartRepo,
		bookingRepo:    bookingRepo,
		experienceRepo: experienceRepo,
		settings:       settings,
		clock:          clock,
		logger:         logger,
	}
}

func (s *CartService) Create(ctx context.Context, in domain.CreateCartInput) (*domain.Cart, error) {
	if strings.TrimSpace(in.SessionID) == "" {
		return nil, fmt.Errorf("%w: session id is required", domain.ErrValidation)
	}

	exp, err := s.experienceRepo.GetBySlug(ctx, in.ExperienceSlug)
	if err != nil {
		return nil, fmt.Errorf("get experience: %w", err)
	}
	if !exp.Active {
		return nil, domain.ErrExperienceNotFound
	}
	if _, ok := exp.PriceOption(in.PriceOption); !ok {
		return nil, fmt.Errorf("%w: unknown price option %q", domain.ErrValidation, in.PriceOption)
	}
	if in.PartySize < 1 || in.PartySize > exp.Capacity {
		return nil, fmt.Errorf("%w: party size must be between 1 and %d", domain.ErrValidation, exp.Capacity)
	}

	now := s.clock.Now()
	date, err := s.checkDate(in.Date, now)
	if err != nil {
		return nil, err
	}

	cart := &domain.Cart{
		ID:             uuid.New().String(),
		SessionID:      in.SessionID,
		ExperienceSlug: exp.Slug,
		Date:           date,
		PartySize:      in.PartySize,
		PriceOption:    in.PriceOption,
		ExpiresAt:      now.Add(s.settings.InactivityWindow).UTC(),
		HoldExpiresAt:  now.Add(s.settings.HoldWindow).UTC(),
		TouchedAt:      now.UTC(),
		CreatedAt:      now.UTC(),
	}
	if err = s.cartRepo.Create(ctx, cart); err != nil {
		return nil, fmt.Errorf("create cart: %w", err)
	}

	s.logger.Info("cart created",
		logger.String("cart_id", cart.ID),
		logger.String("experience", exp.Slug),
		logger.Int("party_size", cart.PartySize),
	)

	return cart, nil
}

// Get returns the cart only to the session that owns it.
func (s *CartService) Get(ctx context.Context, id, sessionID string) (*domain.Cart, error) {
	cart, err := s.cartRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cart.SessionID != sessionID {
		return nil, domain.ErrCartNotFound
	}
	return cart, nil
}

// Touch records user activity and slides the inactivity window. Activity inside
// the throttle window is absorbed without a write.
func (s *CartService) Touch(ctx context.Context, id, sessionID string, event domain.ActivityEvent) (*domain.Cart, error) {
	if !event.Valid() {
		return nil, fmt.Errorf("%w: unknown activity event %q", domain.ErrValidation, event)
	}

	cart, err := s.Get(ctx, id, sessionID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	if cart.Expired(now) {
		return nil, domain.ErrCartExpired
	}
	if now.Sub(cart.TouchedAt) < s.settings.TouchThrottle {
		return cart, nil
	}

	updated, err := s.cartRepo.Touch(ctx, id, now.Add(s.settings.InactivityWindow).UTC(), now.UTC())
	if err != nil {
		return nil, fmt.Errorf("touch cart: %w", err)
	}

	return updated, nil
}

func (s *CartService) RestartHold(ctx context.Context, id, sessionID string) (*domain.Cart, error) {
	cart, err := s.Get(ctx, id, sessionID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	if cart.Expired(now) {
		return nil, domain.ErrCartExpired
	}

	updated, err := s.cartRepo.RestartHold(ctx, id, now.Add(s.settings.HoldWindow).UTC(), now.UTC())
	if err != nil {
		return nil, fmt.Errorf("restart hold: %w", err)
	}

	s.logger.Debug("cart hold restarted", logger.String("cart_id", id))

	return updated, nil
}

// Checkout turns the cart into a pending booking priced from the catalog.
func (s *CartService) Checkout(ctx context.Context, id, sessionID string, customer domain.Customer) (*domain.Booking, error) {
	if err := validateCustomer(customer); err != nil {
		return nil, err
	}

	cart, err := s.Get(ctx, id, sessionID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	if cart.Expired(now) {
		return nil, domain.ErrCartExpired
	}
	if cart.HoldExpired(now) {
		return nil, domain.ErrHoldExpired
	}
	if _, err = s.checkDate(cart.Date.Format(dateLayout), now); err != nil {
		return nil, err
	}

	exp, err := s.experienceRepo.GetBySlug(ctx, cart.ExperienceSlug)
	if err != nil {
		return nil, fmt.Errorf("get experience: %w", err)
	}
	total, err := exp.Total(cart.PriceOption, cart.PartySize)
	if err != nil {
		return nil, fmt.Errorf("price cart: %w", err)
	}

	booking := &domain.Booking{
		ID:            uuid.New().String(),
		ExperienceID:  exp.ID,
		CartID:        cart.ID,
		Customer:      customer,
		Date:          cart.Date,
		Quantity:      cart.PartySize,
		PriceOption:   cart.PriceOption,
		TotalAmount:   total,
		Currency:      exp.Currency,
		Status:        domain.BookingStatusPending,
		PaymentStatus: domain.PaymentStatusPending,
		CreatedAt:     now.UTC(),
		UpdatedAt:     now.UTC(),
	}
	if err = s.bookingRepo.CreateFromCart(ctx, booking, cart.ID, now.UTC()); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("cart_id", cart.ID),
		logger.Int64("total_amount", total),
		logger.String("currency", booking.Currency),
	)

	return booking, nil
}

// SweepExpired evicts carts whose inactivity window has elapsed.
func (s *CartService) SweepExpired(ctx context.Context) (int64, error) {
	n, err := s.cartRepo.DeleteExpired(ctx, s.clock.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("sweep carts: %w", err)
	}

	if n > 0 {
		s.logger.Info("expired carts swept", logger.Int64("count", n))
	}

	return n, nil
}

// checkDate parses a visit date in the service time zone and enforces that it is
// not in the past and that same-day bookings close at the cutoff hour.
func (s *CartService) checkDate(raw string, now time.Time) (time.Time, error) {
	loc := s.settings.Location
	date, err := time.ParseInLocation(dateLayout, raw, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date must be YYYY-MM-DD", domain.ErrValidation)
	}

	local := now.In(loc)
	today := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	switch {
	case date.Before(today):
		return time.Time{}, fmt.Errorf("%w: date is in the past", domain.ErrValidation)
	case date.Equal(today) && local.Hour() >= s.settings.SameDayCutoffHour:
		return time.Time{}, domain.ErrSameDayCutoff
	}

	return date, nil
}

func validateCustomer(c domain.Customer) error {
	if strings.TrimSpace(c.FirstName) == "" {
		return fmt.Errorf("%w: first name is required", domain.ErrValidation)
	}
	if _, err := mail.ParseAddress(c.Email); err != nil {
		return fmt.Errorf("%w: invalid email", domain.ErrValidation)
	}
	return nil
}
