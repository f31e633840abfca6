package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/Felixdivoar/natuasili/internal/domain"
	"github.com/Felixdivoar/natuasili/internal/handler/dto"
	"github.com/jonboulle/clockwork"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

const sessionHeader = "X-Session-ID"

type ExperienceSvc interface {
	Create(ctx context.Context, in domain.CreateExperienceInput) (*domain.Experience, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Experience, error)
	List(ctx context.Context) ([]*domain.Experience, error)
}

type PartnerSvc interface {
	Create(ctx context.Context, in domain.CreatePartnerInput) (*domain.Partner, error)
	List(ctx context.Context) ([]*domain.Partner, error)
}

type CartSvc interface {
	Create(ctx context.Context, in domain.CreateCartInput) (*domain.Cart, error)
	Get(ctx context.Context, id, sessionID string) (*domain.Cart, error)
	Touch(ctx context.Context, id, sessionID string, event domain.ActivityEvent) (*domain.Cart, error)
	RestartHold(ctx context.Context, id, sessionID string) (*domain.Cart, error)
	Checkout(ctx context.Context, id, sessionID string, customer domain.Customer) (*domain.Booking, error)
}

type BookingSvc interface {
	Get(ctx context.Context, id string) (*domain.Booking, error)
	ListByPartner(ctx context.Context, partnerID string) ([]*domain.Booking, error)
}

type PaymentSvc interface {
	CreateOrder(ctx context.Context, in domain.CreateOrderInput) (*domain.OrderResult, error)
}

type ReconcilerSvc interface {
	HandleIPN(ctx context.Context, n domain.IPNNotification) error
	CheckStatus(ctx context.Context, trackingID string) (*domain.StatusCheck, error)
	GetPayment(ctx context.Context, trackingID string) (*domain.PaymentRecord, error)
	ListDeadJobs(ctx context.Context, limit int) ([]*domain.ReconcileJob, error)
	RequeueJob(ctx context.Context, id int64) error
}

type Services struct {
	Experiences ExperienceSvc
	Partners    PartnerSvc
	Carts       CartSvc
	Bookings    BookingSvc
	Payments    PaymentSvc
	Reconciler  ReconcilerSvc
}

type Handler struct {
	experienceService ExperienceSvc
	partnerService    PartnerSvc
	cartService       CartSvc
	bookingService    BookingSvc
	paymentService    PaymentSvc
	reconciler        ReconcilerSvc
	frontendURL       string
	clock             clockwork.Clock
	logger            logger.Logger
}

func NewHandler(s Services, frontendURL string, clock clockwork.Clock, log logger.Logger) *Handler {
	return &Handler{
		experienceService: s.Experiences,
		partnerService:    s.Partners,
		cartService:       s.Carts,
		bookingService:    s.Bookings,
		paymentService:    s.Payments,
		reconciler:        s.Reconciler,
		frontendURL:       strings.TrimRight(frontendURL, "/"),
		clock:             clock,
		logger:            log,
	}
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())
	status, msg := errorStatus(err)
	c.JSON(status, dto.ErrorResponse{Error: msg})
}

func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrExperienceNotFound),
		errors.Is(err, domain.ErrPartnerNotFound),
		errors.Is(err, domain.ErrCartNotFound),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrPaymentNotFound),
		errors.Is(err, domain.ErrJobNotFound):
		return http.StatusNotFound, err.Error()

	case errors.Is(err, domain.ErrBookingNotPending),
		errors.Is(err, domain.ErrDuplicatePayment),
		errors.Is(err, domain.ErrSlugTaken):
		return http.StatusConflict, err.Error()

	case errors.Is(err, domain.ErrCartExpired),
		errors.Is(err, domain.ErrHoldExpired):
		return http.StatusGone, err.Error()

	case errors.Is(err, domain.ErrSameDayCutoff),
		errors.Is(err, domain.ErrAmountMismatch):
		return http.StatusUnprocessableEntity, err.Error()

	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, err.Error()

	case errors.Is(err, domain.ErrProviderRejected):
		return http.StatusBadGateway, domain.ErrProviderRejected.Error()

	case errors.Is(err, domain.ErrProviderUnavailable),
		errors.Is(err, domain.ErrProviderConfig):
		return http.StatusServiceUnavailable, domain.ErrProviderUnavailable.Error()

	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

func sessionID(c *ginext.Context) (string, bool) {
	id := strings.TrimSpace(c.GetHeader(sessionHeader))
	if id == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "missing " + sessionHeader + " header"})
		return "", false
	}
	return id, true
}

func toCustomer(r dto.CustomerRequest) domain.Customer {
	return domain.Customer{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Email:       r.Email,
		Phone:       r.Phone,
		CountryCode: r.CountryCode,
	}
}
