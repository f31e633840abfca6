package dto

import (
	"encoding/json"
	"time"

	"github.com/Felixdivoar/natuasili/internal/countdown"
	"github.com/Felixdivoar/natuasili/internal/domain"
)

const dateLayout = "2006-01-02"

type PriceOptionResponse struct {
	Code       string `json:"code"`
	Label      string `json:"label"`
	UnitAmount int64  `json:"unit_amount"`
}

type ExperienceResponse struct {
	ID           string                `json:"id"`
	Slug         string                `json:"slug"`
	Title        string                `json:"title"`
	Description  string                `json:"description"`
	PartnerID    string                `json:"partner_id"`
	Currency     string                `json:"currency"`
	Capacity     int                   `json:"capacity"`
	PriceOptions []PriceOptionResponse `json:"price_options"`
	CreatedAt    string                `json:"created_at"`
}

type PartnerResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

// CartResponse seeds the client countdowns from the server deadlines.
type CartResponse struct {
	ID                    string `json:"id"`
	ExperienceSlug        string `json:"experience_slug"`
	Date                  string `json:"date"`
	PartySize             int    `json:"party_size"`
	PriceOption           string `json:"price_option"`
	ExpiresAt             string `json:"expires_at"`
	HoldExpiresAt         string `json:"hold_expires_at"`
	InactivitySecondsLeft int    `json:"inactivity_seconds_left"`
	HoldSecondsLeft       int    `json:"hold_seconds_left"`
}

type BookingResponse struct {
	ID            string `json:"id"`
	ExperienceID  string `json:"experience_id"`
	Date          string `json:"date"`
	Quantity      int    `json:"quantity"`
	PriceOption   string `json:"price_option"`
	TotalAmount   int64  `json:"total_amount"`
	Currency      string `json:"currency"`
	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`
	CustomerName  string `json:"customer_name"`
	CreatedAt     string `json:"created_at"`
	ConfirmedAt   string `json:"confirmed_at,omitempty"`
}

// OrderResponse is the payment order contract. Exactly one of RedirectURL or
// Error is set.
type OrderResponse struct {
	OK          bool   `json:"ok"`
	RedirectURL string `json:"redirect_url,omitempty"`
	TrackingID  string `json:"tracking_id,omitempty"`
	Error       string `json:"error,omitempty"`
}

type PaymentStatusResponse struct {
	TrackingID    string          `json:"tracking_id"`
	BookingID     string          `json:"booking_id,omitempty"`
	PaymentStatus string          `json:"payment_status,omitempty"`
	BookingStatus string          `json:"booking_status,omitempty"`
	Transition    string          `json:"transition,omitempty"`
	Provider      json.RawMessage `json:"provider"`
}

type PaymentResponse struct {
	ID               string `json:"id"`
	BookingID        string `json:"booking_id"`
	Reference        string `json:"reference"`
	OrderTrackingID  string `json:"order_tracking_id"`
	Amount           int64  `json:"amount"`
	Currency         string `json:"currency"`
	Status           string `json:"status"`
	ConfirmationCode string `json:"confirmation_code,omitempty"`
	PaymentMethod    string `json:"payment_method,omitempty"`
	UpdatedAt        string `json:"updated_at"`
}

type ReconcileJobResponse struct {
	ID              int64  `json:"id"`
	OrderTrackingID string `json:"order_tracking_id"`
	Source          string `json:"source"`
	Attempts        int    `json:"attempts"`
	LastError       string `json:"last_error"`
	State           string `json:"state"`
	NextAttemptAt   string `json:"next_attempt_at"`
	UpdatedAt       string `json:"updated_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToExperienceResponse(e *domain.Experience) ExperienceResponse {
	options := make([]PriceOptionResponse, 0, len(e.PriceOptions))
	for _, o := range e.PriceOptions {
		options = append(options, PriceOptionResponse{Code: o.Code, Label: o.Label, UnitAmount: o.UnitAmount})
	}

	return ExperienceResponse{
		ID:           e.ID,
		Slug:         e.Slug,
		Title:        e.Title,
		Description:  e.Description,
		PartnerID:    e.PartnerID,
		Currency:     e.Currency,
		Capacity:     e.Capacity,
		PriceOptions: options,
		CreatedAt:    e.CreatedAt.Format(time.RFC3339),
	}
}

func ToPartnerResponse(p *domain.Partner) PartnerResponse {
	return PartnerResponse{
		ID:             p.ID,
		Name:           p.Name,
		Email:          p.Email,
		TelegramChatID: p.TelegramChatID,
		CreatedAt:      p.CreatedAt.Format(time.RFC3339),
	}
}

func ToCartResponse(c *domain.Cart, now time.Time) CartResponse {
	return CartResponse{
		ID:                    c.ID,
		ExperienceSlug:        c.ExperienceSlug,
		Date:                  c.Date.Format(dateLayout),
		PartySize:             c.PartySize,
		PriceOption:           c.PriceOption,
		ExpiresAt:             c.ExpiresAt.Format(time.RFC3339),
		HoldExpiresAt:         c.HoldExpiresAt.Format(time.RFC3339),
		InactivitySecondsLeft: countdown.Until(c.ExpiresAt, now),
		HoldSecondsLeft:       countdown.Until(c.HoldExpiresAt, now),
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	resp := BookingResponse{
		ID:            b.ID,
		ExperienceID:  b.ExperienceID,
		Date:          b.Date.Format(dateLayout),
		Quantity:      b.Quantity,
		PriceOption:   b.PriceOption,
		TotalAmount:   b.TotalAmount,
		Currency:      b.Currency,
		Status:        string(b.Status),
		PaymentStatus: string(b.PaymentStatus),
		CustomerName:  b.Customer.FullName(),
		CreatedAt:     b.CreatedAt.Format(time.RFC3339),
	}
	if b.ConfirmedAt != nil {
		resp.ConfirmedAt = b.ConfirmedAt.Format(time.RFC3339)
	}
	return resp
}

func ToPaymentStatusResponse(trackingID string, sc *domain.StatusCheck) PaymentStatusResponse {
	resp := PaymentStatusResponse{
		TrackingID:    trackingID,
		BookingStatus: string(sc.BookingStatus),
		Transition:    string(sc.Transition),
		Provider:      sc.Payload,
	}
	if sc.Payment != nil {
		resp.BookingID = sc.Payment.BookingID
		resp.PaymentStatus = string(sc.Payment.Status)
	}
	if len(resp.Provider) == 0 {
		resp.Provider = json.RawMessage("null")
	}
	return resp
}

func ToPaymentResponse(p *domain.PaymentRecord) PaymentResponse {
	return PaymentResponse{
		ID:               p.ID,
		BookingID:        p.BookingID,
		Reference:        p.Reference,
		OrderTrackingID:  p.OrderTrackingID,
		Amount:           p.Amount,
		Currency:         p.Currency,
		Status:           string(p.Status),
		ConfirmationCode: p.ConfirmationCode,
		PaymentMethod:    p.PaymentMethod,
		UpdatedAt:        p.UpdatedAt.Format(time.RFC3339),
	}
}

func ToReconcileJobResponse(j *domain.ReconcileJob) ReconcileJobResponse {
	return ReconcileJobResponse{
		ID:              j.ID,
		OrderTrackingID: j.OrderTrackingID,
		Source:          string(j.Source),
		Attempts:        j.Attempts,
		LastError:       j.LastError,
		State:           string(j.State),
		NextAttemptAt:   j.NextAttemptAt.Format(time.RFC3339),
		UpdatedAt:       j.UpdatedAt.Format(time.RFC3339),
	}
}
