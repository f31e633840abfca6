package domain

import (
	"encoding/json"
	"strings"
	"time"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusReversed  PaymentStatus = "reversed"
)

// Transition is the outcome of feeding a provider status into the payment state machine.
type Transition string

const (
	TransitionUnchanged Transition = "unchanged"
	TransitionAdvanced  Transition = "advanced"
	TransitionRejected  Transition = "rejected"
)

// Apply runs the monotonic payment state machine:
//
//	pending   -> completed | failed
//	failed    -> completed | failed
//	completed -> reversed
//
// The same status is Unchanged. Everything else, including any move back to
// pending, is Rejected and must be ignored by the caller.
func (s PaymentStatus) Apply(next PaymentStatus) Transition {
	if s == next {
		return TransitionUnchanged
	}
	switch s {
	case PaymentStatusPending, PaymentStatusFailed:
		if next == PaymentStatusCompleted || next == PaymentStatusFailed {
			return TransitionAdvanced
		}
	case PaymentStatusCompleted:
		if next == PaymentStatusReversed {
			return TransitionAdvanced
		}
	}
	return TransitionRejected
}

// ParseProviderStatus maps the provider's payment_status_description / status_code
// pair onto a local status. The description wins when both are present.
func ParseProviderStatus(description string, code int) PaymentStatus {
	switch strings.ToUpper(strings.TrimSpace(description)) {
	case "COMPLETED":
		return PaymentStatusCompleted
	case "FAILED":
		return PaymentStatusFailed
	case "REVERSED":
		return PaymentStatusReversed
	case "INVALID", "PENDING":
		return PaymentStatusPending
	}
	switch code {
	case 1:
		return PaymentStatusCompleted
	case 2:
		return PaymentStatusFailed
	case 3:
		return PaymentStatusReversed
	}
	return PaymentStatusPending
}

// BookingEffect is what happened to the linked booking when a payment advanced.
type BookingEffect string

const (
	BookingEffectNone      BookingEffect = "none"
	BookingEffectConfirmed BookingEffect = "confirmed"
	BookingEffectRefunded  BookingEffect = "refunded"
	BookingEffectConflict  BookingEffect = "conflict"
)

// BookingEffectFor decides how a booking in status booking reacts to one of its
// payments advancing to payment. Confirmation only ever comes from a completed
// payment. A payment that completes on a booking that can no longer be
// confirmed is a conflict: the booking was cancelled, or another order for it
// already settled and the customer paid twice.
func BookingEffectFor(booking BookingStatus, payment PaymentStatus) BookingEffect {
	switch payment {
	case PaymentStatusCompleted:
		if booking.CanTransitionTo(BookingStatusConfirmed) {
			return BookingEffectConfirmed
		}
		return BookingEffectConflict
	case PaymentStatusReversed:
		if booking.CanTransitionTo(BookingStatusRefunded) {
			return BookingEffectRefunded
		}
	}
	return BookingEffectNone
}

type PaymentRecord struct {
	ID                 string          `json:"id"`
	BookingID          string          `json:"booking_id"`
	Reference          string          `json:"reference"`
	OrderTrackingID    string          `json:"order_tracking_id"`
	Amount             int64           `json:"amount"`
	Currency           string          `json:"currency"`
	Status             PaymentStatus   `json:"status"`
	ConfirmationCode   string          `json:"confirmation_code"`
	PaymentMethod      string          `json:"payment_method"`
	RawProviderPayload json.RawMessage `json:"raw_provider_payload,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

type PaymentEventSource string

const (
	PaymentEventIPN         PaymentEventSource = "ipn"
	PaymentEventStatusCheck PaymentEventSource = "status_check"
	PaymentEventCallback    PaymentEventSource = "callback"
)

// PaymentEvent is an append-only audit entry for every provider interaction.
type PaymentEvent struct {
	ID              int64              `json:"id"`
	OrderTrackingID string             `json:"order_tracking_id"`
	Source          PaymentEventSource `json:"source"`
	Payload         json.RawMessage    `json:"payload"`
	CreatedAt       time.Time          `json:"created_at"`
}

type IPNNotification struct {
	OrderTrackingID   string
	MerchantReference string
	NotificationType  string
	Raw               json.RawMessage
}

// OrderRequest is what the gateway submits to the provider. Amount is in minor units.
type OrderRequest struct {
	Reference      string
	Amount         int64
	Currency       string
	Description    string
	CallbackURL    string
	NotificationID string
	Customer       Customer
}

type ProviderOrder struct {
	OrderTrackingID   string
	MerchantReference string
	RedirectURL       string
}

type ProviderStatus struct {
	OrderTrackingID   string
	MerchantReference string
	Status            PaymentStatus
	Description       string
	StatusCode        int
	ConfirmationCode  string
	PaymentMethod     string
	Amount            float64
	Currency          string
	Raw               json.RawMessage
}

type CreateOrderInput struct {
	BookingID   string
	Amount      int64
	Currency    string
	Description string
	Customer    Customer
}

type OrderResult struct {
	PaymentID   string
	Reference   string
	TrackingID  string
	RedirectURL string
}

type StatusUpdate struct {
	OrderTrackingID  string
	Status           PaymentStatus
	ConfirmationCode string
	PaymentMethod    string
	Payload          json.RawMessage
	At               time.Time
}

type ApplyResult struct {
	Payment       *PaymentRecord
	Previous      PaymentStatus
	Transition    Transition
	BookingStatus BookingStatus
	Effect        BookingEffect
}

// BookingConfirmed is true only for the call that moved the booking out of pending.
func (r *ApplyResult) BookingConfirmed() bool {
	return r.Effect == BookingEffectConfirmed
}

// StatusCheck is the pull-path answer: the raw provider payload plus the local view.
type StatusCheck struct {
	Payload       json.RawMessage
	Payment       *PaymentRecord
	BookingStatus BookingStatus
	Transition    Transition
	Effect        BookingEffect
}
