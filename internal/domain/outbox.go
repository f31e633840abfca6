package domain

import (
	"encoding/json"
	"time"
)

const TopicBookingConfirmed = "booking.confirmed"

type OutboxMessage struct {
	ID          int64           `json:"id"`
	Topic       string          `json:"topic"`
	AggregateID string          `json:"aggregate_id"`
	Payload     json.RawMessage `json:"payload"`
	Attempts    int             `json:"attempts"`
	LastError   string          `json:"last_error"`
	CreatedAt   time.Time       `json:"created_at"`
	PublishedAt *time.Time      `json:"published_at,omitempty"`
}

type BookingConfirmedEvent struct {
	BookingID        string    `json:"booking_id"`
	OrderTrackingID  string    `json:"order_tracking_id"`
	ConfirmationCode string    `json:"confirmation_code"`
	ConfirmedAt      time.Time `json:"confirmed_at"`
}

// ConfirmationDetails is everything the notifiers need to tell the customer and
// the partner about a confirmed booking.
type ConfirmationDetails struct {
	Booking          *Booking
	Experience       *Experience
	Partner          *Partner
	OrderTrackingID  string
	ConfirmationCode string
}
