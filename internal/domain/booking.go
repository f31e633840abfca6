package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusRefunded  BookingStatus = "refunded"
)

var bookingStatuses = []BookingStatus{
	BookingStatusPending,
	BookingStatusConfirmed,
	BookingStatusCancelled,
	BookingStatusRefunded,
}

// CanTransitionTo reports whether the booking lifecycle allows moving from s to next.
// Bookings are never deleted, only moved forward.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	switch s {
	case BookingStatusPending:
		return next == BookingStatusConfirmed || next == BookingStatusCancelled
	case BookingStatusConfirmed:
		return next == BookingStatusRefunded
	}
	return false
}

// StatusesLeadingTo lists the statuses from which a booking may move to next.
// Status updates use it as their WHERE guard so SQL follows CanTransitionTo.
func StatusesLeadingTo(next BookingStatus) []string {
	var from []string
	for _, s := range bookingStatuses {
		if s.CanTransitionTo(next) {
			from = append(from, string(s))
		}
	}
	return from
}

type Customer struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	CountryCode string `json:"country_code"`
}

func (c Customer) FullName() string {
	if c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}

type Booking struct {
	ID            string        `json:"id"`
	ExperienceID  string        `json:"experience_id"`
	CartID        string        `json:"cart_id"`
	Customer      Customer      `json:"customer"`
	Date          time.Time     `json:"date"`
	Quantity      int           `json:"quantity"`
	PriceOption   string        `json:"price_option"`
	TotalAmount   int64         `json:"total_amount"`
	Currency      string        `json:"currency"`
	Status        BookingStatus `json:"status"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
	ConfirmedAt   *time.Time    `json:"confirmed_at,omitempty"`
}
