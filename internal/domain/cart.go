package domain

import "time"

type ActivityEvent string

const (
	ActivityPointer ActivityEvent = "pointer"
	ActivityKey     ActivityEvent = "key"
	ActivityScroll  ActivityEvent = "scroll"
	ActivityTouch   ActivityEvent = "touch"
)

func (e ActivityEvent) Valid() bool {
	switch e {
	case ActivityPointer, ActivityKey, ActivityScroll, ActivityTouch:
		return true
	}
	return false
}

type Cart struct {
	ID             string    `json:"id"`
	SessionID      string    `json:"session_id"`
	ExperienceSlug string    `json:"experience_slug"`
	Date           time.Time `json:"date"`
	PartySize      int       `json:"party_size"`
	PriceOption    string    `json:"price_option"`
	ExpiresAt      time.Time `json:"expires_at"`
	HoldExpiresAt  time.Time `json:"hold_expires_at"`
	TouchedAt      time.Time `json:"touched_at"`
	CreatedAt      time.Time `json:"created_at"`
}

// Expired reports whether the inactivity window has elapsed. Expired carts are
// eligible for the sweep.
func (c *Cart) Expired(now time.Time) bool {
	return !now.Before(c.ExpiresAt)
}

func (c *Cart) HoldExpired(now time.Time) bool {
	return !now.Before(c.HoldExpiresAt)
}

type CreateCartInput struct {
	SessionID      string
	ExperienceSlug string
	Date           string // YYYY-MM-DD in the service time zone
	PartySize      int
	PriceOption    string
}
