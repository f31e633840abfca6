package domain

import "time"

type PriceOption struct {
	Code       string `json:"code"`
	Label      string `json:"label"`
	UnitAmount int64  `json:"unit_amount"`
}

type Experience struct {
	ID           string        `json:"id"`
	Slug         string        `json:"slug"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	PartnerID    string        `json:"partner_id"`
	Currency     string        `json:"currency"`
	Capacity     int           `json:"capacity"`
	Active       bool          `json:"active"`
	PriceOptions []PriceOption `json:"price_options"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

func (e *Experience) PriceOption(code string) (PriceOption, bool) {
	for _, o := range e.PriceOptions {
		if o.Code == code {
			return o, true
		}
	}
	return PriceOption{}, false
}

// Total is the authoritative amount for a party, in minor units.
func (e *Experience) Total(code string, partySize int) (int64, error) {
	opt, ok := e.PriceOption(code)
	if !ok {
		return 0, ErrValidation
	}
	return opt.UnitAmount * int64(partySize), nil
}

type CreateExperienceInput struct {
	Slug         string
	Title        string
	Description  string
	PartnerID    string
	Currency     string
	Capacity     int
	PriceOptions []PriceOption
}
