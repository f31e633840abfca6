package domain

import "errors"

var (
	ErrExperienceNotFound = errors.New("experience not found")
	ErrPartnerNotFound    = errors.New("partner not found")
	ErrCartNotFound       = errors.New("cart not found")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrPaymentNotFound    = errors.New("payment record not found")
	ErrJobNotFound        = errors.New("reconcile job not found")
)

var (
	ErrCartExpired       = errors.New("cart has expired")
	ErrHoldExpired       = errors.New("booking hold has expired")
	ErrSameDayCutoff     = errors.New("same-day bookings are closed for today")
	ErrBookingNotPending = errors.New("booking is not in pending status")
	ErrAmountMismatch    = errors.New("amount does not match booking total")
	ErrSlugTaken         = errors.New("experience slug is already taken")
	ErrDuplicatePayment  = errors.New("payment already exists")
)

var (
	ErrValidation = errors.New("validation error")
)

// Payment provider failures. Only ErrProviderUnavailable is worth retrying.
var (
	ErrProviderConfig      = errors.New("payment provider is not configured")
	ErrProviderUnavailable = errors.New("payment provider unavailable")
	ErrProviderRejected    = errors.New("payment provider rejected the request")
)
