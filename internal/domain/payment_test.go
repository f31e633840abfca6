package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaymentStatus_Apply(t *testing.T) {
	tests := []struct {
		from, to PaymentStatus
		want     Transition
	}{
		{PaymentStatusPending, PaymentStatusPending, TransitionUnchanged},
		{PaymentStatusPending, PaymentStatusCompleted, TransitionAdvanced},
		{PaymentStatusPending, PaymentStatusFailed, TransitionAdvanced},
		{PaymentStatusPending, PaymentStatusReversed, TransitionRejected},
		{PaymentStatusFailed, PaymentStatusCompleted, TransitionAdvanced},
		{PaymentStatusFailed, PaymentStatusPending, TransitionRejected},
		{PaymentStatusCompleted, PaymentStatusCompleted, TransitionUnchanged},
		{PaymentStatusCompleted, PaymentStatusPending, TransitionRejected},
		{PaymentStatusCompleted, PaymentStatusFailed, TransitionRejected},
		{PaymentStatusCompleted, PaymentStatusReversed, TransitionAdvanced},
		{PaymentStatusReversed, PaymentStatusCompleted, TransitionRejected},
		{PaymentStatusReversed, PaymentStatusPending, TransitionRejected},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.Apply(tt.to))
		})
	}
}

func TestParseProviderStatus(t *testing.T) {
	assert.Equal(t, PaymentStatusCompleted, ParseProviderStatus("Completed", 1))
	assert.Equal(t, PaymentStatusCompleted, ParseProviderStatus("COMPLETED", 0))
	assert.Equal(t, PaymentStatusFailed, ParseProviderStatus("Failed", 2))
	assert.Equal(t, PaymentStatusReversed, ParseProviderStatus("", 3))
	assert.Equal(t, PaymentStatusPending, ParseProviderStatus("INVALID", 0))
	assert.Equal(t, PaymentStatusPending, ParseProviderStatus("", 0))
	assert.Equal(t, PaymentStatusCompleted, ParseProviderStatus("something new", 1))
}

func TestBookingEffectFor(t *testing.T) {
	assert.Equal(t, BookingEffectConfirmed, BookingEffectFor(BookingStatusPending, PaymentStatusCompleted))
	assert.Equal(t, BookingEffectConflict, BookingEffectFor(BookingStatusConfirmed, PaymentStatusCompleted))
	assert.Equal(t, BookingEffectConflict, BookingEffectFor(BookingStatusRefunded, PaymentStatusCompleted))
	assert.Equal(t, BookingEffectConflict, BookingEffectFor(BookingStatusCancelled, PaymentStatusCompleted))
	assert.Equal(t, BookingEffectRefunded, BookingEffectFor(BookingStatusConfirmed, PaymentStatusReversed))
	assert.Equal(t, BookingEffectNone, BookingEffectFor(BookingStatusPending, PaymentStatusFailed))
	assert.Equal(t, BookingEffectNone, BookingEffectFor(BookingStatusPending, PaymentStatusReversed))
	assert.Equal(t, BookingEffectNone, BookingEffectFor(BookingStatusConfirmed, PaymentStatusFailed))
}

func TestBookingStatus_CanTransitionTo(t *testing.T) {
	assert.True(t, BookingStatusPending.CanTransitionTo(BookingStatusConfirmed))
	assert.True(t, BookingStatusPending.CanTransitionTo(BookingStatusCancelled))
	assert.True(t, BookingStatusConfirmed.CanTransitionTo(BookingStatusRefunded))
	assert.False(t, BookingStatusConfirmed.CanTransitionTo(BookingStatusPending))
	assert.False(t, BookingStatusCancelled.CanTransitionTo(BookingStatusConfirmed))
	assert.False(t, BookingStatusRefunded.CanTransitionTo(BookingStatusConfirmed))
}

func TestStatusesLeadingTo(t *testing.T) {
	assert.Equal(t, []string{"pending"}, StatusesLeadingTo(BookingStatusConfirmed))
	assert.Equal(t, []string{"pending"}, StatusesLeadingTo(BookingStatusCancelled))
	assert.Equal(t, []string{"confirmed"}, StatusesLeadingTo(BookingStatusRefunded))
	assert.Empty(t, StatusesLeadingTo(BookingStatusPending))
}
