package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCart_Expired(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	c := &Cart{ExpiresAt: now.Add(time.Minute), HoldExpiresAt: now.Add(-time.Second)}

	assert.False(t, c.Expired(now))
	assert.True(t, c.Expired(now.Add(time.Minute)))
	assert.True(t, c.HoldExpired(now))
}

func TestActivityEvent_Valid(t *testing.T) {
	for _, e := range []ActivityEvent{ActivityPointer, ActivityKey, ActivityScroll, ActivityTouch} {
		assert.True(t, e.Valid(), e)
	}
	assert.False(t, ActivityEvent("resize").Valid())
}

func TestExperience_Total(t *testing.T) {
	e := &Experience{PriceOptions: []PriceOption{
		{Code: "adult", UnitAmount: 500000},
		{Code: "child", UnitAmount: 250000},
	}}

	total, err := e.Total("adult", 2)
	require.NoError(t, err)
	assert.Equal(t, int64(1000000), total)

	_, err = e.Total("senior", 1)
	assert.ErrorIs(t, err, ErrValidation)
}
