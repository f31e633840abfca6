package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Felixdivoar/natuasili/internal/domain"
	"github.com/Felixdivoar/natuasili/internal/service/ports/mocks"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

var testNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func TestBookingService_Get(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	partnerRepo := mocks.NewMockPartnerRepo(t)
	svc := NewBookingService(bookingRepo, partnerRepo, 10*time.Minute, clockwork.NewFakeClockAt(testNow), newTestLogger(t))

	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(&domain.Booking{ID: "b1"}, nil)

	b, err := svc.Get(context.Background(), "b1")

	require.NoError(t, err)
	assert.Equal(t, "b1", b.ID)
}

func TestBookingService_ListByPartner_UnknownPartner(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	partnerRepo := mocks.NewMockPartnerRepo(t)
	svc := NewBookingService(bookingRepo, partnerRepo, 10*time.Minute, clockwork.NewFakeClockAt(testNow), newTestLogger(t))

	partnerRepo.EXPECT().GetByID(mock.Anything, "p404").Return(nil, domain.ErrPartnerNotFound)

	_, err := svc.ListByPartner(context.Background(), "p404")

	assert.ErrorIs(t, err, domain.ErrPartnerNotFound)
}

func TestBookingService_ListByPartner(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	partnerRepo := mocks.NewMockPartnerRepo(t)
	svc := NewBookingService(bookingRepo, partnerRepo, 10*time.Minute, clockwork.NewFakeClockAt(testNow), newTestLogger(t))

	partnerRepo.EXPECT().GetByID(mock.Anything, "p1").Return(&domain.Partner{ID: "p1"}, nil)
	bookingRepo.EXPECT().ListByPartner(mock.Anything, "p1").Return([]*domain.Booking{{ID: "b1"}, {ID: "b2"}}, nil)

	list, err := svc.ListByPartner(context.Background(), "p1")

	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestBookingService_CancelAbandoned_UsesHoldWindow(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	partnerRepo := mocks.NewMockPartnerRepo(t)
	svc := NewBookingService(bookingRepo, partnerRepo, 10*time.Minute, clockwork.NewFakeClockAt(testNow), newTestLogger(t))

	bookingRepo.EXPECT().CancelAbandoned(mock.Anything, testNow.Add(-10*time.Minute)).
		Return([]*domain.Booking{{ID: "b1", Status: domain.BookingStatusCancelled}}, nil)

	cancelled, err := svc.CancelAbandoned(context.Background())

	require.NoError(t, err)
	require.Len(t, cancelled, 1)
	assert.Equal(t, domain.BookingStatusCancelled, cancelled[0].Status)
}

func TestBookingService_CancelAbandoned_Error(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	partnerRepo := mocks.NewMockPartnerRepo(t)
	svc := NewBookingService(bookingRepo, partnerRepo, 10*time.Minute, clockwork.NewFakeClockAt(testNow), newTestLogger(t))

	bookingRepo.EXPECT().CancelAbandoned(mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

	_, err := svc.CancelAbandoned(context.Background())

	assert.Error(t, err)
}
