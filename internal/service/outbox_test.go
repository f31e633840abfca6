package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/Felixdivoar/natuasili/internal/domain"
	"github.com/Felixdivoar/natuasili/internal/service/ports/mocks"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOutboxRelay_RelayPending(t *testing.T) {
	repo := mocks.NewMockOutboxRepo(t)
	pub := mocks.NewMockPublisher(t)
	relay := NewOutboxRelay(repo, pub, OutboxSettings{BatchSize: 5, Lease: 30 * time.Second},
		clockwork.NewFakeClockAt(testNow), newTestLogger(t))

	msgs := []*domain.OutboxMessage{
		{ID: 1, Topic: domain.TopicBookingConfirmed, Payload: json.RawMessage(`{"booking_id":"b1"}`)},
		{ID: 2, Topic: domain.TopicBookingConfirmed, Payload: json.RawMessage(`{"booking_id":"b2"}`)},
	}
	repo.EXPECT().ClaimPending(mock.Anything, testNow, 30*time.Second, 5).Return(msgs, nil)
	pub.EXPECT().Publish(mock.Anything, domain.TopicBookingConfirmed, []byte(`{"booking_id":"b1"}`)).Return(nil)
	pub.EXPECT().Publish(mock.Anything, domain.TopicBookingConfirmed, []byte(`{"booking_id":"b2"}`)).Return(errors.New("channel closed"))
	repo.EXPECT().MarkPublished(mock.Anything, int64(1), testNow).Return(nil)
	repo.EXPECT().MarkFailed(mock.Anything, int64(2), "channel closed").Return(nil)

	sent, err := relay.RelayPending(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, sent)
}

func TestOutboxRelay_ClaimError(t *testing.T) {
	repo := mocks.NewMockOutboxRepo(t)
	relay := NewOutboxRelay(repo, mocks.NewMockPublisher(t), OutboxSettings{},
		clockwork.NewFakeClockAt(testNow), newTestLogger(t))

	repo.EXPECT().ClaimPending(mock.Anything, mock.Anything, mock.Anything, 50).Return(nil, errors.New("db down"))

	_, err := relay.RelayPending(context.Background())

	assert.Error(t, err)
}
