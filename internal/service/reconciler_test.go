package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Felixdivoar/natuasili/internal/domain"
	"github.com/Felixdivoar/natuasili/internal/service/ports/mocks"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testReconcileSettings = ReconcileSettings{
	BaseDelay:   30 * time.Second,
	MaxDelay:    10 * time.Minute,
	MaxAttempts: 5,
	BatchSize:   10,
	Lease:       time.Minute,
}

type reconcilerDeps struct {
	payments *mocks.MockPaymentRepo
	queue    *mocks.MockReconcileQueue
	gateway  *mocks.MockPaymentGateway
	alerter  *mocks.MockAlerter
	clock    *clockwork.FakeClock
	svc      *Reconciler
}

func newReconcilerDeps(t *testing.T) *reconcilerDeps {
	d := &reconcilerDeps{
		payments: mocks.NewMockPaymentRepo(t),
		queue:    mocks.NewMockReconcileQueue(t),
		gateway:  mocks.NewMockPaymentGateway(t),
		alerter:  mocks.NewMockAlerter(t),
		clock:    clockwork.NewFakeClockAt(testNow),
	}
	d.svc = NewReconciler(d.payments, d.queue, d.gateway, d.alerter, testReconcileSettings, d.clock, newTestLogger(t))
	return d
}

func completedStatus(trackingID string) *domain.ProviderStatus {
	return &domain.ProviderStatus{
		OrderTrackingID:  trackingID,
		Status:           domain.PaymentStatusCompleted,
		Description:      "Completed",
		StatusCode:       1,
		ConfirmationCode: "QWE123RTY",
		PaymentMethod:    "MpesaKE",
		Amount:           10000,
		Currency:         "KES",
		Raw:              json.RawMessage(`{"payment_status_description":"Completed","status_code":1}`),
	}
}

func confirmedResult(trackingID string) *domain.ApplyResult {
	return &domain.ApplyResult{
		Payment: &domain.PaymentRecord{
			BookingID:       "b1",
			OrderTrackingID: trackingID,
			Amount:          1000000,
			Currency:        "KES",
			Status:          domain.PaymentStatusCompleted,
		},
		Previous:      domain.PaymentStatusPending,
		Transition:    domain.TransitionAdvanced,
		BookingStatus: domain.BookingStatusConfirmed,
		Effect:        domain.BookingEffectConfirmed,
	}
}

func ipn(trackingID string) domain.IPNNotification {
	return domain.IPNNotification{
		OrderTrackingID:   trackingID,
		MerchantReference: "NA-1",
		NotificationType:  "IPNCHANGE",
		Raw:               json.RawMessage(`{"OrderTrackingId":"` + trackingID + `"}`),
	}
}

func TestReconciler_HandleIPN_Completed(t *testing.T) {
	d := newReconcilerDeps(t)

	d.payments.EXPECT().LogEvent(mock.Anything, mock.MatchedBy(func(e *domain.PaymentEvent) bool {
		return e.Source == domain.PaymentEventIPN && e.OrderTrackingID == "abc-123"
	})).Return(nil).Once()
	d.gateway.EXPECT().GetTransactionStatus(mock.Anything, "abc-123").Return(completedStatus("abc-123"), nil)
	d.payments.EXPECT().LogEvent(mock.Anything, mock.MatchedBy(func(e *domain.PaymentEvent) bool {
		return e.Source == domain.PaymentEventStatusCheck && len(e.Payload) > 0
	})).Return(nil).Once()
	d.payments.EXPECT().ApplyStatus(mock.Anything, mock.MatchedBy(func(u domain.StatusUpdate) bool {
		return u.Status == domain.PaymentStatusCompleted && u.ConfirmationCode == "QWE123RTY"
	})).Return(confirmedResult("abc-123"), nil)

	err := d.svc.HandleIPN(context.Background(), ipn("abc-123"))

	require.NoError(t, err)
}

func TestReconciler_HandleIPN_MissingTrackingID(t *testing.T) {
	d := newReconcilerDeps(t)

	d.payments.EXPECT().LogEvent(mock.Anything, mock.Anything).Return(nil).Once()

	err := d.svc.HandleIPN(context.Background(), ipn(""))

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReconciler_HandleIPN_LogFailureStillReconciles(t *testing.T) {
	d := newReconcilerDeps(t)

	d.payments.EXPECT().LogEvent(mock.Anything, mock.MatchedBy(func(e *domain.PaymentEvent) bool {
		return e.Source == domain.PaymentEventIPN
	})).Return(errors.New("disk full")).Once()
	d.gateway.EXPECT().GetTransactionStatus(mock.Anything, "abc-123").Return(completedStatus("abc-123"), nil)
	d.payments.EXPECT().LogEvent(mock.Anything, mock.MatchedBy(func(e *domain.PaymentEvent) bool {
		return e.Source == domain.PaymentEventStatusCheck
	})).Return(nil).Once()
	d.payments.EXPECT().ApplyStatus(mock.Anything, mock.Anything).Return(confirmedResult("abc-123"), nil)

	require.NoError(t, d.svc.HandleIPN(context.Background(), ipn("abc-123")))
}

func TestReconciler_HandleIPN_ProviderDownSchedulesRetry(t *testing.T) {
	d := newReconcilerDeps(t)

	d.payments.EXPECT().LogEvent(mock.Anything, mock.Anything).Return(nil).Once()
	d.gateway.EXPECT().GetTransactionStatus(mock.Anything, "abc-123").
		Return(nil, fmt.Errorf("status: %w", domain.ErrProviderUnavailable))
	d.queue.EXPECT().Enqueue(mock.Anything, "abc-123", domain.PaymentEventIPN, mock.Anything, testNow.Add(30*time.Second)).
		Return(nil)

	err := d.svc.HandleIPN(context.Background(), ipn("abc-123"))

	assert.ErrorIs(t, err, domain.ErrProviderUnavailable)
}

func TestReconciler_HandleIPN_RejectedIsNotRetried(t *testing.T) {
	d := newReconcilerDeps(t)

	d.payments.EXPECT().LogEvent(mock.Anything, mock.Anything).Return(nil).Once()
	d.gateway.EXPECT().GetTransactionStatus(mock.Anything, "abc-123").
		Return(nil, fmt.Errorf("status: %w", domain.ErrProviderRejected))

	err := d.svc.HandleIPN(context.Background(), ipn("abc-123"))

	assert.ErrorIs(t, err, domain.ErrProviderRejected)
	d.queue.AssertNotCalled(t, "Enqueue", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestReconciler_EnqueueFailureAlerts(t *testing.T) {
	d := newReconcilerDeps(t)

	d.gateway.EXPECT().GetTransactionStatus(mock.Anything, "abc-123").Return(nil, domain.ErrProviderUnavailable)
	d.queue.EXPECT().Enqueue(mock.Anything, "abc-123", domain.PaymentEventStatusCheck, mock.Anything, mock.Anything).
		Return(errors.New("db down"))
	d.alerter.EXPECT().Alert(mock.Anything, mock.Anything).Return().Once()

	_, err := d.svc.CheckStatus(context.Background(), "abc-123")

	assert.Error(t, err)
}

func TestReconciler_PersistFailureSchedulesRetry(t *testing.T) {
	d := newReconcilerDeps(t)

	d.gateway.EXPECT().GetTransactionStatus(mock.Anything, "abc-123").Return(completedStatus("abc-123"), nil)
	d.payments.EXPECT().LogEvent(mock.Anything, mock.Anything).Return(nil)
	d.payments.EXPECT().ApplyStatus(mock.Anything, mock.Anything).Return(nil, errors.New("deadlock detected"))
	d.queue.EXPECT().Enqueue(mock.Anything, "abc-123", domain.PaymentEventStatusCheck, mock.Anything, mock.Anything).Return(nil)

	_, err := d.svc.CheckStatus(context.Background(), "abc-123")

	assert.Error(t, err)
}

func TestReconciler_CheckStatus_ReturnsPayload(t *testing.T) {
	d := newReconcilerDeps(t)

	st := completedStatus("abc-123")
	d.gateway.EXPECT().GetTransactionStatus(mock.Anything, "abc-123").Return(st, nil)
	d.payments.EXPECT().LogEvent(mock.Anything, mock.Anything).Return(nil)
	d.payments.EXPECT().ApplyStatus(mock.Anything, mock.Anything).Return(confirmedResult("abc-123"), nil)

	check, err := d.svc.CheckStatus(context.Background(), "abc-123")

	require.NoError(t, err)
	assert.JSONEq(t, string(st.Raw), string(check.Payload))
	assert.Equal(t, domain.BookingStatusConfirmed, check.BookingStatus)
	assert.Equal(t, domain.TransitionAdvanced, check.Transition)
}

func TestReconciler_CheckStatus_EmptyID(t *testing.T) {
	d := newReconcilerDeps(t)

	_, err := d.svc.CheckStatus(context.Background(), "")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReconciler_ConflictAlerts(t *testing.T) {
	d := newReconcilerDeps(t)

	res := confirmedResult("abc-123")
	res.BookingStatus = domain.BookingStatusCancelled
	res.Effect = domain.BookingEffectConflict

	d.gateway.EXPECT().GetTransactionStatus(mock.Anything, "abc-123").Return(completedStatus("abc-123"), nil)
	d.payments.EXPECT().LogEvent(mock.Anything, mock.Anything).Return(nil)
	d.payments.EXPECT().ApplyStatus(mock.Anything, mock.Anything).Return(res, nil)
	d.alerter.EXPECT().Alert(mock.Anything, mock.MatchedBy(func(text string) bool {
		return strings.Contains(text, "Manual reconciliation")
	})).Return().Once()

	_, err := d.svc.CheckStatus(context.Background(), "abc-123")

	require.NoError(t, err)
}

func TestReconciler_SecondSettledOrderAlertsDoubleCharge(t *testing.T) {
	d := newReconcilerDeps(t)

	res := confirmedResult("abc-124")
	res.Previous = domain.PaymentStatusFailed
	res.Effect = domain.BookingEffectConflict

	d.gateway.EXPECT().GetTransactionStatus(mock.Anything, "abc-124").Return(completedStatus("abc-124"), nil)
	d.payments.EXPECT().LogEvent(mock.Anything, mock.Anything).Return(nil)
	d.payments.EXPECT().ApplyStatus(mock.Anything, mock.Anything).Return(res, nil)
	d.alerter.EXPECT().Alert(mock.Anything, mock.MatchedBy(func(text string) bool {
		return strings.Contains(text, "already confirmed") && strings.Contains(text, "double charge")
	})).Return().Once()

	check, err := d.svc.CheckStatus(context.Background(), "abc-124")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingEffectConflict, check.Effect)
}

func TestReconciler_StatusUpdateUsesClock(t *testing.T) {
	d := newReconcilerDeps(t)
	d.clock.Advance(90 * time.Second)

	d.gateway.EXPECT().GetTransactionStatus(mock.Anything, "abc-123").Return(completedStatus("abc-123"), nil)
	d.payments.EXPECT().LogEvent(mock.Anything, mock.Anything).Return(nil)
	d.payments.EXPECT().ApplyStatus(mock.Anything, mock.MatchedBy(func(upd domain.StatusUpdate) bool {
		return upd.At.Equal(testNow.Add(90*time.Second))
	})).Return(confirmedResult("abc-123"), nil)

	_, err := d.svc.CheckStatus(context.Background(), "abc-123")

	require.NoError(t, err)
}

func TestReconciler_SettledAmountMismatchAlerts(t *testing.T) {
	d := newReconcilerDeps(t)

	st := completedStatus("abc-123")
	st.Amount = 100

	d.gateway.EXPECT().GetTransactionStatus(mock.Anything, "abc-123").Return(st, nil)
	d.payments.EXPECT().LogEvent(mock.Anything, mock.Anything).Return(nil)
	d.payments.EXPECT().ApplyStatus(mock.Anything, mock.Anything).Return(confirmedResult("abc-123"), nil)
	d.alerter.EXPECT().Alert(mock.Anything, mock.Anything).Return().Once()

	_, err := d.svc.CheckStatus(context.Background(), "abc-123")

	require.NoError(t, err)
}

func TestReconciler_ProcessRetries(t *testing.T) {
	d := newReconcilerDeps(t)

	jobs := []*domain.ReconcileJob{
		{ID: 1, OrderTrackingID: "ok-1", Attempts: 0},
		{ID: 2, OrderTrackingID: "down-2", Attempts: 1},
		{ID: 3, OrderTrackingID: "down-3", Attempts: 4},
	}
	d.queue.EXPECT().ClaimDue(mock.Anything, testNow, time.Minute, 10).Return(jobs, nil)

	d.gateway.EXPECT().GetTransactionStatus(mock.Anything, "ok-1").Return(completedStatus("ok-1"), nil)
	d.payments.EXPECT().LogEvent(mock.Anything, mock.Anything).Return(nil)
	d.payments.EXPECT().ApplyStatus(mock.Anything, mock.Anything).Return(confirmedResult("ok-1"), nil)
	d.queue.EXPECT().MarkDone(mock.Anything, int64(1)).Return(nil)

	d.gateway.EXPECT().GetTransactionStatus(mock.Anything, "down-2").Return(nil, domain.ErrProviderUnavailable)
	d.queue.EXPECT().Reschedule(mock.Anything, int64(2), 2, testNow.Add(time.Minute), mock.Anything).Return(nil)

	d.gateway.EXPECT().GetTransactionStatus(mock.Anything, "down-3").Return(nil, domain.ErrProviderUnavailable)
	d.queue.EXPECT().MarkDead(mock.Anything, int64(3), 5, mock.Anything).Return(nil)
	d.alerter.EXPECT().Alert(mock.Anything, mock.Anything).Return().Once()

	n, err := d.svc.ProcessRetries(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestReconciler_ProcessRetries_UnknownOrderGoesDead(t *testing.T) {
	d := newReconcilerDeps(t)

	d.queue.EXPECT().ClaimDue(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]*domain.ReconcileJob{{ID: 7, OrderTrackingID: "ghost"}}, nil)
	d.gateway.EXPECT().GetTransactionStatus(mock.Anything, "ghost").Return(completedStatus("ghost"), nil)
	d.payments.EXPECT().LogEvent(mock.Anything, mock.Anything).Return(nil)
	d.payments.EXPECT().ApplyStatus(mock.Anything, mock.Anything).Return(nil, domain.ErrPaymentNotFound)
	d.queue.EXPECT().MarkDead(mock.Anything, int64(7), 1, mock.Anything).Return(nil)
	d.alerter.EXPECT().Alert(mock.Anything, mock.Anything).Return()

	_, err := d.svc.ProcessRetries(context.Background())

	require.NoError(t, err)
}

func TestReconciler_Backoff(t *testing.T) {
	r := &Reconciler{settings: testReconcileSettings}

	assert.Equal(t, 30*time.Second, r.backoff(1))
	assert.Equal(t, time.Minute, r.backoff(2))
	assert.Equal(t, 2*time.Minute, r.backoff(3))
	assert.Equal(t, 8*time.Minute, r.backoff(5))
	assert.Equal(t, 10*time.Minute, r.backoff(6))
	assert.Equal(t, 10*time.Minute, r.backoff(40))
}

func TestReconciler_ListDeadJobs_DefaultLimit(t *testing.T) {
	d := newReconcilerDeps(t)

	d.queue.EXPECT().ListDead(mock.Anything, 100).Return(nil, nil)

	_, err := d.svc.ListDeadJobs(context.Background(), 0)

	require.NoError(t, err)
}

func TestReconciler_RequeueJob(t *testing.T) {
	d := newReconcilerDeps(t)

	d.queue.EXPECT().Requeue(mock.Anything, int64(9), testNow).Return(nil)
	require.NoError(t, d.svc.RequeueJob(context.Background(), 9))

	d.queue.EXPECT().Requeue(mock.Anything, int64(10), testNow).Return(domain.ErrJobNotFound)
	assert.ErrorIs(t, d.svc.RequeueJob(context.Background(), 10), domain.ErrJobNotFound)
}

func TestKeyedMutex_SerializesPerKey(t *testing.T) {
	k := newKeyedMutex()

	var inside, maxInside int32
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := k.Lock("abc-123")
			n := atomic.AddInt32(&inside, 1)
			for {
				m := atomic.LoadInt32(&maxInside)
				if n <= m || atomic.CompareAndSwapInt32(&maxInside, m, n) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			atomic.AddInt32(&inside, -1)
			unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxInside)
	assert.Equal(t, 0, k.size())
}

func TestKeyedMutex_IndependentKeys(t *testing.T) {
	k := newKeyedMutex()

	unlockA := k.Lock("a")
	done := make(chan struct{})
	go func() {
		unlockB := k.Lock("b")
		unlockB()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock on b blocked behind a")
	}
	unlockA()
	assert.Equal(t, 0, k.size())
}
