package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/Felixdivoar/natuasili/internal/domain"
	"github.com/Felixdivoar/natuasili/internal/service/ports"
	"github.com/jonboulle/clockwork"
	"github.com/wb-go/wbf/logger"
)

type ReconcileSettings struct {
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	MaxAttempts int
	BatchSize   int
	Lease       time.Duration
}

// Reconciler brings local payment and booking state in line with the provider.
// Every path (IPN, status poll, retry queue) goes through the same reconcile
// core, so side effects depend only on the state transition it reports.
type Reconciler struct {
	paymentRepo ports.PaymentRepo
	queue       ports.ReconcileQueue
	gateway     ports.PaymentGateway
	alerter     ports.Alerter
	locks       *keyedMutex
	settings    ReconcileSettings
	clock       clockwork.Clock
	logger      logger.Logger
}

func NewReconciler(
	paymentRepo ports.PaymentRepo,
	queue ports.ReconcileQueue,
	gateway ports.PaymentGateway,
	alerter ports.Alerter,
	settings ReconcileSettings,
	clock clockwork.Clock,
	logger logger.Logger,
) *Reconciler {
	if settings.MaxAttempts < 1 {
		settings.MaxAttempts = 1
	}
	if settings.BatchSize < 1 {
		settings.BatchSize = 20
	}
	return &Reconciler{
		paymentRepo: paymentRepo,
		queue:       queue,
		gateway:     gateway,
		alerter:     alerter,
		locks:       newKeyedMutex(),
		settings:    settings,
		clock:       clock,
		logger:      logger,
	}
}

// HandleIPN records the notification and reconciles the order it names. The
// returned error is informational: the provider is always acknowledged.
func (r *Reconciler) HandleIPN(ctx context.Context, n domain.IPNNotification) error {
	event := &domain.PaymentEvent{
		OrderTrackingID: n.OrderTrackingID,
		Source:          domain.PaymentEventIPN,
		Payload:         n.Raw,
		CreatedAt:       r.clock.Now().UTC(),
	}
	if err := r.paymentRepo.LogEvent(ctx, event); err != nil {
		r.logger.Error("failed to log ipn",
			logger.String("order_tracking_id", n.OrderTrackingID),
			logger.String("error", err.Error()),
		)
	}

	if n.OrderTrackingID == "" {
		return fmt.Errorf("%w: ipn without OrderTrackingId", domain.ErrValidation)
	}

	r.logger.Info("ipn received",
		logger.String("order_tracking_id", n.OrderTrackingID),
		logger.String("merchant_reference", n.MerchantReference),
		logger.String("notification_type", n.NotificationType),
	)

	if _, err := r.reconcile(ctx, n.OrderTrackingID); err != nil {
		r.scheduleRetry(ctx, n.OrderTrackingID, domain.PaymentEventIPN, err)
		return err
	}

	return nil
}

// CheckStatus is the pull path. The provider payload it returns has already been
// stored as a payment event.
func (r *Reconciler) CheckStatus(ctx context.Context, trackingID string) (*domain.StatusCheck, error) {
	if trackingID == "" {
		return nil, fmt.Errorf("%w: tracking id is required", domain.ErrValidation)
	}

	check, err := r.reconcile(ctx, trackingID)
	if err != nil {
		r.scheduleRetry(ctx, trackingID, domain.PaymentEventStatusCheck, err)
		return nil, err
	}

	return check, nil
}

// GetPayment returns the local record for an order without asking the provider.
func (r *Reconciler) GetPayment(ctx context.Context, trackingID string) (*domain.PaymentRecord, error) {
	return r.paymentRepo.GetByTrackingID(ctx, trackingID)
}

func (r *Reconciler) reconcile(ctx context.Context, trackingID string) (*domain.StatusCheck, error) {
	unlock := r.locks.Lock(trackingID)
	defer unlock()

	st, err := r.gateway.GetTransactionStatus(ctx, trackingID)
	if err != nil {
		return nil, fmt.Errorf("fetch status: %w", err)
	}

	if err = r.paymentRepo.LogEvent(ctx, &domain.PaymentEvent{
		OrderTrackingID: trackingID,
		Source:          domain.PaymentEventStatusCheck,
		Payload:         st.Raw,
		CreatedAt:       r.clock.Now().UTC(),
	}); err != nil {
		return nil, fmt.Errorf("log status: %w", err)
	}

	res, err := r.paymentRepo.ApplyStatus(ctx, domain.StatusUpdate{
		OrderTrackingID:  trackingID,
		Status:           st.Status,
		ConfirmationCode: st.ConfirmationCode,
		PaymentMethod:    st.PaymentMethod,
		Payload:          st.Raw,
		At:               r.clock.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("apply status: %w", err)
	}

	attrs := []any{
		logger.String("order_tracking_id", trackingID),
		logger.String("from", string(res.Previous)),
		logger.String("to", string(st.Status)),
		logger.String("transition", string(res.Transition)),
		logger.String("booking_status", string(res.BookingStatus)),
	}
	switch res.Transition {
	case domain.TransitionAdvanced:
		r.logger.Info("payment status advanced", attrs...)
	case domain.TransitionRejected:
		r.logger.Warn("payment status update ignored", attrs...)
	default:
		r.logger.Debug("payment status unchanged", attrs...)
	}

	if res.BookingConfirmed() {
		r.logger.Info("booking confirmed",
			logger.String("booking_id", res.Payment.BookingID),
			logger.String("order_tracking_id", trackingID),
		)
	}
	if res.Effect == domain.BookingEffectConflict {
		msg := "Payment %s completed for booking %s which is %s. Manual reconciliation needed."
		if res.BookingStatus != domain.BookingStatusCancelled {
			msg = "Payment %s completed for booking %s which is already %s. Possible double charge, manual reconciliation needed."
		}
		r.alerter.Alert(ctx, fmt.Sprintf(msg, trackingID, res.Payment.BookingID, res.BookingStatus))
	}
	if st.Status == domain.PaymentStatusCompleted && st.Amount > 0 &&
		int64(math.Round(st.Amount*100)) != res.Payment.Amount {
		r.alerter.Alert(ctx, fmt.Sprintf(
			"Payment %s settled %.2f %s but %d minor units were expected.",
			trackingID, st.Amount, st.Currency, res.Payment.Amount,
		))
	}

	return &domain.StatusCheck{
		Payload:       st.Raw,
		Payment:       res.Payment,
		BookingStatus: res.BookingStatus,
		Transition:    res.Transition,
		Effect:        res.Effect,
	}, nil
}

func (r *Reconciler) scheduleRetry(ctx context.Context, trackingID string, source domain.PaymentEventSource, cause error) {
	if !retryable(cause) {
		r.logger.Warn("reconcile failed permanently",
			logger.String("order_tracking_id", trackingID),
			logger.String("error", cause.Error()),
		)
		return
	}

	at := r.clock.Now().Add(r.settings.BaseDelay).UTC()
	if err := r.queue.Enqueue(ctx, trackingID, source, cause.Error(), at); err != nil {
		r.logger.Error("failed to enqueue reconcile retry",
			logger.String("order_tracking_id", trackingID),
			logger.String("error", err.Error()),
		)
		r.alerter.Alert(ctx, fmt.Sprintf(
			"Could not schedule a retry for payment %s: %v (cause: %v)", trackingID, err, cause,
		))
		return
	}

	r.logger.Warn("reconcile retry scheduled",
		logger.String("order_tracking_id", trackingID),
		logger.Time("next_attempt_at", at),
		logger.String("error", cause.Error()),
	)
}

// ProcessRetries works through due retry jobs and returns how many were handled.
func (r *Reconciler) ProcessRetries(ctx context.Context) (int, error) {
	jobs, err := r.queue.ClaimDue(ctx, r.clock.Now().UTC(), r.settings.Lease, r.settings.BatchSize)
	if err != nil {
		return 0, fmt.Errorf("claim jobs: %w", err)
	}

	for _, job := range jobs {
		if ctx.Err() != nil {
			return 0, ctx.Err()
		}
		r.processJob(ctx, job)
	}

	return len(jobs), nil
}

func (r *Reconciler) processJob(ctx context.Context, job *domain.ReconcileJob) {
	_, err := r.reconcile(ctx, job.OrderTrackingID)
	if err == nil {
		if err = r.queue.MarkDone(ctx, job.ID); err != nil {
			r.logger.Error("failed to mark job done",
				logger.Int64("job_id", job.ID),
				logger.String("error", err.Error()),
			)
		}
		return
	}

	attempts := job.Attempts + 1
	if attempts >= r.settings.MaxAttempts || !retryable(err) {
		if markErr := r.queue.MarkDead(ctx, job.ID, attempts, err.Error()); markErr != nil {
			r.logger.Error("failed to mark job dead",
				logger.Int64("job_id", job.ID),
				logger.String("error", markErr.Error()),
			)
		}
		r.logger.Error("reconcile job dead-lettered",
			logger.Int64("job_id", job.ID),
			logger.String("order_tracking_id", job.OrderTrackingID),
			logger.Int("attempts", attempts),
			logger.String("error", err.Error()),
		)
		r.alerter.Alert(ctx, fmt.Sprintf(
			"Payment %s could not be reconciled after %d attempts: %v",
			job.OrderTrackingID, attempts, err,
		))
		return
	}

	next := r.clock.Now().Add(r.backoff(attempts)).UTC()
	if err = r.queue.Reschedule(ctx, job.ID, attempts, next, err.Error()); err != nil {
		r.logger.Error("failed to reschedule job",
			logger.Int64("job_id", job.ID),
			logger.String("error", err.Error()),
		)
	}
}

// backoff is base·2^(attempts-1), capped at the configured maximum.
func (r *Reconciler) backoff(attempts int) time.Duration {
	d := r.settings.BaseDelay
	for i := 1; i < attempts; i++ {
		d *= 2
		if d >= r.settings.MaxDelay {
			return r.settings.MaxDelay
		}
	}
	if r.settings.MaxDelay > 0 && d > r.settings.MaxDelay {
		return r.settings.MaxDelay
	}
	return d
}

func (r *Reconciler) ListDeadJobs(ctx context.Context, limit int) ([]*domain.ReconcileJob, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	return r.queue.ListDead(ctx, limit)
}

func (r *Reconciler) RequeueJob(ctx context.Context, id int64) error {
	if err := r.queue.Requeue(ctx, id, r.clock.Now().UTC()); err != nil {
		return err
	}
	r.logger.Info("reconcile job requeued", logger.Int64("job_id", id))
	return nil
}

// retryable reports whether a reconcile failure may succeed later. Definitive
// provider answers and unknown orders never will.
func retryable(err error) bool {
	switch {
	case errors.Is(err, domain.ErrProviderRejected),
		errors.Is(err, domain.ErrProviderConfig),
		errors.Is(err, domain.ErrPaymentNotFound),
		errors.Is(err, domain.ErrValidation):
		return false
	}
	return true
}
