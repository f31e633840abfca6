package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/Felixdivoar/natuasili/internal/domain"
	"github.com/go-co-op/gocron/v2"
	"github.com/jonboulle/clockwork"
	"github.com/wb-go/wbf/logger"
)

type cartSweeper interface {
	SweepExpired(ctx context.Context) (int64, error)
}

type bookingCanceller interface {
	CancelAbandoned(ctx context.Context) ([]*domain.Booking, error)
}

type retryProcessor interface {
	ProcessRetries(ctx context.Context) (int, error)
}

type outboxRelayer interface {
	RelayPending(ctx context.Context) (int, error)
}

type Intervals struct {
	CartSweep      time.Duration
	BookingCancel  time.Duration
	ReconcileRetry time.Duration
	OutboxRelay    time.Duration
}

type Option func(*Scheduler)

func WithClock(c clockwork.Clock) Option {
	return func(s *Scheduler) {
		s.clock = c
	}
}

type Scheduler struct {
	carts     cartSweeper
	bookings  bookingCanceller
	retries   retryProcessor
	outbox    outboxRelayer
	intervals Intervals
	clock     clockwork.Clock
	logger    logger.Logger
}

func New(
	carts cartSweeper,
	bookings bookingCanceller,
	retries retryProcessor,
	outbox outboxRelayer,
	intervals Intervals,
	logger logger.Logger,
	opts ...Option,
) *Scheduler {
	s := &Scheduler{
		carts:     carts,
		bookings:  bookings,
		retries:   retries,
		outbox:    outbox,
		intervals: intervals,
		clock:     clockwork.NewRealClock(),
		logger:    logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type job struct {
	name     string
	interval time.Duration
	run      func(ctx context.Context)
}

func (s *Scheduler) jobs() []job {
	return []job{
		{"cart-sweep", s.intervals.CartSweep, s.sweepCarts},
		{"booking-cancel", s.intervals.BookingCancel, s.cancelAbandoned},
		{"reconcile-retry", s.intervals.ReconcileRetry, s.processRetries},
		{"outbox-relay", s.intervals.OutboxRelay, s.relayOutbox},
	}
}

// Start runs the periodic jobs until ctx is done. A job that overruns its
// interval is not started twice; the next run is rescheduled instead.
func (s *Scheduler) Start(ctx context.Context) error {
	sched, err := gocron.NewScheduler(
		gocron.WithClock(s.clock),
		gocron.WithLogger(s.logger),
		gocron.WithLocation(time.UTC),
	)
	if err != nil {
		return fmt.Errorf("create scheduler: %w", err)
	}

	for _, j := range s.jobs() {
		if j.interval <= 0 {
			s.logger.Warn("job disabled", logger.String("job", j.name))
			continue
		}
		run := j.run
		if _, err = sched.NewJob(
			gocron.DurationJob(j.interval),
			gocron.NewTask(func() { run(ctx) }),
			gocron.WithName(j.name),
			gocron.WithSingletonMode(gocron.LimitModeReschedule),
		); err != nil {
			_ = sched.Shutdown()
			return fmt.Errorf("register %s: %w", j.name, err)
		}
	}

	sched.Start()
	s.logger.Info("scheduler started",
		logger.Duration("cart_sweep", s.intervals.CartSweep),
		logger.Duration("booking_cancel", s.intervals.BookingCancel),
		logger.Duration("reconcile_retry", s.intervals.ReconcileRetry),
		logger.Duration("outbox_relay", s.intervals.OutboxRelay),
	)

	<-ctx.Done()

	if err = sched.Shutdown(); err != nil {
		s.logger.Error("scheduler shutdown failed", logger.String("error", err.Error()))
	}
	s.logger.Info("scheduler stopped")

	return nil
}

func (s *Scheduler) sweepCarts(ctx context.Context) {
	if _, err := s.carts.SweepExpired(ctx); err != nil {
		s.logger.Error("failed to sweep expired carts",
			logger.String("error", err.Error()),
		)
	}
}

func (s *Scheduler) cancelAbandoned(ctx context.Context) {
	cancelled, err := s.bookings.CancelAbandoned(ctx)
	if err != nil {
		s.logger.Error("failed to cancel abandoned bookings",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, b := range cancelled {
		s.logger.Info("booking expired",
			logger.String("booking_id", b.ID),
			logger.String("experience_id", b.ExperienceID),
		)
	}
}

func (s *Scheduler) processRetries(ctx context.Context) {
	if _, err := s.retries.ProcessRetries(ctx); err != nil {
		s.logger.Error("failed to process reconcile retries",
			logger.String("error", err.Error()),
		)
	}
}

func (s *Scheduler) relayOutbox(ctx context.Context) {
	if _, err := s.outbox.RelayPending(ctx); err != nil {
		s.logger.Error("failed to relay outbox",
			logger.String("error", err.Error()),
		)
	}
}
