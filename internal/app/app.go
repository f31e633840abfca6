package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/Felixdivoar/natuasili/internal/config"
	"github.com/Felixdivoar/natuasili/internal/handler"
	"github.com/Felixdivoar/natuasili/internal/messaging"
	"github.com/Felixdivoar/natuasili/internal/middleware"
	"github.com/Felixdivoar/natuasili/internal/notification"
	"github.com/Felixdivoar/natuasili/internal/repository"
	"github.com/Felixdivoar/natuasili/internal/router"
	"github.com/Felixdivoar/natuasili/internal/scheduler"
	"github.com/Felixdivoar/natuasili/internal/service"
	"github.com/jonboulle/clockwork"
	"github.com/pressly/goose/v3"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/redis"
)

const (
	appName       = "natuasili"
	migrationsDir = "migrations"
)

type App struct {
	cfg        *config.Config
	log        logger.Logger
	clock      clockwork.Clock
	db         *dbpg.DB
	redis      *redis.Client
	rabbit     *rabbitmq.RabbitClient
	consumer   *messaging.Consumer
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg, clock: clockwork.NewRealClock()}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		appName,
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initServices(); err != nil {
		app.closeResources()
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns:    a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns:    a.cfg.Postgres.MaxIdleConns,
			ConnMaxLifetime: a.cfg.Postgres.ConnMaxLifetime,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initServices() error {
	ctx := context.Background()

	loc, err := a.cfg.Cart.Location()
	if err != nil {
		return err
	}

	experienceRepo := repository.NewExperienceRepo(a.db)
	partnerRepo := repository.NewPartnerRepo(a.db)
	cartRepo := repository.NewCartRepo(a.db)
	bookingRepo := repository.NewBookingRepo(a.db)
	paymentRepo := repository.NewPaymentRepo(a.db)
	outboxRepo := repository.NewOutboxRepo(a.db)
	reconcileQueue := repository.NewReconcileQueue(a.db)

	tokens, dedup, err := a.initCache(ctx)
	if err != nil {
		return fmt.Errorf("init cache: %w", err)
	}

	gateway, err := a.initPesapal(ctx, tokens)
	if err != nil {
		return fmt.Errorf("init pesapal: %w", err)
	}

	telegram, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.cfg.Telegram.OpsChatID, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	mailer, err := notification.NewMailer(notification.MailConfig{
		Host:     a.cfg.SMTP.Host,
		Port:     a.cfg.SMTP.Port,
		Username: a.cfg.SMTP.Username,
		Password: a.cfg.SMTP.Password,
		From:     a.cfg.SMTP.From,
		FromName: a.cfg.SMTP.FromName,
		Timeout:  a.cfg.SMTP.Timeout,
	}, a.log)
	if err != nil {
		return fmt.Errorf("init mailer: %w", err)
	}

	confirmationService := service.NewConfirmationService(
		bookingRepo, experienceRepo, partnerRepo,
		mailer, telegram, dedup, a.cfg.SMTP.DedupTTL, a.log,
	)

	publisher, err := a.initMessaging(confirmationService.HandleBookingConfirmed)
	if err != nil {
		return fmt.Errorf("init messaging: %w", err)
	}

	experienceService := service.NewExperienceService(experienceRepo, partnerRepo, a.log)
	partnerService := service.NewPartnerService(partnerRepo, a.log)
	bookingService := service.NewBookingService(bookingRepo, partnerRepo, a.cfg.Cart.HoldWindow, a.clock, a.log)
	cartService := service.NewCartService(cartRepo, bookingRepo, experienceRepo, service.CartSettings{
		InactivityWindow:  a.cfg.Cart.InactivityWindow,
		HoldWindow:        a.cfg.Cart.HoldWindow,
		TouchThrottle:     a.cfg.Cart.TouchThrottle,
		SameDayCutoffHour: a.cfg.Cart.SameDayCutoffHour,
		Location:          loc,
	}, a.clock, a.log)
	paymentService := service.NewPaymentOrderService(bookingRepo, paymentRepo, gateway, service.PaymentSettings{
		CallbackURL:    a.cfg.Pesapal.CallbackURL,
		NotificationID: a.cfg.Pesapal.NotificationID,
	}, a.clock, a.log)
	reconciler := service.NewReconciler(paymentRepo, reconcileQueue, gateway, telegram, service.ReconcileSettings{
		BaseDelay:   a.cfg.Reconcile.BaseDelay,
		MaxDelay:    a.cfg.Reconcile.MaxDelay,
		MaxAttempts: a.cfg.Reconcile.MaxAttempts,
		BatchSize:   a.cfg.Reconcile.BatchSize,
		Lease:       a.cfg.Reconcile.Lease,
	}, a.clock, a.log)
	outboxRelay := service.NewOutboxRelay(outboxRepo, publisher, service.OutboxSettings{
		Lease: a.cfg.Reconcile.Lease,
	}, a.clock, a.log)

	a.scheduler = scheduler.New(
		cartService,
		bookingService,
		reconciler,
		outboxRelay,
		scheduler.Intervals{
			CartSweep:      a.cfg.Scheduler.CartSweep,
			BookingCancel:  a.cfg.Scheduler.BookingCancel,
			ReconcileRetry: a.cfg.Scheduler.ReconcileRetry,
			OutboxRelay:    a.cfg.Scheduler.OutboxRelay,
		},
		a.log,
		scheduler.WithClock(a.clock),
	)

	h := handler.NewHandler(handler.Services{
		Experiences: experienceService,
		Partners:    partnerService,
		Carts:       cartService,
		Bookings:    bookingService,
		Payments:    paymentService,
		Reconciler:  reconciler,
	}, a.cfg.HTTP.FrontendURL, a.clock, a.log)

	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.AdminAuth(a.cfg.HTTP.AdminToken),
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
		middleware.CORS(a.cfg.HTTP.AllowedOrigins),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := a.scheduler.Start(ctx); err != nil {
			a.log.LogAttrs(ctx, logger.ErrorLevel, "scheduler failed", logger.String("error", err.Error()))
		}
	}()

	if a.consumer != nil {
		go func() {
			if err := a.consumer.Start(ctx); err != nil {
				a.log.LogAttrs(ctx, logger.ErrorLevel, "consumer failed", logger.String("error", err.Error()))
			}
		}()
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		stop()
		a.closeResources()
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	a.closeResources()
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

// closeResources releases the broker, cache and database in that order.
func (a *App) closeResources() {
	ctx := context.Background()

	if a.rabbit != nil {
		if err := a.rabbit.Close(); err != nil {
			a.log.LogAttrs(ctx, logger.WarnLevel, "close rabbitmq", logger.String("error", err.Error()))
		} else {
			a.log.LogAttrs(ctx, logger.InfoLevel, "rabbitmq connection closed")
		}
	}

	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.log.LogAttrs(ctx, logger.WarnLevel, "close redis", logger.String("error", err.Error()))
		} else {
			a.log.LogAttrs(ctx, logger.InfoLevel, "redis connection closed")
		}
	}

	if a.db != nil {
		if err := a.db.Master.Close(); err != nil {
			a.log.LogAttrs(ctx, logger.WarnLevel, "close db", logger.String("error", err.Error()))
		} else {
			a.log.LogAttrs(ctx, logger.InfoLevel, "database connection closed")
		}
	}
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
