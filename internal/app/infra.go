package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Felixdivoar/natuasili/internal/domain"
	"github.com/Felixdivoar/natuasili/internal/messaging"
	"github.com/Felixdivoar/natuasili/internal/notification"
	"github.com/Felixdivoar/natuasili/internal/pesapal"
	"github.com/Felixdivoar/natuasili/internal/service/ports"
	"github.com/wb-go/wbf/logger"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/retry"
)

const (
	startupTimeout = 30 * time.Second
	consumerTag    = "natuasili-notifier"
)

// initCache picks the shared Redis store when configured, otherwise
// process-local caches that only suit a single instance.
func (a *App) initCache(ctx context.Context) (pesapal.TokenCache, ports.Deduplicator, error) {
	if a.cfg.Redis.Addr == "" {
		a.log.LogAttrs(ctx, logger.WarnLevel, "redis not configured, using in-memory token cache")
		return pesapal.NewMemoryTokenCache(a.clock), notification.NewMemoryDeduplicator(a.clock), nil
	}

	client := redis.New(a.cfg.Redis.Addr, a.cfg.Redis.Password, a.cfg.Redis.DB)

	pingCtx, cancel := context.WithTimeout(ctx, startupTimeout)
	defer cancel()
	if err := client.Ping(pingCtx); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("ping redis: %w", err)
	}

	a.redis = client
	a.log.LogAttrs(ctx, logger.InfoLevel, "redis connected", logger.String("addr", a.cfg.Redis.Addr))

	return pesapal.NewRedisTokenCache(client, a.cfg.Redis.TokenKey, a.clock), notification.NewRedisDeduplicator(client), nil
}

func (a *App) initPesapal(ctx context.Context, tokens pesapal.TokenCache) (*pesapal.Client, error) {
	client, err := pesapal.NewClient(pesapal.Config{
		BaseURL:        a.cfg.Pesapal.BaseURL,
		ConsumerKey:    a.cfg.Pesapal.ConsumerKey,
		ConsumerSecret: a.cfg.Pesapal.ConsumerSecret,
		Timeout:        a.cfg.Pesapal.Timeout,
		Retry:          a.cfg.Pesapal.RetryStrategy(),
		TokenMaxTTL:    a.cfg.Pesapal.TokenMaxTTL,
		TokenMargin:    a.cfg.Pesapal.TokenMargin,
	}, &http.Client{}, tokens, a.log, pesapal.WithClock(a.clock))
	if err != nil {
		return nil, err
	}

	if a.cfg.Pesapal.NotificationID != "" {
		return client, nil
	}

	regCtx, cancel := context.WithTimeout(ctx, startupTimeout)
	defer cancel()

	ipnID, err := client.RegisterIPN(regCtx, a.cfg.Pesapal.IPNURL)
	if err != nil {
		return nil, fmt.Errorf("register ipn: %w", err)
	}
	a.cfg.Pesapal.NotificationID = ipnID

	a.log.LogAttrs(ctx, logger.InfoLevel, "pesapal ipn registered",
		logger.String("ipn_url", a.cfg.Pesapal.IPNURL),
		logger.String("ipn_id", ipnID),
	)

	return client, nil
}

// initMessaging returns the outbox publisher. With RabbitMQ configured the
// confirmation handler runs behind a queue consumer, otherwise it runs in
// process on publish.
func (a *App) initMessaging(onConfirmed messaging.Handler) (ports.Publisher, error) {
	ctx := context.Background()

	if a.cfg.RabbitMQ.URL == "" {
		a.log.LogAttrs(ctx, logger.WarnLevel, "rabbitmq not configured, delivering events in process")
		bus := messaging.NewLocalBus()
		bus.Register(domain.TopicBookingConfirmed, onConfirmed)
		return bus, nil
	}

	client, err := rabbitmq.NewClient(rabbitmq.ClientConfig{
		URL:            a.cfg.RabbitMQ.URL,
		ConnectionName: appName,
		ConnectTimeout: a.cfg.RabbitMQ.ConnectTimeout,
		Heartbeat:      a.cfg.RabbitMQ.Heartbeat,
		ReconnectStrat: retry.Strategy{Attempts: 10, Delay: time.Second, Backoff: 2},
		ProducingStrat: retry.Strategy{Attempts: 3, Delay: 200 * time.Millisecond, Backoff: 2},
		ConsumingStrat: retry.Strategy{Attempts: 3, Delay: time.Second, Backoff: 2},
	})
	if err != nil {
		return nil, fmt.Errorf("connect rabbitmq: %w", err)
	}
	a.rabbit = client

	router := messaging.NewRouter(a.log)
	router.Register(domain.TopicBookingConfirmed, onConfirmed)

	if err := messaging.Setup(client, messaging.Topology{
		Exchange:    a.cfg.RabbitMQ.Exchange,
		Queue:       a.cfg.RabbitMQ.Queue,
		RoutingKeys: router.RoutingKeys(),
	}); err != nil {
		return nil, fmt.Errorf("rabbitmq topology: %w", err)
	}

	a.consumer = messaging.NewConsumer(client, messaging.ConsumerConfig{
		Queue:         a.cfg.RabbitMQ.Queue,
		Tag:           consumerTag,
		Workers:       a.cfg.RabbitMQ.Workers,
		PrefetchCount: a.cfg.RabbitMQ.PrefetchCount,
	}, router, a.log)

	a.log.LogAttrs(ctx, logger.InfoLevel, "rabbitmq connected",
		logger.String("exchange", a.cfg.RabbitMQ.Exchange),
		logger.String("queue", a.cfg.RabbitMQ.Queue),
	)

	return messaging.NewRabbitPublisher(client, a.cfg.RabbitMQ.Exchange, appName), nil
}
