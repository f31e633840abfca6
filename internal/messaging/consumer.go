package messaging

import (
	"context"
	"errors"
	"fmt"

	"github.com/rabbitmq/amqp091-go"
	"github.com/wb-go/wbf/logger"
	"github.com/wb-go/wbf/rabbitmq"
)

// Handler processes one message body. A returned error asks for another attempt.
type Handler func(ctx context.Context, body []byte) error

// Router dispatches deliveries to handlers by routing key.
type Router struct {
	handlers map[string]Handler
	logger   logger.Logger
}

func NewRouter(log logger.Logger) *Router {
	return &Router{handlers: make(map[string]Handler), logger: log}
}

func (r *Router) Register(routingKey string, h Handler) {
	r.handlers[routingKey] = h
}

func (r *Router) RoutingKeys() []string {
	keys := make([]string, 0, len(r.handlers))
	for k := range r.handlers {
		keys = append(keys, k)
	}
	return keys
}

func (r *Router) Handle(ctx context.Context, d amqp091.Delivery) error {
	h, ok := r.handlers[d.RoutingKey]
	if !ok {
		// nobody will ever handle it; ack and move on
		r.logger.Warn("message without handler dropped",
			logger.String("routing_key", d.RoutingKey),
			logger.String("message_id", d.MessageId),
		)
		return nil
	}

	if err := h(ctx, d.Body); err != nil {
		r.logger.Error("message handler failed",
			logger.String("routing_key", d.RoutingKey),
			logger.String("message_id", d.MessageId),
			logger.String("error", err.Error()),
		)
		return err
	}
	return nil
}

type ConsumerConfig struct {
	Queue         string
	Tag           string
	Workers       int
	PrefetchCount int
}

// Consumer runs the wbf RabbitMQ consumer over a Router. A handler gets the
// client's ConsumingStrat attempts; after that the message is nacked without
// requeue and lands in the dead queue declared by Setup.
type Consumer struct {
	consumer *rabbitmq.Consumer
	logger   logger.Logger
}

func NewConsumer(client *rabbitmq.RabbitClient, cfg ConsumerConfig, router *Router, log logger.Logger) *Consumer {
	c := rabbitmq.NewConsumer(client, cfg.wbf(), router.Handle)
	return &Consumer{consumer: c, logger: log}
}

func (cfg ConsumerConfig) wbf() rabbitmq.ConsumerConfig {
	return rabbitmq.ConsumerConfig{
		Queue:         cfg.Queue,
		ConsumerTag:   cfg.Tag,
		Workers:       cfg.Workers,
		PrefetchCount: cfg.PrefetchCount,
		Nack:          rabbitmq.NackConfig{Requeue: false},
	}
}

// Start blocks until ctx is done or the client is closed.
func (c *Consumer) Start(ctx context.Context) error {
	c.logger.Info("consumer started")
	err := c.consumer.Start(ctx)
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, rabbitmq.ErrClientClosed) {
		c.logger.Info("consumer stopped")
		return nil
	}
	return fmt.Errorf("consume: %w", err)
}
