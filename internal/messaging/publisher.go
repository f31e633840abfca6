// Package messaging carries outbox events to their consumers, over RabbitMQ in
// production and in-process when no broker is configured.
package messaging

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"
	"github.com/wb-go/wbf/rabbitmq"
)

const contentTypeJSON = "application/json"

type amqpPublisher interface {
	Publish(ctx context.Context, body []byte, routingKey string, opts ...rabbitmq.PublishOption) error
}

// RabbitPublisher publishes persistent JSON messages to the events exchange.
type RabbitPublisher struct {
	pub   amqpPublisher
	appID string
	now   func() time.Time
}

func NewRabbitPublisher(client *rabbitmq.RabbitClient, exchange, appID string) *RabbitPublisher {
	return &RabbitPublisher{
		pub:   rabbitmq.NewPublisher(client, exchange, contentTypeJSON),
		appID: appID,
		now:   time.Now,
	}
}

func (p *RabbitPublisher) Publish(ctx context.Context, routingKey string, body []byte) error {
	if err := p.pub.Publish(ctx, body, routingKey, p.envelope()); err != nil {
		return fmt.Errorf("publish %s: %w", routingKey, err)
	}
	return nil
}

func (p *RabbitPublisher) envelope() rabbitmq.PublishOption {
	return func(msg *amqp091.Publishing) {
		msg.DeliveryMode = amqp091.Persistent
		msg.MessageId = uuid.New().String()
		msg.AppId = p.appID
		msg.Timestamp = p.now().UTC()
	}
}
