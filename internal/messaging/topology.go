package messaging

import (
	"fmt"

	"github.com/rabbitmq/amqp091-go"
)

const deadLetterKey = "#"

type Topology struct {
	Exchange    string
	Queue       string
	RoutingKeys []string
}

// DeadLetterExchange receives messages the consumer gave up on.
func (t Topology) DeadLetterExchange() string {
	return t.Exchange + ".dlx"
}

// DeadLetterQueue holds dead messages for inspection and manual replay.
func (t Topology) DeadLetterQueue() string {
	return t.Queue + ".dead"
}

type declarer interface {
	DeclareExchange(name, kind string, durable, autoDelete, internal bool, args amqp091.Table) error
	DeclareQueue(queueName, exchangeName, routingKey string, queueDurable, queueAutoDelete bool, exchangeDurable bool, queueArgs amqp091.Table) error
}

// Setup declares a durable topic exchange and binds the consumer queue to every
// routing key. Rejected messages go to the dead-letter exchange and end up in
// the dead queue under their original routing key. Declarations are idempotent,
// so every instance runs it on start.
func Setup(d declarer, t Topology) error {
	dlx := t.DeadLetterExchange()
	if err := d.DeclareExchange(dlx, amqp091.ExchangeTopic, true, false, false, nil); err != nil {
		return fmt.Errorf("declare exchange %s: %w", dlx, err)
	}
	if err := d.DeclareQueue(t.DeadLetterQueue(), dlx, deadLetterKey, true, false, true, nil); err != nil {
		return fmt.Errorf("declare queue %s: %w", t.DeadLetterQueue(), err)
	}

	if err := d.DeclareExchange(t.Exchange, amqp091.ExchangeTopic, true, false, false, nil); err != nil {
		return fmt.Errorf("declare exchange %s: %w", t.Exchange, err)
	}
	args := amqp091.Table{"x-dead-letter-exchange": dlx}
	for _, key := range t.RoutingKeys {
		if err := d.DeclareQueue(t.Queue, t.Exchange, key, true, false, true, args); err != nil {
			return fmt.Errorf("declare queue %s (%s): %w", t.Queue, key, err)
		}
	}
	return nil
}
