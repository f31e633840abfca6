package messaging

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
	"github.com/wb-go/wbf/rabbitmq"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type capturedPublish struct {
	body       []byte
	routingKey string
	msg        amqp091.Publishing
}

type fakeAMQP struct {
	published []capturedPublish
	err       error
}

func (f *fakeAMQP) Publish(_ context.Context, body []byte, routingKey string, opts ...rabbitmq.PublishOption) error {
	var msg amqp091.Publishing
	for _, opt := range opts {
		opt(&msg)
	}
	f.published = append(f.published, capturedPublish{body: body, routingKey: routingKey, msg: msg})
	return f.err
}

func TestRabbitPublisher_Publish(t *testing.T) {
	fake := &fakeAMQP{}
	at := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	p := &RabbitPublisher{pub: fake, appID: "natuasili", now: func() time.Time { return at }}

	require.NoError(t, p.Publish(context.Background(), "booking.confirmed", []byte(`{"booking_id":"b1"}`)))

	require.Len(t, fake.published, 1)
	got := fake.published[0]
	assert.Equal(t, "booking.confirmed", got.routingKey)
	assert.Equal(t, `{"booking_id":"b1"}`, string(got.body))
	assert.Equal(t, amqp091.Persistent, got.msg.DeliveryMode)
	assert.Equal(t, "natuasili", got.msg.AppId)
	assert.Equal(t, at, got.msg.Timestamp)
	assert.NotEmpty(t, got.msg.MessageId)
}

func TestRabbitPublisher_Error(t *testing.T) {
	p := &RabbitPublisher{pub: &fakeAMQP{err: rabbitmq.ErrClientClosed}, now: time.Now}

	err := p.Publish(context.Background(), "booking.confirmed", nil)

	assert.ErrorIs(t, err, rabbitmq.ErrClientClosed)
}

type fakeDeclarer struct {
	exchanges []string
	bindings  []string
	queueArgs map[string]amqp091.Table
	err       error
}

func (f *fakeDeclarer) DeclareExchange(name, kind string, durable, _, _ bool, _ amqp091.Table) error {
	if !durable || kind != amqp091.ExchangeTopic {
		return errors.New("unexpected exchange declaration")
	}
	f.exchanges = append(f.exchanges, name)
	return f.err
}

func (f *fakeDeclarer) DeclareQueue(queue, exchange, key string, durable, _ bool, _ bool, args amqp091.Table) error {
	if !durable {
		return errors.New("queue must be durable")
	}
	if f.queueArgs == nil {
		f.queueArgs = make(map[string]amqp091.Table)
	}
	f.queueArgs[queue] = args
	f.bindings = append(f.bindings, exchange+"->"+queue+":"+key)
	return nil
}

func TestSetup(t *testing.T) {
	d := &fakeDeclarer{}

	err := Setup(d, Topology{
		Exchange:    "natuasili.events",
		Queue:       "natuasili.notifications",
		RoutingKeys: []string{"booking.confirmed"},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"natuasili.events.dlx", "natuasili.events"}, d.exchanges)
	assert.Equal(t, []string{
		"natuasili.events.dlx->natuasili.notifications.dead:#",
		"natuasili.events->natuasili.notifications:booking.confirmed",
	}, d.bindings)
	assert.Equal(t, "natuasili.events.dlx", d.queueArgs["natuasili.notifications"]["x-dead-letter-exchange"])
	assert.Nil(t, d.queueArgs["natuasili.notifications.dead"])
}

func TestSetup_ExchangeError(t *testing.T) {
	d := &fakeDeclarer{err: errors.New("access refused")}

	err := Setup(d, Topology{Exchange: "x", Queue: "q", RoutingKeys: []string{"k"}})

	assert.Error(t, err)
	assert.Empty(t, d.bindings)
}

func TestConsumerConfig_FailedMessagesAreDeadLettered(t *testing.T) {
	cfg := ConsumerConfig{Queue: "natuasili.notifications", Tag: "notifier", Workers: 2, PrefetchCount: 10}.wbf()

	assert.False(t, cfg.Nack.Requeue)
	assert.False(t, cfg.AutoAck)
	assert.Equal(t, "natuasili.notifications", cfg.Queue)
	assert.Equal(t, "notifier", cfg.ConsumerTag)
}

func TestRouter_Handle(t *testing.T) {
	r := NewRouter(newTestLogger(t))

	var got []byte
	r.Register("booking.confirmed", func(_ context.Context, body []byte) error {
		got = body
		return nil
	})
	r.Register("booking.refunded", func(context.Context, []byte) error {
		return errors.New("smtp down")
	})

	require.NoError(t, r.Handle(context.Background(), amqp091.Delivery{RoutingKey: "booking.confirmed", Body: []byte("x")}))
	assert.Equal(t, []byte("x"), got)

	assert.Error(t, r.Handle(context.Background(), amqp091.Delivery{RoutingKey: "booking.refunded"}))
	assert.NoError(t, r.Handle(context.Background(), amqp091.Delivery{RoutingKey: "unknown"}))

	keys := r.RoutingKeys()
	sort.Strings(keys)
	assert.Equal(t, []string{"booking.confirmed", "booking.refunded"}, keys)
}

func TestLocalBus(t *testing.T) {
	bus := NewLocalBus()

	var calls int
	bus.Register("booking.confirmed", func(context.Context, []byte) error {
		calls++
		return nil
	})

	require.NoError(t, bus.Publish(context.Background(), "booking.confirmed", []byte("{}")))
	require.NoError(t, bus.Publish(context.Background(), "nobody.listens", []byte("{}")))
	assert.Equal(t, 1, calls)
}

func TestLocalBus_HandlerErrorFailsPublish(t *testing.T) {
	bus := NewLocalBus()
	bus.Register("booking.confirmed", func(context.Context, []byte) error { return errors.New("boom") })

	assert.Error(t, bus.Publish(context.Background(), "booking.confirmed", nil))
}
