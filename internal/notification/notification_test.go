package notification

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Felixdivoar/natuasili/internal/domain"
	goredis "github.com/go-redis/redis/v8"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
	"github.com/wneessen/go-mail"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func testDetails() *domain.ConfirmationDetails {
	chat := int64(4242)
	return &domain.ConfirmationDetails{
		Booking: &domain.Booking{
			ID:          "b1",
			Customer:    domain.Customer{FirstName: "Amina", LastName: "Otieno", Email: "amina@example.com", Phone: "+254700000000"},
			Date:        time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
			Quantity:    2,
			TotalAmount: 1000000,
			Currency:    "KES",
		},
		Experience:       &domain.Experience{Title: "Mara walk_with rangers"},
		Partner:          &domain.Partner{ID: "p1", Name: "Mara Rangers", Email: "ops@mara.example", TelegramChatID: &chat},
		OrderTrackingID:  "abc-123",
		ConfirmationCode: "QWE123RTY",
	}
}

type fakeSender struct {
	msgs []*mail.Msg
	err  error
}

func (f *fakeSender) DialAndSendWithContext(_ context.Context, messages ...*mail.Msg) error {
	f.msgs = append(f.msgs, messages...)
	return f.err
}

func TestMailer_SendBookingConfirmation(t *testing.T) {
	sender := &fakeSender{}
	m := &Mailer{client: sender, cfg: MailConfig{From: "bookings@natuasili.example", FromName: "Natuasili"}, logger: newTestLogger(t)}

	require.NoError(t, m.SendBookingConfirmation(context.Background(), testDetails()))

	require.Len(t, sender.msgs, 1)
	msg := sender.msgs[0]
	assert.Equal(t, []string{`"Amina Otieno" <amina@example.com>`}, msg.GetToString())
	assert.Equal(t, []string{"Booking confirmed: Mara walk_with rangers"}, msg.GetGenHeader(mail.HeaderSubject))
}

func TestMailer_SendError(t *testing.T) {
	sender := &fakeSender{err: errors.New("421 try later")}
	m := &Mailer{client: sender, cfg: MailConfig{From: "bookings@natuasili.example"}, logger: newTestLogger(t)}

	assert.Error(t, m.SendBookingConfirmation(context.Background(), testDetails()))
}

func TestMailer_DisabledWithoutHost(t *testing.T) {
	m, err := NewMailer(MailConfig{From: "bookings@natuasili.example"}, newTestLogger(t))
	require.NoError(t, err)

	assert.NoError(t, m.SendBookingConfirmation(context.Background(), testDetails()))
}

func TestMailer_BadRecipient(t *testing.T) {
	m := &Mailer{client: &fakeSender{}, cfg: MailConfig{From: "bookings@natuasili.example"}, logger: newTestLogger(t)}
	d := testDetails()
	d.Booking.Customer.Email = "not an address"

	assert.Error(t, m.SendBookingConfirmation(context.Background(), d))
}

func TestConfirmationText(t *testing.T) {
	text := confirmationText(testDetails())

	assert.Contains(t, text, "Hello Amina,")
	assert.Contains(t, text, "Total paid: 10000.00 KES")
	assert.Contains(t, text, "Guests: 2")
	assert.Contains(t, text, "Payment confirmation: QWE123RTY")
	assert.Contains(t, text, "Hosted by Mara Rangers (ops@mara.example).")
}

func TestFormatMinor(t *testing.T) {
	assert.Equal(t, "10000.00", formatMinor(1000000))
	assert.Equal(t, "0.05", formatMinor(5))
	assert.Equal(t, "-1.50", formatMinor(-150))
}

type fakeBot struct {
	mu   sync.Mutex
	sent []tgbotapi.MessageConfig
}

func (b *fakeBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sent = append(b.sent, c.(tgbotapi.MessageConfig))
	return tgbotapi.Message{}, nil
}

func TestTelegramNotifier_NotifyPartnerBooking(t *testing.T) {
	bot := &fakeBot{}
	n := &TelegramNotifier{bot: bot, logger: newTestLogger(t)}

	n.NotifyPartnerBooking(context.Background(), testDetails())

	require.Len(t, bot.sent, 1)
	assert.Equal(t, int64(4242), bot.sent[0].ChatID)
	assert.Equal(t, tgbotapi.ModeMarkdown, bot.sent[0].ParseMode)
	assert.Contains(t, bot.sent[0].Text, `Mara walk\_with rangers`)
	assert.Contains(t, bot.sent[0].Text, "Guests: 2")
}

func TestTelegramNotifier_PartnerWithoutChat(t *testing.T) {
	bot := &fakeBot{}
	n := &TelegramNotifier{bot: bot, logger: newTestLogger(t)}
	d := testDetails()
	d.Partner.TelegramChatID = nil

	n.NotifyPartnerBooking(context.Background(), d)

	assert.Empty(t, bot.sent)
}

func TestTelegramNotifier_Alert(t *testing.T) {
	bot := &fakeBot{}
	n := &TelegramNotifier{bot: bot, opsChatID: -100500, logger: newTestLogger(t)}

	n.Alert(context.Background(), "Payment abc-123 could not be reconciled")

	require.Len(t, bot.sent, 1)
	assert.Equal(t, int64(-100500), bot.sent[0].ChatID)
	assert.True(t, strings.HasPrefix(bot.sent[0].Text, "*Payments alert*"))
}

func TestTelegramNotifier_CancelledContext(t *testing.T) {
	bot := &fakeBot{}
	n := &TelegramNotifier{bot: bot, opsChatID: 1, logger: newTestLogger(t)}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	n.Alert(ctx, "late")

	assert.Empty(t, bot.sent)
}

func TestTelegramNotifier_Disabled(t *testing.T) {
	n, err := NewTelegramNotifier("", 1, newTestLogger(t))
	require.NoError(t, err)

	n.Alert(context.Background(), "nobody hears this")
	n.NotifyPartnerBooking(context.Background(), testDetails())
}

type fakeSetNX struct {
	mu   sync.Mutex
	keys map[string]time.Duration
	err  error
}

func (f *fakeSetNX) SetNX(_ context.Context, key string, _ interface{}, ttl time.Duration) *goredis.BoolCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return goredis.NewBoolResult(false, f.err)
	}
	if _, ok := f.keys[key]; ok {
		return goredis.NewBoolResult(false, nil)
	}
	f.keys[key] = ttl
	return goredis.NewBoolResult(true, nil)
}

func (f *fakeSetNX) Del(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.keys, key)
	return nil
}

func TestRedisDeduplicator(t *testing.T) {
	store := &fakeSetNX{keys: make(map[string]time.Duration)}
	d := NewRedisDeduplicator(store)
	ctx := context.Background()

	ok, err := d.Acquire(ctx, "notify:booking.confirmed:b1", time.Hour)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, time.Hour, store.keys["notify:booking.confirmed:b1"])

	ok, err = d.Acquire(ctx, "notify:booking.confirmed:b1", time.Hour)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, d.Release(ctx, "notify:booking.confirmed:b1"))
	ok, _ = d.Acquire(ctx, "notify:booking.confirmed:b1", time.Hour)
	assert.True(t, ok)
}

func TestRedisDeduplicator_Error(t *testing.T) {
	d := NewRedisDeduplicator(&fakeSetNX{err: errors.New("i/o timeout")})

	_, err := d.Acquire(context.Background(), "k", time.Minute)

	assert.Error(t, err)
}

func TestMemoryDeduplicator_Expiry(t *testing.T) {
	clock := clockwork.NewFakeClock()
	d := NewMemoryDeduplicator(clock)
	ctx := context.Background()

	ok, _ := d.Acquire(ctx, "k", time.Minute)
	assert.True(t, ok)
	ok, _ = d.Acquire(ctx, "k", time.Minute)
	assert.False(t, ok)

	clock.Advance(time.Minute)
	ok, _ = d.Acquire(ctx, "k", time.Minute)
	assert.True(t, ok)
}
