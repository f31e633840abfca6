package notification

import (
	"context"
	"fmt"

	"github.com/Felixdivoar/natuasili/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
)

type botSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramNotifier tells partners about new bookings and raises operational
// alerts in the ops chat.
type TelegramNotifier struct {
	bot       botSender
	opsChatID int64
	logger    logger.Logger
}

func NewTelegramNotifier(token string, opsChatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, opsChatID: opsChatID, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, opsChatID: opsChatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyPartnerBooking(ctx context.Context, d *domain.ConfirmationDetails) {
	if d.Partner == nil {
		return
	}
	b := d.Booking
	text := fmt.Sprintf(
		"*New confirmed booking*\n\n"+"Experience: %s\n"+"Date: %s\n"+"Guests: %d\n"+"Guest: %s, %s\n"+"Reference: %s",
		esc(d.Experience.Title),
		b.Date.Format("02.01.2006"),
		b.Quantity,
		esc(b.Customer.FullName()),
		esc(b.Customer.Phone),
		esc(b.ID),
	)
	n.send(ctx, d.Partner.TelegramChatID, text)
}

// Alert posts to the ops chat. It never fails the caller.
func (n *TelegramNotifier) Alert(ctx context.Context, text string) {
	if n.opsChatID == 0 {
		n.logger.Warn("ops alert (no ops chat configured)", logger.String("text", text))
		return
	}
	chatID := n.opsChatID
	n.send(ctx, &chatID, "*Payments alert*\n\n"+esc(text))
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}

func esc(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdown, s)
}
