package notification

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Felixdivoar/natuasili/internal/domain"
	"github.com/wb-go/wbf/logger"
	"github.com/wneessen/go-mail"
)

type MailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
	Timeout  time.Duration
}

type mailSender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

// Mailer sends the customer confirmation e-mail. Without an SMTP host it only logs.
type Mailer struct {
	client mailSender
	cfg    MailConfig
	logger logger.Logger
}

func NewMailer(cfg MailConfig, log logger.Logger) (*Mailer, error) {
	if cfg.Host == "" {
		log.Warn("smtp host is empty, confirmation e-mails disabled")
		return &Mailer{cfg: cfg, logger: log}, nil
	}

	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPortPolicy(mail.TLSOpportunistic),
	}
	if cfg.Timeout > 0 {
		opts = append(opts, mail.WithTimeout(cfg.Timeout))
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("create smtp client: %w", err)
	}

	return &Mailer{client: client, cfg: cfg, logger: log}, nil
}

func (m *Mailer) SendBookingConfirmation(ctx context.Context, d *domain.ConfirmationDetails) error {
	msg, err := m.confirmationMessage(d)
	if err != nil {
		return err
	}

	if m.client == nil {
		m.logger.Info("confirmation e-mail skipped (smtp disabled)",
			logger.String("booking_id", d.Booking.ID),
			logger.String("email", d.Booking.Customer.Email),
		)
		return nil
	}

	if err = m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}

func (m *Mailer) confirmationMessage(d *domain.ConfirmationDetails) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.FromFormat(m.cfg.FromName, m.cfg.From); err != nil {
		return nil, fmt.Errorf("set from: %w", err)
	}
	if err := msg.AddToFormat(d.Booking.Customer.FullName(), d.Booking.Customer.Email); err != nil {
		return nil, fmt.Errorf("set to: %w", err)
	}
	msg.Subject(fmt.Sprintf("Booking confirmed: %s", d.Experience.Title))
	msg.SetMessageID()
	msg.SetDate()
	msg.SetBodyString(mail.TypeTextPlain, confirmationText(d))

	return msg, nil
}

func confirmationText(d *domain.ConfirmationDetails) string {
	b := d.Booking
	var sb strings.Builder
	fmt.Fprintf(&sb, "Hello %s,\n\n", b.Customer.FirstName)
	fmt.Fprintf(&sb, "Your booking for %s is confirmed.\n\n", d.Experience.Title)
	fmt.Fprintf(&sb, "Date: %s\n", b.Date.Format("Monday, 2 January 2006"))
	fmt.Fprintf(&sb, "Guests: %d\n", b.Quantity)
	fmt.Fprintf(&sb, "Total paid: %s %s\n", formatMinor(b.TotalAmount), b.Currency)
	fmt.Fprintf(&sb, "Booking reference: %s\n", b.ID)
	if d.ConfirmationCode != "" {
		fmt.Fprintf(&sb, "Payment confirmation: %s\n", d.ConfirmationCode)
	}
	if d.Partner != nil {
		fmt.Fprintf(&sb, "\nHosted by %s", d.Partner.Name)
		if d.Partner.Email != "" {
			fmt.Fprintf(&sb, " (%s)", d.Partner.Email)
		}
		sb.WriteString(".\n")
	}
	sb.WriteString("\nAsante sana for travelling with Natuasili.\n")
	return sb.String()
}

// formatMinor renders an amount in minor units as major.minor.
func formatMinor(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return fmt.Sprintf("%s%d.%02d", sign, amount/100, amount%100)
}
