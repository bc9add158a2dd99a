package mailer

//go:generate go run go.uber.org/mock/mockgen -source=./mailer.go -destination=./mocks/mailer_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	mail "github.com/wneessen/go-mail"

	"grandhotel/config"
)

// BookingNotice carries the fields rendered into a confirmation email.
type BookingNotice struct {
	GuestName          string
	RoomNumber         string
	RoomType           string
	CheckIn            string
	CheckOut           string
	TotalPrice         float64
	ConfirmationNumber string
}

// CancellationNotice carries the fields rendered into a cancellation email.
type CancellationNotice struct {
	GuestName  string
	RoomNumber string
	BookingID  int64
}

// Mailer is the outbound notification collaborator. Sends are best-effort:
// the booking itself never fails because an email could not be delivered.
type Mailer interface {
	SendBookingConfirmation(ctx context.Context, to string, notice BookingNotice) error
	SendCancellationNotice(ctx context.Context, to string, notice CancellationNotice) error
}

type mailerImpl struct {
	cfg *config.Config
}

func New(cfg *config.Config) Mailer {
	if !cfg.Mail.Enable {
		log.Warn().Msg("Mail delivery disabled, notifications will be logged only")
	}

	return &mailerImpl{cfg: cfg}
}

func (m *mailerImpl) SendBookingConfirmation(ctx context.Context, to string, notice BookingNotice) error {
	subject := fmt.Sprintf("%s - Booking Confirmation %s", m.cfg.Hotel.Name, notice.ConfirmationNumber)
	body := fmt.Sprintf(
		"Dear %s,\n\nYour booking at %s is confirmed.\n\nRoom: %s (%s)\nCheck-in: %s\nCheck-out: %s\nTotal: %.2f\nConfirmation number: %s\n\nWe look forward to welcoming you.\n",
		notice.GuestName,
		m.cfg.Hotel.Name,
		notice.RoomNumber,
		notice.RoomType,
		notice.CheckIn,
		notice.CheckOut,
		notice.TotalPrice,
		notice.ConfirmationNumber,
	)

	return m.send(ctx, to, subject, body)
}

func (m *mailerImpl) SendCancellationNotice(ctx context.Context, to string, notice CancellationNotice) error {
	subject := fmt.Sprintf("%s - Booking #%d Cancelled", m.cfg.Hotel.Name, notice.BookingID)
	body := fmt.Sprintf(
		"Dear %s,\n\nYour booking #%d for room %s has been cancelled.\n\nWe hope to serve you again in the future.\n",
		notice.GuestName,
		notice.BookingID,
		notice.RoomNumber,
	)

	return m.send(ctx, to, subject, body)
}

func (m *mailerImpl) send(ctx context.Context, to, subject, body string) error {
	if !m.cfg.Mail.Enable {
		log.Info().Str("to", to).Str("subject", subject).Msg("Mail disabled, skipping delivery")

		return nil
	}

	msg := mail.NewMsg()

	if err := msg.From(m.cfg.Mail.From); err != nil {
		return fmt.Errorf("invalid mail sender: %w", err)
	}

	if err := msg.To(to); err != nil {
		return fmt.Errorf("invalid mail recipient: %w", err)
	}

	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	client, err := mail.NewClient(
		m.cfg.Mail.Host,
		mail.WithPort(m.cfg.Mail.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.cfg.Mail.Username),
		mail.WithPassword(m.cfg.Mail.Password),
	)
	if err != nil {
		return fmt.Errorf("failed to create mail client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}

	log.Info().Str("to", to).Str("subject", subject).Msg("Mail sent")

	return nil
}
