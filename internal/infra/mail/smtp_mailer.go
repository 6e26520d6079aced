// Package mail delivers plain-text email over SMTP.
package mail

import (
	"context"
	"log/slog"
	"time"

	"enroll/config"
	"enroll/internal/domain/service"

	"github.com/pkg/errors"
	gomail "github.com/wneessen/go-mail"
)

const (
	defaultSMTPPort    = 587
	defaultSendTimeout = 15 * time.Second
)

// ErrInvalidAddress marks a message whose sender or recipient can never be
// delivered to, however often it is retried.
var ErrInvalidAddress = errors.New("invalid email address")

// ConfirmationSubject is the subject line of the confirmation email.
const ConfirmationSubject = "Email Confirmation Code"

// ConfirmationBody renders the plain-text body carrying the code.
func ConfirmationBody(code string) string {
	return "Your confirmation code is: " + code
}

// ConfirmationMessage builds the email for a confirmation event.
func ConfirmationMessage(event *service.ConfirmationEvent) *service.MailMessage {
	return &service.MailMessage{
		To:      event.Email,
		Subject: ConfirmationSubject,
		Body:    ConfirmationBody(event.Code),
	}
}

// smtpDialer is the part of *gomail.Client the mailer needs.
type smtpDialer interface {
	DialAndSendWithContext(ctx context.Context, messages ...*gomail.Msg) error
}

type smtpMailer struct {
	from   string
	client smtpDialer
	logger *slog.Logger
}

// NewSMTPMailer creates a Mailer from the mail section of the config.
func NewSMTPMailer(cfg *config.Config, logger *slog.Logger) (service.Mailer, error) {
	mailCfg := cfg.Mail
	if mailCfg == nil || mailCfg.Host == "" {
		return nil, errors.New("mail.host is required for smtp delivery")
	}

	from := mailCfg.From
	if from == "" {
		from = mailCfg.Username
	}
	if from == "" {
		return nil, errors.New("mail.from or mail.username is required for smtp delivery")
	}

	port := mailCfg.Port
	if port == 0 {
		port = defaultSMTPPort
	}

	opts := []gomail.Option{
		gomail.WithPort(port),
		gomail.WithTimeout(defaultSendTimeout),
		gomail.WithTLSPortPolicy(gomail.TLSMandatory),
	}
	if mailCfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(mailCfg.Username),
			gomail.WithPassword(mailCfg.Password),
		)
	}

	client, err := gomail.NewClient(mailCfg.Host, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create smtp client")
	}

	return &smtpMailer{from: from, client: client, logger: logger}, nil
}

// Send dials the SMTP server and delivers one message.
func (m *smtpMailer) Send(ctx context.Context, msg *service.MailMessage) error {
	message := gomail.NewMsg()
	if err := message.From(m.from); err != nil {
		return errors.Wrapf(ErrInvalidAddress, "sender %q: %v", m.from, err)
	}
	if err := message.To(msg.To); err != nil {
		return errors.Wrapf(ErrInvalidAddress, "recipient %q: %v", msg.To, err)
	}
	message.Subject(msg.Subject)
	message.SetBodyString(gomail.TypeTextPlain, msg.Body)

	if err := m.client.DialAndSendWithContext(ctx, message); err != nil {
		return errors.Wrap(err, "failed to send email")
	}

	m.logger.Debug("Email sent", slog.String("to", msg.To))

	return nil
}
