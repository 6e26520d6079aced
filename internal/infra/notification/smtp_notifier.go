package notification

import (
	"context"
	"log/slog"

	"enroll/internal/domain/service"
	"enroll/internal/infra/mail"
)

// smtpNotifier sends the confirmation email from the API process itself.
type smtpNotifier struct {
	mailer service.Mailer
	logger *slog.Logger
}

// NewSMTPNotifier creates a notifier that delivers through mailer.
func NewSMTPNotifier(mailer service.Mailer, logger *slog.Logger) service.Notifier {
	return &smtpNotifier{mailer: mailer, logger: logger}
}

func (n *smtpNotifier) SendConfirmationCode(ctx context.Context, event *service.ConfirmationEvent) error {
	return n.mailer.Send(ctx, mail.ConfirmationMessage(event))
}

func (n *smtpNotifier) Close() error {
	return nil
}

// noopNotifier drops events when no provider is configured.
type noopNotifier struct {
	logger *slog.Logger
}

func (n *noopNotifier) SendConfirmationCode(ctx context.Context, event *service.ConfirmationEvent) error {
	n.logger.DebugContext(ctx, "[NoopNotifier] Confirmation delivery disabled, skipping",
		slog.String("request_id", event.RequestID),
	)

	return nil
}

func (n *noopNotifier) Close() error {
	return nil
}
