package service

import "context"

// ConfirmationEvent carries a confirmation code to be delivered out of band.
type ConfirmationEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	Email     string `json:"email"`
	Code      string `json:"code"`
}

// Notifier delivers confirmation codes. Callers never wait on delivery results.
type Notifier interface {
	// SendConfirmationCode delivers the event or hands it to a queue that will.
	SendConfirmationCode(ctx context.Context, event *ConfirmationEvent) error

	// Close releases any resources held by the notifier
	Close() error
}

// MailMessage is a plain-text email.
type MailMessage struct {
	To      string
	Subject string
	Body    string
}

// Mailer sends email through an outbound account.
type Mailer interface {
	Send(ctx context.Context, msg *MailMessage) error
}
