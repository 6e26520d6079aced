package mail

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"enroll/config"
	"enroll/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomail "github.com/wneessen/go-mail"
)

type recordingDialer struct {
	sent []*gomail.Msg
	err  error
}

func (d *recordingDialer) DialAndSendWithContext(_ context.Context, messages ...*gomail.Msg) error {
	d.sent = append(d.sent, messages...)

	return d.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestConfirmationMessage(t *testing.T) {
	msg := ConfirmationMessage(&service.ConfirmationEvent{Email: "jo@x.com", Code: "aB3xY9"})

	assert.Equal(t, "jo@x.com", msg.To)
	assert.Equal(t, "Email Confirmation Code", msg.Subject)
	assert.Equal(t, "Your confirmation code is: aB3xY9", msg.Body)
}

func TestSMTPMailer_Send(t *testing.T) {
	dialer := &recordingDialer{}
	mailer := &smtpMailer{from: "noreply@x.com", client: dialer, logger: discardLogger()}

	err := mailer.Send(context.Background(), ConfirmationMessage(&service.ConfirmationEvent{Email: "jo@x.com", Code: "aB3xY9"}))
	require.NoError(t, err)
	require.Len(t, dialer.sent, 1)

	var buf bytes.Buffer
	_, err = dialer.sent[0].WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Subject: Email Confirmation Code")
	assert.Contains(t, buf.String(), "Your confirmation code is: aB3xY9")
	assert.Contains(t, buf.String(), "<jo@x.com>")
}

func TestSMTPMailer_SendFailure(t *testing.T) {
	dialer := &recordingDialer{err: errors.New("535 authentication failed")}
	mailer := &smtpMailer{from: "noreply@x.com", client: dialer, logger: discardLogger()}

	err := mailer.Send(context.Background(), &service.MailMessage{To: "jo@x.com", Subject: "s", Body: "b"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "535 authentication failed")
	assert.NotErrorIs(t, err, ErrInvalidAddress)
}

func TestSMTPMailer_InvalidRecipient(t *testing.T) {
	dialer := &recordingDialer{}
	mailer := &smtpMailer{from: "noreply@x.com", client: dialer, logger: discardLogger()}

	err := mailer.Send(context.Background(), &service.MailMessage{To: "not an address"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidAddress)
	assert.Contains(t, err.Error(), "not an address")
	assert.Empty(t, dialer.sent)
}

func TestSMTPMailer_InvalidSender(t *testing.T) {
	dialer := &recordingDialer{}
	mailer := &smtpMailer{from: "@@", client: dialer, logger: discardLogger()}

	err := mailer.Send(context.Background(), &service.MailMessage{To: "jo@x.com"})
	assert.ErrorIs(t, err, ErrInvalidAddress)
	assert.Empty(t, dialer.sent)
}

func TestNewSMTPMailer_Validation(t *testing.T) {
	_, err := NewSMTPMailer(&config.Config{}, discardLogger())
	require.Error(t, err)

	_, err = NewSMTPMailer(&config.Config{Mail: &config.MailConfig{Host: "smtp.x.com"}}, discardLogger())
	require.Error(t, err)

	mailer, err := NewSMTPMailer(&config.Config{Mail: &config.MailConfig{
		Host: "smtp.x.com", Username: "noreply@x.com", Password: "secret",
	}}, discardLogger())
	require.NoError(t, err)
	assert.Equal(t, "noreply@x.com", mailer.(*smtpMailer).from)
}
