package notification

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"enroll/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// localHTTPNotifier POSTs confirmation events straight to the mail worker in
// Pub/Sub push format, so development needs no cloud project.
type localHTTPNotifier struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
	now        func() time.Time
}

// NewLocalHTTPNotifier creates a notifier that pushes to endpoint.
func NewLocalHTTPNotifier(endpoint string, logger *slog.Logger) service.Notifier {
	return &localHTTPNotifier{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
		now:    time.Now,
	}
}

// SendConfirmationCode wraps the event in a push envelope and posts it.
func (n *localHTTPNotifier) SendConfirmationCode(ctx context.Context, event *service.ConfirmationEvent) error {
	eventData, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	pushMsg := PushMessage{Subscription: localSubscription}
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(eventData)
	pushMsg.Message.MessageID = uuid.NewString()
	pushMsg.Message.PublishTime = n.now().UTC().Format(time.RFC3339)
	pushMsg.Message.Attributes = eventAttributes(event)

	body, err := json.Marshal(pushMsg)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set("X-Request-Id", event.RequestID)
	}

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("mail worker returned non-success status: %d", resp.StatusCode)
	}

	n.logger.Info("[LocalPubSub] Confirmation event delivered",
		slog.String("endpoint", n.endpoint),
		slog.String("message_id", pushMsg.Message.MessageID),
	)

	return nil
}

// Close is a no-op; the HTTP client holds no dedicated resources.
func (n *localHTTPNotifier) Close() error {
	return nil
}
