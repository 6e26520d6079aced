package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"enroll/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googlePubSubNotifier publishes confirmation events to a Google Cloud Pub/Sub
// topic; the mail worker receives them through a push subscription.
type googlePubSubNotifier struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubNotifier creates a notifier bound to an existing topic.
func NewGooglePubSubNotifier(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.Notifier, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	_, err = client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{
		Topic: topicPath,
	})
	if err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	logger.Info("Google Pub/Sub notifier initialized",
		slog.String("project_id", projectID),
		slog.String("topic_id", topicID),
	)

	return &googlePubSubNotifier{
		client:    client,
		publisher: client.Publisher(topicID),
		logger:    logger,
	}, nil
}

// SendConfirmationCode publishes the event and waits for the server ack.
func (n *googlePubSubNotifier) SendConfirmationCode(ctx context.Context, event *service.ConfirmationEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	msg := &pubsub.Message{
		Data:       data,
		Attributes: eventAttributes(event),
	}

	serverID, err := n.publisher.Publish(ctx, msg).Get(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to publish confirmation event")
	}

	n.logger.Info("[GooglePubSub] Confirmation event published",
		slog.String("server_id", serverID),
	)

	return nil
}

// Close flushes pending messages and releases the client.
func (n *googlePubSubNotifier) Close() error {
	if n.publisher != nil {
		n.publisher.Stop()
	}
	if n.client != nil {
		return errors.WithStack(n.client.Close())
	}

	return nil
}

func eventAttributes(event *service.ConfirmationEvent) map[string]string {
	attributes := map[string]string{"event_type": "confirmation_code"}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
