package notification

// PushMessage mirrors the body Google Pub/Sub sends to HTTP push endpoints.
// The local publisher produces it and the mail worker consumes it.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

const localSubscription = "projects/local/subscriptions/confirmation-mail-sub"
