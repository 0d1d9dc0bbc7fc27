package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"haven/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	localSubscription   = "projects/local/subscriptions/marketplace-events"
	localPublishTimeout = 10 * time.Second
)

// PushMessage is the JSON envelope of a Pub/Sub push delivery.
type PushMessage struct {
	Message      PushedMessage `json:"message"`
	Subscription string        `json:"subscription"`
}

// PushedMessage is the message inside a push envelope. Data is base64.
type PushedMessage struct {
	Data        string            `json:"data"`
	Attributes  map[string]string `json:"attributes,omitempty"`
	MessageID   string            `json:"messageId"`
	PublishTime string            `json:"publishTime"`
}

// localHTTPPublisher delivers each event straight to a push endpoint, so a
// developer can run the web app and worker without a Pub/Sub emulator.
type localHTTPPublisher struct {
	endpoint string
	client   *http.Client
	logger   *slog.Logger
}

// NewLocalHTTPPublisher posts push envelopes to endpoint.
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		client:   &http.Client{Timeout: localPublishTimeout},
		logger:   logger,
	}
}

func newPushMessage(event *service.MarketplaceEvent) (*PushMessage, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrap(err, "encode event")
	}

	return &PushMessage{
		Subscription: localSubscription,
		Message: PushedMessage{
			Data:        base64.StdEncoding.EncodeToString(data),
			Attributes:  eventAttributes(event),
			MessageID:   uuid.NewString(),
			PublishTime: time.Now().UTC().Format(time.RFC3339Nano),
		},
	}, nil
}

func (p *localHTTPPublisher) Publish(ctx context.Context, event *service.MarketplaceEvent) error {
	msg, err := newPushMessage(event)
	if err != nil {
		return err
	}

	var body bytes.Buffer
	if err := json.NewEncoder(&body).Encode(msg); err != nil {
		return errors.Wrap(err, "encode push envelope")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, &body)
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set("X-Request-Id", event.RequestID)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "push to %s", p.endpoint)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))

		return errors.Errorf("push endpoint answered %d: %s", resp.StatusCode, bytes.TrimSpace(snippet))
	}

	p.logger.Debug("Event pushed locally",
		slog.String("type", event.Type),
		slog.String("listing_id", event.ListingID),
		slog.String("message_id", msg.Message.MessageID),
	)

	return nil
}

func (p *localHTTPPublisher) Close() error {
	p.client.CloseIdleConnections()

	return nil
}
