// Package pubsub publishes marketplace events either to Google Pub/Sub or,
// in development, straight to the worker's push endpoint over HTTP.
package pubsub

import (
	"context"
	"log/slog"

	"haven/config"
	"haven/internal/domain/constants"
	"haven/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type publisherBuilder func(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error)

//nolint:gochecknoglobals
var builders = map[string]publisherBuilder{
	constants.PubSubProviderLocal: func(_ context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("pubsub.localEndpoint is required for the local provider")
		}

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil
	},
	constants.PubSubProviderGoogle: func(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return nil, errors.New("pubsub.projectId and pubsub.topicId are required for the google provider")
		}

		return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)
	},
}

// openPublisher picks the publisher for cfg. A missing block or empty
// provider disables publishing.
func openPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	if cfg == nil || cfg.Provider == "" {
		logger.Info("PubSub not configured, events will be dropped")

		return &noopPublisher{logger: logger}, nil
	}

	build, ok := builders[cfg.Provider]
	if !ok {
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	publisher, err := build(ctx, cfg, logger)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s publisher", cfg.Provider)
	}

	logger.Info("Event publisher ready", slog.String("provider", cfg.Provider))

	return publisher, nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher opens the configured publisher and closes it on shutdown.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	publisher, err := openPublisher(params.Ctx, params.Config.PubSub, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.StopHook(publisher.Close))

	return publisher, nil
}

// eventAttributes are the message attributes subscribers filter on.
func eventAttributes(event *service.MarketplaceEvent) map[string]string {
	attributes := map[string]string{
		"type":       event.Type,
		"listing_id": event.ListingID,
	}
	if event.ReviewID != "" {
		attributes["review_id"] = event.ReviewID
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
