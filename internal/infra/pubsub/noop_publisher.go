package pubsub

import (
	"context"
	"log/slog"

	"haven/internal/domain/service"
)

// noopPublisher swallows events when no provider is configured.
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) Publish(_ context.Context, event *service.MarketplaceEvent) error {
	p.logger.Debug("Event publishing disabled, dropping event",
		slog.String("type", event.Type),
		slog.String("listing_id", event.ListingID),
	)

	return nil
}

func (p *noopPublisher) Close() error { return nil }
