package impl

import (
	"context"
	"log/slog"

	deliverycontext "haven/internal/delivery/context"
	"haven/internal/domain/entity"
	"haven/internal/domain/service"

	"github.com/google/uuid"
)

// publishEvent sends a marketplace event. Publishing is best effort: the
// mutation has already been persisted, so failures are only logged.
func publishEvent(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, event *service.MarketplaceEvent) {
	if publisher == nil {
		return
	}

	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	if err := publisher.Publish(ctx, event); err != nil {
		logger.Warn("Failed to publish marketplace event",
			slog.String("type", event.Type),
			slog.String("listingID", event.ListingID),
			slog.Any("error", err))
	}
}

func newListingEvent(eventType string, actorID uuid.UUID, listing *entity.Listing) *service.MarketplaceEvent {
	return &service.MarketplaceEvent{
		Type:      eventType,
		ListingID: listing.ID,
		ActorID:   actorID.String(),
		Title:     listing.Title,
		Location:  listing.Location,
		Longitude: listing.Geometry.Lon(),
		Latitude:  listing.Geometry.Lat(),
	}
}

func newReviewEvent(eventType string, actorID uuid.UUID, listingID string, review *entity.Review) *service.MarketplaceEvent {
	return &service.MarketplaceEvent{
		Type:      eventType,
		ListingID: listingID,
		ReviewID:  review.ID,
		ActorID:   actorID.String(),
		Rating:    review.Rating,
	}
}
