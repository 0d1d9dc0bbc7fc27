package service

import (
	"context"
)

// Listing and review event types.
const (
	EventListingCreated = "listing.created"
	EventListingUpdated = "listing.updated"
	EventListingDeleted = "listing.deleted"
	EventReviewCreated  = "review.created"
	EventReviewDeleted  = "review.deleted"
)

// MarketplaceEvent describes a change to a listing or one of its reviews.
type MarketplaceEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	Type      string `json:"type"`
	ListingID string `json:"listing_id"`
	ReviewID  string `json:"review_id,omitempty"`
	ActorID   string `json:"actor_id"`
	// Populated for listing events
	Title     string  `json:"title,omitempty"`
	Location  string  `json:"location,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`
	Latitude  float64 `json:"latitude,omitempty"`
	// Populated for review events
	Rating int `json:"rating,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// Publish sends a marketplace event
	Publish(ctx context.Context, event *MarketplaceEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
