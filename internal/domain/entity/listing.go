package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// Image describes where a listing picture is stored.
type Image struct {
	URL      string
	Filename string
}

// Listing is a rentable property.
//
// Geometry is an orb.Point, i.e. [longitude, latitude], so the stored
// coordinates always have exactly two entries with longitude first.
type Listing struct {
	ID          string
	Title       string
	Description string
	Image       Image
	Price       float64
	Location    string
	Country     string
	Category    Category
	Geometry    orb.Point
	OwnerID     uuid.UUID
	ReviewIDs   []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsOwnedBy reports whether userID may mutate the listing.
func (l *Listing) IsOwnedBy(userID uuid.UUID) bool {
	return userID != uuid.Nil && l.OwnerID == userID
}

// ListingFilter selects listings for the index page.
// Search takes precedence over Category when both are set.
type ListingFilter struct {
	Search   string
	Category Category
}

// ListingDetail is a listing with its owner, reviews and review authors resolved.
type ListingDetail struct {
	Listing *Listing
	Owner   *User
	Reviews []*ReviewDetail
}

// ReviewDetail pairs a review with its author. Author is nil when the account no longer resolves.
type ReviewDetail struct {
	Review *Review
	Author *User
}
