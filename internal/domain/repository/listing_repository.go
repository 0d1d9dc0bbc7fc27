package repository

import (
	"context"

	"haven/internal/domain/entity"
	"haven/internal/errors"

	"github.com/paulmach/orb"
)

// ErrListingNotFound is returned when a listing is not found or its ID is malformed.
var ErrListingNotFound = errors.New("listing not found")

// ListingRepository persists listings in the document store.
type ListingRepository interface {
	// Find returns listings matching the filter. Search is a case-insensitive
	// substring match on title and wins over Category.
	Find(ctx context.Context, filter entity.ListingFilter) ([]*entity.Listing, error)

	// FindByID retrieves a listing with its review references.
	FindByID(ctx context.Context, id string) (*entity.Listing, error)

	// Create inserts the listing and sets its ID and timestamps.
	Create(ctx context.Context, listing *entity.Listing) error

	// CreateMany inserts listings in bulk, used by the seed command.
	CreateMany(ctx context.Context, listings []*entity.Listing) error

	// Update overwrites the mutable attributes. Owner and review references are left untouched.
	Update(ctx context.Context, listing *entity.Listing) error

	// SetGeometry replaces the coordinates only while the listing's location
	// text is still location. It returns ErrListingNotFound otherwise.
	SetGeometry(ctx context.Context, id, location string, point orb.Point) error

	// Delete removes the listing document and returns it as it was stored.
	Delete(ctx context.Context, id string) (*entity.Listing, error)

	// DeleteAll removes every listing, used by the seed command.
	DeleteAll(ctx context.Context) (int64, error)

	// AppendReview pushes reviewID onto the listing's review sequence.
	AppendReview(ctx context.Context, listingID, reviewID string) error

	// RemoveReview pulls reviewID from the listing's review sequence. It returns
	// ErrReviewNotFound when the listing does not reference the review.
	RemoveReview(ctx context.Context, listingID, reviewID string) error
}
