package usecase

import (
	"context"

	"haven/internal/domain/entity"
	"haven/internal/domain/service"

	"github.com/google/uuid"
)

// ListingInput carries the user-editable listing attributes.
type ListingInput struct {
	Title       string  `form:"listing[title]" validate:"required,max=200"`
	Description string  `form:"listing[description]" validate:"max=5000"`
	Price       float64 `form:"listing[price]" validate:"gte=0"`
	Location    string  `form:"listing[location]" validate:"max=200"`
	Country     string  `form:"listing[country]" validate:"max=100"`
	Category    string  `form:"listing[category]" validate:"omitempty,category"`

	// Image is set when the form carried a file upload.
	Image *service.ImageUpload `form:"-" validate:"-"`
}

// ListingUsecase is the listing entity store.
type ListingUsecase interface {
	// List returns listings for the index page.
	List(ctx context.Context, filter entity.ListingFilter) ([]*entity.Listing, error)

	// Get returns a listing with owner, reviews and review authors.
	Get(ctx context.Context, id string) (*entity.ListingDetail, error)

	// Find returns the bare listing, used by edit forms and ownership checks.
	Find(ctx context.Context, id string) (*entity.Listing, error)

	// Create geocodes the location and persists a listing owned by ownerID.
	Create(ctx context.Context, ownerID uuid.UUID, input *ListingInput) (*entity.Listing, error)

	// Update overwrites the mutable attributes of a listing.
	Update(ctx context.Context, actorID uuid.UUID, id string, input *ListingInput) (*entity.Listing, error)

	// Delete removes a listing together with its reviews.
	Delete(ctx context.Context, actorID uuid.UUID, id string) error
}
