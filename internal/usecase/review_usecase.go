package usecase

import (
	"context"

	"haven/internal/domain/entity"

	"github.com/google/uuid"
)

// ReviewInput carries a submitted review.
type ReviewInput struct {
	Body   string `form:"review[body]" validate:"required,max=2000"`
	Rating int    `form:"review[rating]" validate:"min=1,max=5"`
}

// ReviewUsecase is the review entity store.
type ReviewUsecase interface {
	// Find returns a single review, used by authorship checks.
	Find(ctx context.Context, id string) (*entity.Review, error)

	// Create persists a review and appends it to the listing.
	Create(ctx context.Context, listingID string, authorID uuid.UUID, input *ReviewInput) (*entity.Review, error)

	// Delete detaches the review from the listing, then removes the record.
	Delete(ctx context.Context, actorID uuid.UUID, listingID, reviewID string) error
}
