package repository

import (
	"context"

	"haven/internal/domain/entity"
	"haven/internal/errors"
)

// ErrReviewNotFound is returned when a review is not found or its ID is malformed.
var ErrReviewNotFound = errors.New("review not found")

// ReviewRepository persists review records. The listing→review relation lives on the listing.
type ReviewRepository interface {
	// Create inserts the review and sets its ID and CreatedAt.
	Create(ctx context.Context, review *entity.Review) error

	// FindByID retrieves a single review.
	FindByID(ctx context.Context, id string) (*entity.Review, error)

	// FindByIDs retrieves every review whose ID is in ids. Unknown IDs are skipped.
	FindByIDs(ctx context.Context, ids []string) ([]*entity.Review, error)

	// Delete removes a review record.
	Delete(ctx context.Context, id string) error

	// DeleteMany removes review records in bulk and returns how many were removed.
	DeleteMany(ctx context.Context, ids []string) (int64, error)
}
