package usecase

import (
	"context"

	"github.com/paulmach/orb"
)

// GeometryBackfillInput identifies a listing whose coordinates may need resolving again.
type GeometryBackfillInput struct {
	ListingID string
	Location  string
	Current   orb.Point
}

// GeometryUsecase repairs listings that were saved with the fallback point.
type GeometryUsecase interface {
	// Backfill geocodes the location again and stores the result when it resolves.
	// It reports whether the listing was updated.
	Backfill(ctx context.Context, input GeometryBackfillInput) (bool, error)
}
