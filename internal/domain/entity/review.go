package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	MinRating = 1
	MaxRating = 5
)

// Review is a rated piece of feedback left on a listing.
type Review struct {
	ID        string
	Body      string
	Rating    int
	AuthorID  uuid.UUID
	CreatedAt time.Time
}

// IsAuthoredBy reports whether userID may delete the review.
func (r *Review) IsAuthoredBy(userID uuid.UUID) bool {
	return userID != uuid.Nil && r.AuthorID == userID
}
