package usecase

import (
	"context"

	domainerrors "haven/internal/domain/errors"

	"github.com/google/uuid"
)

// AccessRequest is the part of an in-flight request the guards look at.
type AccessRequest struct {
	UserID    uuid.UUID // uuid.Nil when no session user
	URL       string    // originally requested URL, captured for post-login redirect
	ListingID string
	ReviewID  string
}

// Notice is a one-shot message shown on the next rendered page.
type Notice struct {
	Kind    domainerrors.NoticeKind
	Message string
}

// AccessDecision is the outcome of a guard.
// When Allowed is false the request must not reach its handler.
type AccessDecision struct {
	Allowed    bool
	Redirect   string
	Notice     *Notice
	CaptureURL string
}

// AccessUsecase holds the access control guards.
type AccessUsecase interface {
	// RequireAuthentication passes when the request has a session user.
	RequireAuthentication(req AccessRequest) AccessDecision

	// RequireListingOwner passes when the session user owns the listing.
	RequireListingOwner(ctx context.Context, req AccessRequest) (AccessDecision, error)

	// RequireReviewAuthor passes when the session user wrote the review.
	RequireReviewAuthor(ctx context.Context, req AccessRequest) (AccessDecision, error)
}
