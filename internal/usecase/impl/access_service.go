package impl

import (
	"context"
	"log/slog"

	deliverycontext "haven/internal/delivery/context"
	domainerrors "haven/internal/domain/errors"
	"haven/internal/domain/repository"
	"haven/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type accessService struct {
	listingRepo repository.ListingRepository
	reviewRepo  repository.ReviewRepository
	logger      *slog.Logger
}

// AccessServiceParams holds dependencies for AccessService, injected by Fx.
type AccessServiceParams struct {
	fx.In

	ListingRepo repository.ListingRepository
	ReviewRepo  repository.ReviewRepository
	Logger      *slog.Logger
}

// NewAccessService creates the access control guards.
func NewAccessService(params AccessServiceParams) usecase.AccessUsecase {
	return &accessService{
		listingRepo: params.ListingRepo,
		reviewRepo:  params.ReviewRepo,
		logger:      params.Logger,
	}
}

func (srv *accessService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *accessService) RequireAuthentication(req usecase.AccessRequest) usecase.AccessDecision {
	if req.UserID != uuid.Nil {
		return allow()
	}

	decision := deny(domainerrors.ErrAuthenticationRequired)
	decision.CaptureURL = req.URL

	return decision
}

func (srv *accessService) RequireListingOwner(ctx context.Context, req usecase.AccessRequest) (usecase.AccessDecision, error) {
	listing, err := srv.listingRepo.FindByID(ctx, req.ListingID)
	if errors.Is(err, repository.ErrListingNotFound) {
		return deny(domainerrors.ErrListingNotFound), nil
	}
	if err != nil {
		return usecase.AccessDecision{}, errors.Wrap(err, "failed to load listing for ownership check")
	}

	if !listing.IsOwnedBy(req.UserID) {
		srv.log(ctx).Info("Rejected listing mutation by non-owner",
			slog.String("listingID", req.ListingID),
			slog.Any("userID", req.UserID))

		return deny(domainerrors.ErrNotListingOwner), nil
	}

	return allow(), nil
}

func (srv *accessService) RequireReviewAuthor(ctx context.Context, req usecase.AccessRequest) (usecase.AccessDecision, error) {
	review, err := srv.reviewRepo.FindByID(ctx, req.ReviewID)
	if errors.Is(err, repository.ErrReviewNotFound) {
		return deny(domainerrors.ErrReviewNotFound), nil
	}
	if err != nil {
		return usecase.AccessDecision{}, errors.Wrap(err, "failed to load review for authorship check")
	}

	if !review.IsAuthoredBy(req.UserID) {
		srv.log(ctx).Info("Rejected review deletion by non-author",
			slog.String("reviewID", req.ReviewID),
			slog.Any("userID", req.UserID))

		return deny(domainerrors.ErrNotReviewAuthor), nil
	}

	return allow(), nil
}

func allow() usecase.AccessDecision {
	return usecase.AccessDecision{Allowed: true}
}

// deny turns a recoverable error into a short-circuiting decision.
func deny(appErr domainerrors.AppError) usecase.AccessDecision {
	return usecase.AccessDecision{
		Allowed:  false,
		Redirect: appErr.Redirect(),
		Notice: &usecase.Notice{
			Kind:    domainerrors.NoticeError,
			Message: appErr.Message(),
		},
	}
}
