package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "haven/internal/delivery/context"
	"haven/internal/domain/entity"
	domainerrors "haven/internal/domain/errors"
	"haven/internal/domain/repository"
	"haven/internal/domain/service"
	"haven/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type reviewService struct {
	reviewRepo  repository.ReviewRepository
	listingRepo repository.ListingRepository
	publisher   service.EventPublisher
	logger      *slog.Logger
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	ReviewRepo  repository.ReviewRepository
	ListingRepo repository.ListingRepository
	Publisher   service.EventPublisher `optional:"true"`
	Logger      *slog.Logger
}

// NewReviewService creates the review entity store.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		reviewRepo:  params.ReviewRepo,
		listingRepo: params.ListingRepo,
		publisher:   params.Publisher,
		logger:      params.Logger,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *reviewService) Find(ctx context.Context, id string) (*entity.Review, error) {
	review, err := srv.reviewRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, domainerrors.ErrReviewNotFound.WrapMessage("review " + id)
		}

		return nil, errors.Wrap(err, "failed to find review")
	}

	return review, nil
}

// Create inserts the review record and then appends its reference to the
// listing. The two writes are not atomic: if the append fails the record is
// left unreferenced, which readers never see.
func (srv *reviewService) Create(ctx context.Context, listingID string, authorID uuid.UUID, input *usecase.ReviewInput) (*entity.Review, error) {
	if err := validateReviewInput(input); err != nil {
		return nil, err
	}

	if _, err := srv.listingRepo.FindByID(ctx, listingID); err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return nil, domainerrors.ErrListingNotFound.WrapMessage("listing " + listingID)
		}

		return nil, errors.Wrap(err, "failed to find listing for review")
	}

	review := &entity.Review{
		Body:     strings.TrimSpace(input.Body),
		Rating:   input.Rating,
		AuthorID: authorID,
	}
	if err := srv.reviewRepo.Create(ctx, review); err != nil {
		return nil, errors.Wrap(err, "failed to create review")
	}

	if err := srv.listingRepo.AppendReview(ctx, listingID, review.ID); err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			// The listing vanished between the lookup and the append.
			srv.discardOrphan(ctx, review.ID)

			return nil, domainerrors.ErrListingNotFound.WrapMessage("listing " + listingID)
		}
		srv.log(ctx).Error("Review persisted but not attached to listing",
			slog.String("listingID", listingID),
			slog.String("reviewID", review.ID),
			slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to append review to listing")
	}

	srv.log(ctx).Info("Review created",
		slog.String("listingID", listingID),
		slog.String("reviewID", review.ID),
		slog.Any("authorID", authorID))
	publishEvent(ctx, srv.publisher, srv.log(ctx), newReviewEvent(service.EventReviewCreated, authorID, listingID, review))

	return review, nil
}

// Delete pulls the reference from the listing before removing the record, so
// an interrupted delete leaves an unreferenced record rather than a dangling reference.
func (srv *reviewService) Delete(ctx context.Context, actorID uuid.UUID, listingID, reviewID string) error {
	review, err := srv.Find(ctx, reviewID)
	if err != nil {
		return err
	}
	if !review.IsAuthoredBy(actorID) {
		return domainerrors.ErrNotReviewAuthor.WrapMessage("delete review " + reviewID)
	}

	// The record is only deleted once this listing has let go of it.
	if err := srv.listingRepo.RemoveReview(ctx, listingID, reviewID); err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) || errors.Is(err, repository.ErrListingNotFound) {
			srv.log(ctx).Warn("Review is not attached to listing",
				slog.String("listingID", listingID),
				slog.String("reviewID", reviewID))

			return domainerrors.ErrReviewNotFound.WrapMessage("review " + reviewID + " on listing " + listingID)
		}

		return errors.Wrap(err, "failed to detach review from listing")
	}

	if err := srv.reviewRepo.Delete(ctx, reviewID); err != nil && !errors.Is(err, repository.ErrReviewNotFound) {
		return errors.Wrap(err, "failed to delete review")
	}

	srv.log(ctx).Info("Review deleted", slog.String("listingID", listingID), slog.String("reviewID", reviewID))
	publishEvent(ctx, srv.publisher, srv.log(ctx), newReviewEvent(service.EventReviewDeleted, actorID, listingID, review))

	return nil
}

func (srv *reviewService) discardOrphan(ctx context.Context, reviewID string) {
	if err := srv.reviewRepo.Delete(ctx, reviewID); err != nil {
		srv.log(ctx).Warn("Failed to remove unattached review", slog.String("reviewID", reviewID), slog.Any("error", err))
	}
}

func validateReviewInput(input *usecase.ReviewInput) error {
	if input == nil || strings.TrimSpace(input.Body) == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("review body is required")
	}
	if input.Rating < entity.MinRating || input.Rating > entity.MaxRating {
		return domainerrors.ErrValidationFailed.WrapMessage("review rating must be between 1 and 5")
	}

	return nil
}
