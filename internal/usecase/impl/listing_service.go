package impl

import (
	"context"
	"log/slog"
	"strings"

	"haven/config"
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

// DefaultImageFilename marks the placeholder picture of listings without an upload.
const DefaultImageFilename = "listingimage"

type listingService struct {
	listingRepo  repository.ListingRepository
	reviewRepo   repository.ReviewRepository
	userRepo     repository.UserRepository
	geocoder     service.Geocoder
	imageStore   service.ImageStore
	publisher    service.EventPublisher
	defaultImage entity.Image
	logger       *slog.Logger
}

// ListingServiceParams holds dependencies for ListingService, injected by Fx.
type ListingServiceParams struct {
	fx.In

	ListingRepo repository.ListingRepository
	ReviewRepo  repository.ReviewRepository
	UserRepo    repository.UserRepository
	Geocoder    service.Geocoder
	ImageStore  service.ImageStore
	Publisher   service.EventPublisher `optional:"true"`
	Config      *config.Config
	Logger      *slog.Logger
}

// NewListingService creates the listing entity store.
func NewListingService(params ListingServiceParams) usecase.ListingUsecase {
	defaultImage := entity.Image{Filename: DefaultImageFilename}
	if params.Config != nil && params.Config.Listing != nil {
		defaultImage.URL = params.Config.Listing.DefaultImageURL
	}

	return &listingService{
		listingRepo:  params.ListingRepo,
		reviewRepo:   params.ReviewRepo,
		userRepo:     params.UserRepo,
		geocoder:     params.Geocoder,
		imageStore:   params.ImageStore,
		publisher:    params.Publisher,
		defaultImage: defaultImage,
		logger:       params.Logger,
	}
}

func (srv *listingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *listingService) List(ctx context.Context, filter entity.ListingFilter) ([]*entity.Listing, error) {
	filter.Search = strings.TrimSpace(filter.Search)
	if filter.Search != "" {
		filter.Category = ""
	}

	listings, err := srv.listingRepo.Find(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list listings")
	}

	return listings, nil
}

func (srv *listingService) Find(ctx context.Context, id string) (*entity.Listing, error) {
	listing, err := srv.listingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return nil, domainerrors.ErrListingNotFound.WrapMessage("listing " + id)
		}

		return nil, errors.Wrap(err, "failed to find listing")
	}

	return listing, nil
}

func (srv *listingService) Get(ctx context.Context, id string) (*entity.ListingDetail, error) {
	listing, err := srv.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	reviews, err := srv.loadReviews(ctx, listing.ReviewIDs)
	if err != nil {
		return nil, err
	}

	users, err := srv.loadUsers(ctx, listing.OwnerID, reviews)
	if err != nil {
		return nil, err
	}

	detail := &entity.ListingDetail{
		Listing: listing,
		Owner:   users[listing.OwnerID],
		Reviews: make([]*entity.ReviewDetail, 0, len(reviews)),
	}
	for _, review := range reviews {
		detail.Reviews = append(detail.Reviews, &entity.ReviewDetail{
			Review: review,
			Author: users[review.AuthorID],
		})
	}

	return detail, nil
}

// loadReviews resolves review references in listing order, skipping references that no longer resolve.
func (srv *listingService) loadReviews(ctx context.Context, ids []string) ([]*entity.Review, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	found, err := srv.reviewRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load listing reviews")
	}

	byID := make(map[string]*entity.Review, len(found))
	for _, review := range found {
		byID[review.ID] = review
	}

	ordered := make([]*entity.Review, 0, len(found))
	for _, id := range ids {
		if review, ok := byID[id]; ok {
			ordered = append(ordered, review)
		}
	}

	return ordered, nil
}

func (srv *listingService) loadUsers(ctx context.Context, ownerID uuid.UUID, reviews []*entity.Review) (map[uuid.UUID]*entity.User, error) {
	seen := map[uuid.UUID]struct{}{ownerID: {}}
	ids := []uuid.UUID{ownerID}
	for _, review := range reviews {
		if _, ok := seen[review.AuthorID]; ok {
			continue
		}
		seen[review.AuthorID] = struct{}{}
		ids = append(ids, review.AuthorID)
	}

	users, err := srv.userRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load listing users")
	}

	byID := make(map[uuid.UUID]*entity.User, len(users))
	for _, user := range users {
		byID[user.ID] = user
	}

	return byID, nil
}

func (srv *listingService) Create(ctx context.Context, ownerID uuid.UUID, input *usecase.ListingInput) (*entity.Listing, error) {
	if err := validateListingInput(input); err != nil {
		return nil, err
	}

	listing := &entity.Listing{
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Price:       input.Price,
		Location:    strings.TrimSpace(input.Location),
		Country:     input.Country,
		Category:    entity.Category(input.Category),
		OwnerID:     ownerID,
		Image:       srv.defaultImage,
		ReviewIDs:   []string{},
	}
	listing.Geometry = srv.geocoder.Geocode(ctx, listing.Location)

	if input.Image != nil {
		image, err := srv.imageStore.Save(ctx, input.Image)
		if err != nil {
			return nil, errors.Wrap(err, "failed to store listing image")
		}
		listing.Image = image
	}

	if err := srv.listingRepo.Create(ctx, listing); err != nil {
		srv.log(ctx).Error("Failed to create listing", slog.Any("ownerID", ownerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create listing")
	}

	srv.log(ctx).Info("Listing created",
		slog.String("listingID", listing.ID),
		slog.Any("ownerID", ownerID),
		slog.Any("geometry", listing.Geometry))
	publishEvent(ctx, srv.publisher, srv.log(ctx), newListingEvent(service.EventListingCreated, ownerID, listing))

	return listing, nil
}

func (srv *listingService) Update(ctx context.Context, actorID uuid.UUID, id string, input *usecase.ListingInput) (*entity.Listing, error) {
	if err := validateListingInput(input); err != nil {
		return nil, err
	}

	listing, err := srv.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if !listing.IsOwnedBy(actorID) {
		return nil, domainerrors.ErrNotListingOwner.WrapMessage("update listing " + id)
	}

	location := strings.TrimSpace(input.Location)
	if location != listing.Location {
		listing.Geometry = srv.geocoder.Geocode(ctx, location)
	}

	listing.Title = strings.TrimSpace(input.Title)
	listing.Description = input.Description
	listing.Price = input.Price
	listing.Location = location
	listing.Country = input.Country
	listing.Category = entity.Category(input.Category)

	var replaced entity.Image
	if input.Image != nil {
		image, err := srv.imageStore.Save(ctx, input.Image)
		if err != nil {
			return nil, errors.Wrap(err, "failed to store listing image")
		}
		replaced = listing.Image
		listing.Image = image
	}

	if err := srv.listingRepo.Update(ctx, listing); err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return nil, domainerrors.ErrListingNotFound.WrapMessage("listing " + id)
		}
		srv.log(ctx).Error("Failed to update listing", slog.String("listingID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update listing")
	}

	srv.discardImage(ctx, replaced)
	publishEvent(ctx, srv.publisher, srv.log(ctx), newListingEvent(service.EventListingUpdated, actorID, listing))

	return listing, nil
}

// Delete removes the listing document first and then its reviews, so an
// interrupted delete leaves unreferenced reviews rather than dangling references.
func (srv *listingService) Delete(ctx context.Context, actorID uuid.UUID, id string) error {
	listing, err := srv.Find(ctx, id)
	if err != nil {
		return err
	}
	if !listing.IsOwnedBy(actorID) {
		return domainerrors.ErrNotListingOwner.WrapMessage("delete listing " + id)
	}

	deleted, err := srv.listingRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return domainerrors.ErrListingNotFound.WrapMessage("listing " + id)
		}

		return errors.Wrap(err, "failed to delete listing")
	}

	if len(deleted.ReviewIDs) > 0 {
		removed, err := srv.reviewRepo.DeleteMany(ctx, deleted.ReviewIDs)
		if err != nil {
			return errors.Wrap(err, "failed to delete listing reviews")
		}
		srv.log(ctx).Debug("Deleted listing reviews", slog.String("listingID", id), slog.Int64("count", removed))
	}

	srv.discardImage(ctx, deleted.Image)
	srv.log(ctx).Info("Listing deleted", slog.String("listingID", id), slog.Any("ownerID", actorID))
	publishEvent(ctx, srv.publisher, srv.log(ctx), newListingEvent(service.EventListingDeleted, actorID, deleted))

	return nil
}

// discardImage removes an uploaded picture that is no longer referenced.
func (srv *listingService) discardImage(ctx context.Context, image entity.Image) {
	if image.Filename == "" || image.Filename == DefaultImageFilename {
		return
	}

	if err := srv.imageStore.Delete(ctx, image.Filename); err != nil {
		srv.log(ctx).Warn("Failed to delete listing image", slog.String("filename", image.Filename), slog.Any("error", err))
	}
}

func validateListingInput(input *usecase.ListingInput) error {
	if input == nil || strings.TrimSpace(input.Title) == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("listing title is required")
	}
	if input.Price < 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("listing price must not be negative")
	}
	if !entity.Category(input.Category).Valid() {
		return domainerrors.ErrValidationFailed.WrapMessage("unknown listing category " + input.Category)
	}

	return nil
}
