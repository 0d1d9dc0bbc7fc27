package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "haven/internal/delivery/context"
	"haven/internal/domain/repository"
	"haven/internal/domain/service"
	"haven/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type geometryService struct {
	listingRepo repository.ListingRepository
	geocoder    service.Geocoder
	logger      *slog.Logger
}

// GeometryServiceParams holds dependencies for GeometryService, injected by Fx.
type GeometryServiceParams struct {
	fx.In

	ListingRepo repository.ListingRepository
	Geocoder    service.Geocoder
	Logger      *slog.Logger
}

// NewGeometryService creates the geometry backfill usecase.
func NewGeometryService(params GeometryServiceParams) usecase.GeometryUsecase {
	return &geometryService{
		listingRepo: params.ListingRepo,
		geocoder:    params.Geocoder,
		logger:      params.Logger,
	}
}

func (srv *geometryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *geometryService) Backfill(ctx context.Context, input usecase.GeometryBackfillInput) (bool, error) {
	location := strings.TrimSpace(input.Location)
	if location == "" || !input.Current.Equal(service.DefaultPoint) {
		return false, nil
	}

	point := srv.geocoder.Geocode(ctx, location)
	if point.Equal(service.DefaultPoint) {
		srv.log(ctx).Debug("Location still unresolved", slog.String("listingID", input.ListingID))

		return false, nil
	}

	err := srv.listingRepo.SetGeometry(ctx, input.ListingID, location, point)
	if errors.Is(err, repository.ErrListingNotFound) {
		// Deleted, or edited to another location since the event was published.
		srv.log(ctx).Info("Skipped stale geometry backfill", slog.String("listingID", input.ListingID))

		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "failed to store backfilled geometry")
	}

	srv.log(ctx).Info("Backfilled listing geometry",
		slog.String("listingID", input.ListingID),
		slog.Any("geometry", point))

	return true, nil
}
