package impl

import (
	"context"
	"testing"

	"haven/internal/domain/repository"
	"haven/internal/domain/service"
	mockRepo "haven/internal/mocks/repository"
	mockSvc "haven/internal/mocks/service"
	"haven/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type geometryServiceFixtures struct {
	service     usecase.GeometryUsecase
	listingRepo *mockRepo.MockListingRepository
	geocoder    *mockSvc.MockGeocoder
}

func createTestGeometryService(t *testing.T) geometryServiceFixtures {
	fx := geometryServiceFixtures{
		listingRepo: mockRepo.NewMockListingRepository(t),
		geocoder:    mockSvc.NewMockGeocoder(t),
	}
	fx.service = NewGeometryService(GeometryServiceParams{
		ListingRepo: fx.listingRepo,
		Geocoder:    fx.geocoder,
		Logger:      newDiscardLogger(),
	})

	return fx
}

func TestGeometryService_Backfill(t *testing.T) {
	malibu := orb.Point{-118.7798, 34.0259}
	input := usecase.GeometryBackfillInput{ListingID: "L1", Location: " Malibu ", Current: service.DefaultPoint}

	t.Run("stores resolved point", func(t *testing.T) {
		fx := createTestGeometryService(t)
		ctx := context.Background()
		fx.geocoder.EXPECT().Geocode(ctx, "Malibu").Return(malibu).Once()
		fx.listingRepo.EXPECT().SetGeometry(ctx, "L1", "Malibu", malibu).Return(nil).Once()

		updated, err := fx.service.Backfill(ctx, input)

		require.NoError(t, err)
		assert.True(t, updated)
	})

	t.Run("listing already has coordinates", func(t *testing.T) {
		fx := createTestGeometryService(t)

		updated, err := fx.service.Backfill(context.Background(), usecase.GeometryBackfillInput{
			ListingID: "L1",
			Location:  "Malibu",
			Current:   malibu,
		})

		require.NoError(t, err)
		assert.False(t, updated)
	})

	t.Run("blank location", func(t *testing.T) {
		fx := createTestGeometryService(t)

		updated, err := fx.service.Backfill(context.Background(), usecase.GeometryBackfillInput{ListingID: "L1", Current: service.DefaultPoint})

		require.NoError(t, err)
		assert.False(t, updated)
	})

	t.Run("still unresolved", func(t *testing.T) {
		fx := createTestGeometryService(t)
		ctx := context.Background()
		fx.geocoder.EXPECT().Geocode(ctx, "Malibu").Return(service.DefaultPoint).Once()

		updated, err := fx.service.Backfill(ctx, input)

		require.NoError(t, err)
		assert.False(t, updated)
	})

	t.Run("listing edited or deleted meanwhile", func(t *testing.T) {
		fx := createTestGeometryService(t)
		ctx := context.Background()
		fx.geocoder.EXPECT().Geocode(ctx, "Malibu").Return(malibu).Once()
		fx.listingRepo.EXPECT().SetGeometry(ctx, "L1", "Malibu", malibu).Return(repository.ErrListingNotFound).Once()

		updated, err := fx.service.Backfill(ctx, input)

		require.NoError(t, err)
		assert.False(t, updated)
	})

	t.Run("store failure", func(t *testing.T) {
		fx := createTestGeometryService(t)
		ctx := context.Background()
		fx.geocoder.EXPECT().Geocode(ctx, "Malibu").Return(malibu).Once()
		fx.listingRepo.EXPECT().SetGeometry(ctx, "L1", "Malibu", malibu).Return(errors.New("write concern timeout")).Once()

		updated, err := fx.service.Backfill(ctx, input)

		require.Error(t, err)
		assert.False(t, updated)
	})
}
