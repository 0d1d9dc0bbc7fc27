package impl

import (
	"context"
	"strings"
	"testing"

	"haven/internal/domain/entity"
	domainerrors "haven/internal/domain/errors"
	"haven/internal/domain/repository"
	"haven/internal/domain/service"
	mockRepo "haven/internal/mocks/repository"
	mockSvc "haven/internal/mocks/service"
	"haven/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type listingServiceFixtures struct {
	service     usecase.ListingUsecase
	listingRepo *mockRepo.MockListingRepository
	reviewRepo  *mockRepo.MockReviewRepository
	userRepo    *mockRepo.MockUserRepository
	geocoder    *mockSvc.MockGeocoder
	imageStore  *mockSvc.MockImageStore
	publisher   *mockSvc.MockEventPublisher
}

func createTestListingService(t *testing.T) listingServiceFixtures {
	fx := listingServiceFixtures{
		listingRepo: mockRepo.NewMockListingRepository(t),
		reviewRepo:  mockRepo.NewMockReviewRepository(t),
		userRepo:    mockRepo.NewMockUserRepository(t),
		geocoder:    mockSvc.NewMockGeocoder(t),
		imageStore:  mockSvc.NewMockImageStore(t),
		publisher:   mockSvc.NewMockEventPublisher(t),
	}
	fx.service = NewListingService(ListingServiceParams{
		ListingRepo: fx.listingRepo,
		ReviewRepo:  fx.reviewRepo,
		UserRepo:    fx.userRepo,
		Geocoder:    fx.geocoder,
		ImageStore:  fx.imageStore,
		Publisher:   fx.publisher,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	})

	return fx
}

func expectEvent(publisher *mockSvc.MockEventPublisher, eventType string) {
	publisher.EXPECT().
		Publish(mock.Anything, mock.MatchedBy(func(event *service.MarketplaceEvent) bool {
			return event.Type == eventType
		})).
		Return(nil).
		Once()
}

func TestListingService_List_SearchWinsOverCategory(t *testing.T) {
	fx := createTestListingService(t)
	ctx := context.Background()

	want := []*entity.Listing{{ID: "1", Title: "Cozy Villa"}}
	fx.listingRepo.EXPECT().
		Find(ctx, entity.ListingFilter{Search: "Villa"}).
		Return(want, nil)

	got, err := fx.service.List(ctx, entity.ListingFilter{Search: " Villa ", Category: entity.CategoryCastles})

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestListingService_List_Category(t *testing.T) {
	fx := createTestListingService(t)
	ctx := context.Background()

	fx.listingRepo.EXPECT().
		Find(ctx, entity.ListingFilter{Category: entity.CategoryCastles}).
		Return([]*entity.Listing{}, nil)

	got, err := fx.service.List(ctx, entity.ListingFilter{Category: entity.CategoryCastles})

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestListingService_Create_UsesGeocodedPointAndOwner(t *testing.T) {
	fx := createTestListingService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	fx.geocoder.EXPECT().Geocode(ctx, "Malibu").Return(service.DefaultPoint)
	fx.listingRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Listing")).
		Run(func(_ context.Context, listing *entity.Listing) {
			listing.ID = "65f1c0ffee"
		}).
		Return(nil)
	expectEvent(fx.publisher, service.EventListingCreated)

	listing, err := fx.service.Create(ctx, ownerID, &usecase.ListingInput{
		Title:    "Beach House",
		Price:    1500,
		Location: "Malibu",
		Country:  "United States",
		Category: string(entity.CategoryAmazingPools),
	})

	require.NoError(t, err)
	assert.Equal(t, ownerID, listing.OwnerID)
	assert.Equal(t, orb.Point{77.209, 28.6139}, listing.Geometry)
	assert.Len(t, listing.Geometry, 2)
	assert.Equal(t, "https://images.example.com/default.jpg", listing.Image.URL)
	assert.Equal(t, DefaultImageFilename, listing.Image.Filename)
	assert.Empty(t, listing.ReviewIDs)
}

func TestListingService_Create_StoresUploadedImage(t *testing.T) {
	fx := createTestListingService(t)
	ctx := context.Background()

	upload := &service.ImageUpload{Filename: "house.jpg", ContentType: "image/jpeg", Body: strings.NewReader("jpeg")}
	stored := entity.Image{URL: "/uploads/listings/abc.jpg", Filename: "listings/abc.jpg"}

	fx.geocoder.EXPECT().Geocode(ctx, "Oslo").Return(orb.Point{10.75, 59.91})
	fx.imageStore.EXPECT().Save(ctx, upload).Return(stored, nil)
	fx.listingRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Listing")).Return(nil)
	expectEvent(fx.publisher, service.EventListingCreated)

	listing, err := fx.service.Create(ctx, uuid.New(), &usecase.ListingInput{Title: "Fjord cabin", Location: "Oslo", Image: upload})

	require.NoError(t, err)
	assert.Equal(t, stored, listing.Image)
}

func TestListingService_Create_PublishFailureDoesNotFail(t *testing.T) {
	fx := createTestListingService(t)
	ctx := context.Background()

	fx.geocoder.EXPECT().Geocode(ctx, "").Return(service.DefaultPoint)
	fx.listingRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Listing")).Return(nil)
	fx.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(errors.New("topic not found"))

	_, err := fx.service.Create(ctx, uuid.New(), &usecase.ListingInput{Title: "Somewhere"})

	assert.NoError(t, err)
}

func TestListingService_Create_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input *usecase.ListingInput
	}{
		{name: "missing title", input: &usecase.ListingInput{Title: "   "}},
		{name: "negative price", input: &usecase.ListingInput{Title: "t", Price: -1}},
		{name: "unknown category", input: &usecase.ListingInput{Title: "t", Category: "Caves"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestListingService(t)

			_, err := fx.service.Create(context.Background(), uuid.New(), tt.input)

			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestListingService_Get_PopulatesOwnerReviewsAndAuthors(t *testing.T) {
	fx := createTestListingService(t)
	ctx := context.Background()

	owner := &entity.User{ID: uuid.New(), Username: "alice"}
	bob := &entity.User{ID: uuid.New(), Username: "bob"}
	listing := &entity.Listing{ID: "l1", OwnerID: owner.ID, ReviewIDs: []string{"r2", "r1", "gone"}}
	r1 := &entity.Review{ID: "r1", AuthorID: bob.ID, Rating: 4}
	r2 := &entity.Review{ID: "r2", AuthorID: owner.ID, Rating: 5}

	fx.listingRepo.EXPECT().FindByID(ctx, "l1").Return(listing, nil)
	fx.reviewRepo.EXPECT().FindByIDs(ctx, listing.ReviewIDs).Return([]*entity.Review{r1, r2}, nil)
	fx.userRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{owner.ID, bob.ID}).
		Return([]*entity.User{owner, bob}, nil)

	detail, err := fx.service.Get(ctx, "l1")

	require.NoError(t, err)
	assert.Equal(t, owner, detail.Owner)
	require.Len(t, detail.Reviews, 2)
	assert.Equal(t, r2, detail.Reviews[0].Review)
	assert.Equal(t, owner, detail.Reviews[0].Author)
	assert.Equal(t, r1, detail.Reviews[1].Review)
	assert.Equal(t, bob, detail.Reviews[1].Author)
}

func TestListingService_Get_NotFound(t *testing.T) {
	fx := createTestListingService(t)

	fx.listingRepo.EXPECT().FindByID(mock.Anything, "missing").Return(nil, repository.ErrListingNotFound)

	_, err := fx.service.Get(context.Background(), "missing")

	require.Error(t, err)
	appErr, recoverable := domainerrors.IsRecoverable(err)
	require.True(t, recoverable)
	assert.Equal(t, "/listings", appErr.Redirect())
	assert.Equal(t, "Listing you requested for does not exist!", appErr.Message())
}

func TestListingService_Update_RegeocodesOnlyWhenLocationChanges(t *testing.T) {
	ownerID := uuid.New()

	t.Run("same location keeps geometry", func(t *testing.T) {
		fx := createTestListingService(t)
		ctx := context.Background()
		existing := &entity.Listing{ID: "l1", OwnerID: ownerID, Location: "Malibu", Geometry: orb.Point{-118.78, 34.03}}

		fx.listingRepo.EXPECT().FindByID(ctx, "l1").Return(existing, nil)
		fx.listingRepo.EXPECT().
			Update(ctx, mock.MatchedBy(func(l *entity.Listing) bool {
				return l.Title == "Renamed" && l.Geometry == orb.Point{-118.78, 34.03}
			})).
			Return(nil)
		expectEvent(fx.publisher, service.EventListingUpdated)

		updated, err := fx.service.Update(ctx, ownerID, "l1", &usecase.ListingInput{Title: "Renamed", Location: "Malibu"})

		require.NoError(t, err)
		assert.Equal(t, "Renamed", updated.Title)
	})

	t.Run("new location is geocoded", func(t *testing.T) {
		fx := createTestListingService(t)
		ctx := context.Background()
		existing := &entity.Listing{ID: "l1", OwnerID: ownerID, Location: "Malibu"}

		fx.listingRepo.EXPECT().FindByID(ctx, "l1").Return(existing, nil)
		fx.geocoder.EXPECT().Geocode(ctx, "Aspen").Return(orb.Point{-106.82, 39.19})
		fx.listingRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Listing")).Return(nil)
		expectEvent(fx.publisher, service.EventListingUpdated)

		updated, err := fx.service.Update(ctx, ownerID, "l1", &usecase.ListingInput{Title: "Chalet", Location: "Aspen"})

		require.NoError(t, err)
		assert.Equal(t, orb.Point{-106.82, 39.19}, updated.Geometry)
	})
}

func TestListingService_Update_ReplacesUploadedImage(t *testing.T) {
	fx := createTestListingService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	existing := &entity.Listing{ID: "l1", OwnerID: ownerID, Image: entity.Image{URL: "/uploads/listings/old.jpg", Filename: "listings/old.jpg"}}
	upload := &service.ImageUpload{Filename: "new.png", Body: strings.NewReader("png")}
	stored := entity.Image{URL: "/uploads/listings/new.png", Filename: "listings/new.png"}

	fx.listingRepo.EXPECT().FindByID(ctx, "l1").Return(existing, nil)
	fx.imageStore.EXPECT().Save(ctx, upload).Return(stored, nil)
	fx.listingRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Listing")).Return(nil)
	fx.imageStore.EXPECT().Delete(ctx, "listings/old.jpg").Return(nil)
	expectEvent(fx.publisher, service.EventListingUpdated)

	updated, err := fx.service.Update(ctx, ownerID, "l1", &usecase.ListingInput{Title: "t", Image: upload})

	require.NoError(t, err)
	assert.Equal(t, stored, updated.Image)
}

func TestListingService_Update_NonOwnerRejected(t *testing.T) {
	fx := createTestListingService(t)
	ctx := context.Background()

	fx.listingRepo.EXPECT().FindByID(ctx, "l1").Return(&entity.Listing{ID: "l1", OwnerID: uuid.New()}, nil)

	_, err := fx.service.Update(ctx, uuid.New(), "l1", &usecase.ListingInput{Title: "hijack"})

	assert.True(t, errors.Is(err, domainerrors.ErrNotListingOwner))
}

func TestListingService_Delete_CascadesReviewsAfterListing(t *testing.T) {
	fx := createTestListingService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	existing := &entity.Listing{ID: "l1", OwnerID: ownerID, ReviewIDs: []string{"r1", "r2"}, Image: entity.Image{Filename: DefaultImageFilename}}

	fx.listingRepo.EXPECT().FindByID(ctx, "l1").Return(existing, nil)
	deleteListing := fx.listingRepo.EXPECT().Delete(ctx, "l1").Return(existing, nil).Call
	fx.reviewRepo.EXPECT().DeleteMany(ctx, []string{"r1", "r2"}).Return(int64(2), nil).NotBefore(deleteListing)
	expectEvent(fx.publisher, service.EventListingDeleted)

	err := fx.service.Delete(ctx, ownerID, "l1")

	require.NoError(t, err)
}

func TestListingService_Delete_NonOwnerLeavesStateUnchanged(t *testing.T) {
	fx := createTestListingService(t)
	ctx := context.Background()

	fx.listingRepo.EXPECT().FindByID(ctx, "l1").Return(&entity.Listing{ID: "l1", OwnerID: uuid.New()}, nil)

	err := fx.service.Delete(ctx, uuid.New(), "l1")

	assert.True(t, errors.Is(err, domainerrors.ErrNotListingOwner))
	fx.listingRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
