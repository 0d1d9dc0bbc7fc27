package mongo

import (
	"context"
	"regexp"
	"time"

	"haven/internal/domain/entity"
	"haven/internal/domain/repository"
	"haven/internal/domain/service"
	"haven/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// listingRepository implements repository.ListingRepository on the 'listings' collection.
type listingRepository struct {
	coll *mongo.Collection
}

// NewListingRepository is the constructor for listingRepository.
func NewListingRepository(db *mongo.Database) repository.ListingRepository {
	return &listingRepository{coll: db.Collection(listingsCollection)}
}

// Find returns listings in insertion order. A search is matched literally and
// case-insensitively against the title; otherwise a category is matched exactly.
func (repo *listingRepository) Find(ctx context.Context, filter entity.ListingFilter) ([]*entity.Listing, error) {
	query := bson.M{}
	switch {
	case filter.Search != "":
		query["title"] = bson.M{"$regex": regexp.QuoteMeta(filter.Search), "$options": "i"}
	case filter.Category != "":
		query["category"] = string(filter.Category)
	}

	cursor, err := repo.coll.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, errors.Wrap(err, "failed to query listings")
	}

	var docs []*model.ListingDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode listings")
	}

	listings := make([]*entity.Listing, 0, len(docs))
	for _, doc := range docs {
		listings = append(listings, toListingDomain(doc))
	}

	return listings, nil
}

func (repo *listingRepository) FindByID(ctx context.Context, id string) (*entity.Listing, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrListingNotFound
	}

	var doc model.ListingDocument
	if err := repo.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrListingNotFound
		}

		return nil, errors.Wrap(err, "failed to find listing")
	}

	return toListingDomain(&doc), nil
}

func (repo *listingRepository) Create(ctx context.Context, listing *entity.Listing) error {
	now := time.Now().UTC()
	listing.CreatedAt, listing.UpdatedAt = now, now

	doc, err := fromListingDomain(listing)
	if err != nil {
		return err
	}

	result, err := repo.coll.InsertOne(ctx, doc)
	if err != nil {
		return errors.Wrap(err, "failed to insert listing")
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		listing.ID = oid.Hex()
	}

	return nil
}

func (repo *listingRepository) CreateMany(ctx context.Context, listings []*entity.Listing) error {
	if len(listings) == 0 {
		return nil
	}

	now := time.Now().UTC()
	docs := make([]any, 0, len(listings))
	for _, listing := range listings {
		listing.CreatedAt, listing.UpdatedAt = now, now

		doc, err := fromListingDomain(listing)
		if err != nil {
			return err
		}
		docs = append(docs, doc)
	}

	result, err := repo.coll.InsertMany(ctx, docs)
	if err != nil {
		return errors.Wrap(err, "failed to insert listings")
	}

	for i, inserted := range result.InsertedIDs {
		if oid, ok := inserted.(primitive.ObjectID); ok && i < len(listings) {
			listings[i].ID = oid.Hex()
		}
	}

	return nil
}

func (repo *listingRepository) Update(ctx context.Context, listing *entity.Listing) error {
	oid, err := primitive.ObjectIDFromHex(listing.ID)
	if err != nil {
		return repository.ErrListingNotFound
	}

	listing.UpdatedAt = time.Now().UTC()
	set := bson.M{
		"title":       listing.Title,
		"description": listing.Description,
		"image":       model.ImageDocument{URL: listing.Image.URL, Filename: listing.Image.Filename},
		"price":       listing.Price,
		"location":    listing.Location,
		"country":     listing.Country,
		"geometry":    geojson.NewGeometry(listing.Geometry),
		"updatedAt":   listing.UpdatedAt,
	}
	update := bson.M{"$set": set}
	if listing.Category == "" {
		update["$unset"] = bson.M{"category": ""}
	} else {
		set["category"] = string(listing.Category)
	}

	result, err := repo.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return errors.Wrap(err, "failed to update listing")
	}
	if result.MatchedCount == 0 {
		return repository.ErrListingNotFound
	}

	return nil
}

// SetGeometry is conditional on the location so a concurrent edit is never overwritten with stale coordinates.
func (repo *listingRepository) SetGeometry(ctx context.Context, id, location string, point orb.Point) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrListingNotFound
	}

	update := bson.M{"$set": bson.M{
		"geometry":  geojson.NewGeometry(point),
		"updatedAt": time.Now().UTC(),
	}}
	result, err := repo.coll.UpdateOne(ctx, bson.M{"_id": oid, "location": location}, update)
	if err != nil {
		return errors.Wrap(err, "failed to set listing geometry")
	}
	if result.MatchedCount == 0 {
		return repository.ErrListingNotFound
	}

	return nil
}

func (repo *listingRepository) Delete(ctx context.Context, id string) (*entity.Listing, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrListingNotFound
	}

	var doc model.ListingDocument
	if err := repo.coll.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrListingNotFound
		}

		return nil, errors.Wrap(err, "failed to delete listing")
	}

	return toListingDomain(&doc), nil
}

func (repo *listingRepository) DeleteAll(ctx context.Context) (int64, error) {
	result, err := repo.coll.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete listings")
	}

	return result.DeletedCount, nil
}

func (repo *listingRepository) AppendReview(ctx context.Context, listingID, reviewID string) error {
	listingOID, reviewOID, err := reviewRef(listingID, reviewID)
	if err != nil {
		return err
	}

	result, err := repo.coll.UpdateOne(ctx,
		bson.M{"_id": listingOID},
		bson.M{"$push": bson.M{"reviews": reviewOID}},
	)
	if err != nil {
		return errors.Wrap(err, "failed to append listing review")
	}
	if result.MatchedCount == 0 {
		return repository.ErrListingNotFound
	}

	return nil
}

// RemoveReview only matches a listing that currently references the review,
// so a review of another listing is reported as not found and left alone.
func (repo *listingRepository) RemoveReview(ctx context.Context, listingID, reviewID string) error {
	listingOID, reviewOID, err := reviewRef(listingID, reviewID)
	if err != nil {
		return repository.ErrReviewNotFound
	}

	result, err := repo.coll.UpdateOne(ctx,
		bson.M{"_id": listingOID, "reviews": reviewOID},
		bson.M{"$pull": bson.M{"reviews": reviewOID}},
	)
	if err != nil {
		return errors.Wrap(err, "failed to remove listing review")
	}
	if result.MatchedCount == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

func reviewRef(listingID, reviewID string) (primitive.ObjectID, primitive.ObjectID, error) {
	listingOID, err := primitive.ObjectIDFromHex(listingID)
	if err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, repository.ErrListingNotFound
	}
	reviewOID, err := primitive.ObjectIDFromHex(reviewID)
	if err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, repository.ErrReviewNotFound
	}

	return listingOID, reviewOID, nil
}

// --- Mapper Functions ---

func toListingDomain(doc *model.ListingDocument) *entity.Listing {
	if doc == nil {
		return nil
	}

	owner, _ := uuid.Parse(doc.Owner)
	reviewIDs := make([]string, 0, len(doc.Reviews))
	for _, oid := range doc.Reviews {
		reviewIDs = append(reviewIDs, oid.Hex())
	}

	return &entity.Listing{
		ID:          doc.ID.Hex(),
		Title:       doc.Title,
		Description: doc.Description,
		Image:       entity.Image{URL: doc.Image.URL, Filename: doc.Image.Filename},
		Price:       doc.Price,
		Location:    doc.Location,
		Country:     doc.Country,
		Category:    entity.Category(doc.Category),
		Geometry:    pointOf(doc.Geometry),
		OwnerID:     owner,
		ReviewIDs:   reviewIDs,
		CreatedAt:   doc.CreatedAt,
		UpdatedAt:   doc.UpdatedAt,
	}
}

// pointOf reads a stored GeoJSON point. Anything else reads as the default point.
func pointOf(geometry *geojson.Geometry) orb.Point {
	if geometry == nil {
		return service.DefaultPoint
	}
	if point, ok := geometry.Geometry().(orb.Point); ok {
		return point
	}

	return service.DefaultPoint
}

func fromListingDomain(listing *entity.Listing) (*model.ListingDocument, error) {
	doc := &model.ListingDocument{
		Title:       listing.Title,
		Description: listing.Description,
		Image:       model.ImageDocument{URL: listing.Image.URL, Filename: listing.Image.Filename},
		Price:       listing.Price,
		Location:    listing.Location,
		Country:     listing.Country,
		Category:    string(listing.Category),
		Geometry:    geojson.NewGeometry(listing.Geometry),
		Owner:       listing.OwnerID.String(),
		Reviews:     make([]primitive.ObjectID, 0, len(listing.ReviewIDs)),
		CreatedAt:   listing.CreatedAt,
		UpdatedAt:   listing.UpdatedAt,
	}

	if listing.ID != "" {
		oid, err := primitive.ObjectIDFromHex(listing.ID)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid listing id %q", listing.ID)
		}
		doc.ID = oid
	}

	for _, id := range listing.ReviewIDs {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid review id %q", id)
		}
		doc.Reviews = append(doc.Reviews, oid)
	}

	return doc, nil
}
