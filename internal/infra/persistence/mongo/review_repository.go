package mongo

import (
	"context"
	"time"

	"haven/internal/domain/entity"
	"haven/internal/domain/repository"
	"haven/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// reviewRepository implements repository.ReviewRepository on the 'reviews' collection.
type reviewRepository struct {
	coll *mongo.Collection
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *mongo.Database) repository.ReviewRepository {
	return &reviewRepository{coll: db.Collection(reviewsCollection)}
}

func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	review.CreatedAt = time.Now().UTC()

	doc := &model.ReviewDocument{
		Body:      review.Body,
		Rating:    review.Rating,
		Author:    review.AuthorID.String(),
		CreatedAt: review.CreatedAt,
	}

	result, err := repo.coll.InsertOne(ctx, doc)
	if err != nil {
		return errors.Wrap(err, "failed to insert review")
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		review.ID = oid.Hex()
	}

	return nil
}

func (repo *reviewRepository) FindByID(ctx context.Context, id string) (*entity.Review, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrReviewNotFound
	}

	var doc model.ReviewDocument
	if err := repo.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review")
	}

	return toReviewDomain(&doc), nil
}

func (repo *reviewRepository) FindByIDs(ctx context.Context, ids []string) ([]*entity.Review, error) {
	oids := objectIDs(ids)
	if len(oids) == 0 {
		return []*entity.Review{}, nil
	}

	cursor, err := repo.coll.Find(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return nil, errors.Wrap(err, "failed to query reviews")
	}

	var docs []*model.ReviewDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode reviews")
	}

	reviews := make([]*entity.Review, 0, len(docs))
	for _, doc := range docs {
		reviews = append(reviews, toReviewDomain(doc))
	}

	return reviews, nil
}

func (repo *reviewRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrReviewNotFound
	}

	result, err := repo.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return errors.Wrap(err, "failed to delete review")
	}
	if result.DeletedCount == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

func (repo *reviewRepository) DeleteMany(ctx context.Context, ids []string) (int64, error) {
	oids := objectIDs(ids)
	if len(oids) == 0 {
		return 0, nil
	}

	result, err := repo.coll.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete reviews")
	}

	return result.DeletedCount, nil
}

// objectIDs converts hex IDs, dropping any that are malformed.
func objectIDs(ids []string) []primitive.ObjectID {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			oids = append(oids, oid)
		}
	}

	return oids
}

func toReviewDomain(doc *model.ReviewDocument) *entity.Review {
	author, _ := uuid.Parse(doc.Author)

	return &entity.Review{
		ID:        doc.ID.Hex(),
		Body:      doc.Body,
		Rating:    doc.Rating,
		AuthorID:  author,
		CreatedAt: doc.CreatedAt,
	}
}
