package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/snapcart/marketplace/internal/core/domain"
)

const collectionReviews = "reviews"

type ReviewRepository struct {
	coll *mongo.Collection
}

func NewReviewRepository(db *mongo.Database) *ReviewRepository {
	return &ReviewRepository{coll: db.Collection(collectionReviews)}
}

type mongoReview struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Rating       int                `bson:"rating"`
	Review       string             `bson:"review"`
	AuthorUserID string             `bson:"author_user_id"`
	CreatedAt    int64              `bson:"created_at"`
	UpdatedAt    int64              `bson:"updated_at"`
}

func (mr mongoReview) toDomain() *domain.Review {
	return &domain.Review{
		ID:           mr.ID.Hex(),
		Rating:       mr.Rating,
		Review:       mr.Review,
		AuthorUserID: mr.AuthorUserID,
		CreatedAt:    unixToTime(mr.CreatedAt),
		UpdatedAt:    unixToTime(mr.UpdatedAt),
	}
}

func (r *ReviewRepository) Create(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	doc := mongoReview{
		Rating:       review.Rating,
		Review:       review.Review,
		AuthorUserID: review.AuthorUserID,
		CreatedAt:    review.CreatedAt.Unix(),
		UpdatedAt:    review.UpdatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert review: %w", err)
	}

	created := *review
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *ReviewRepository) FindByID(ctx context.Context, id string) (*domain.Review, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrReviewNotFound
	}

	var mr mongoReview
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mr); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrReviewNotFound
		}
		return nil, fmt.Errorf("find review: %w", err)
	}
	return mr.toDomain(), nil
}

// FindByIDs returns reviews in the order of ids, which is the product's
// stored ordering; ids that no longer resolve are skipped.
func (r *ReviewRepository) FindByIDs(ctx context.Context, ids []string) ([]domain.Review, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		oids = append(oids, oid)
	}
	if len(oids) == 0 {
		return nil, nil
	}

	cur, err := r.coll.Find(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer cur.Close(ctx)

	byID := make(map[string]domain.Review, len(oids))
	for cur.Next(ctx) {
		var mr mongoReview
		if err := cur.Decode(&mr); err != nil {
			return nil, fmt.Errorf("decode review: %w", err)
		}
		rv := mr.toDomain()
		byID[rv.ID] = *rv
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}

	ordered := make([]domain.Review, 0, len(byID))
	for _, id := range ids {
		if rv, ok := byID[id]; ok {
			ordered = append(ordered, rv)
		}
	}
	return ordered, nil
}

func (r *ReviewRepository) Update(ctx context.Context, review *domain.Review) error {
	oid, err := primitive.ObjectIDFromHex(review.ID)
	if err != nil {
		return domain.ErrReviewNotFound
	}

	update := bson.M{"$set": bson.M{
		"rating":     review.Rating,
		"review":     review.Review,
		"updated_at": review.UpdatedAt.Unix(),
	}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("update review: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrReviewNotFound
	}
	return nil
}

func (r *ReviewRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrReviewNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete review: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrReviewNotFound
	}
	return nil
}

func (r *ReviewRepository) DeleteByIDs(ctx context.Context, ids []string) error {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		oids = append(oids, oid)
	}
	if len(oids) == 0 {
		return nil
	}

	if _, err := r.coll.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": oids}}); err != nil {
		return fmt.Errorf("delete reviews: %w", err)
	}
	return nil
}
