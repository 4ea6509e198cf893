package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/snapcart/marketplace/internal/core/domain"
)

const collectionSellers = "sellers"

type SellerRepository struct {
	coll *mongo.Collection
}

func NewSellerRepository(db *mongo.Database) *SellerRepository {
	return &SellerRepository{coll: db.Collection(collectionSellers)}
}

type mongoSeller struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	OwnerUserID string             `bson:"owner_user_id"`
	StoreName   string             `bson:"store_name"`
	Email       string             `bson:"email"`
	Phone       string             `bson:"phone,omitempty"`
	Description string             `bson:"description,omitempty"`
	CreatedAt   int64              `bson:"created_at"`
}

func (ms mongoSeller) toDomain() *domain.Seller {
	return &domain.Seller{
		ID:          ms.ID.Hex(),
		OwnerUserID: ms.OwnerUserID,
		StoreName:   ms.StoreName,
		Email:       ms.Email,
		Phone:       ms.Phone,
		Description: ms.Description,
		CreatedAt:   unixToTime(ms.CreatedAt),
	}
}

func (r *SellerRepository) Create(ctx context.Context, seller *domain.Seller) (*domain.Seller, error) {
	doc := mongoSeller{
		OwnerUserID: seller.OwnerUserID,
		StoreName:   seller.StoreName,
		Email:       seller.Email,
		Phone:       seller.Phone,
		Description: seller.Description,
		CreatedAt:   seller.CreatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrSellerExists
		}
		return nil, fmt.Errorf("insert seller: %w", err)
	}

	created := *seller
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *SellerRepository) FindByID(ctx context.Context, id string) (*domain.Seller, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrSellerNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *SellerRepository) FindByOwnerUserID(ctx context.Context, userID string) (*domain.Seller, error) {
	return r.findOne(ctx, bson.M{"owner_user_id": userID})
}

func (r *SellerRepository) FindByEmail(ctx context.Context, email string) (*domain.Seller, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *SellerRepository) findOne(ctx context.Context, filter bson.M) (*domain.Seller, error) {
	var ms mongoSeller
	if err := r.coll.FindOne(ctx, filter).Decode(&ms); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSellerNotFound
		}
		return nil, fmt.Errorf("find seller: %w", err)
	}
	return ms.toDomain(), nil
}

func (r *SellerRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrSellerNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete seller: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrSellerNotFound
	}
	return nil
}

// EnsureIndexes enforces one seller per user and per contact email at the
// store level; the service-layer checks are only a fast path.
func (r *SellerRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "owner_user_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
