package ports

import (
	"context"

	"github.com/snapcart/marketplace/internal/core/domain"
)

// ProductRepository defines persistence for product listings.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context, page, limit int) ([]domain.Product, int64, error)
	ListBySellerID(ctx context.Context, sellerID string) ([]domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id string) error
	// PushReviewID / PullReviewID maintain the ordered review-id list with
	// single-document atomic updates.
	PushReviewID(ctx context.Context, productID, reviewID string) error
	PullReviewID(ctx context.Context, productID, reviewID string) error
}
