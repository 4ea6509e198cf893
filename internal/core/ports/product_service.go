package ports

import (
	"context"

	"github.com/snapcart/marketplace/internal/core/domain"
)

// CreateProductInput carries the listing fields for a new product.
type CreateProductInput struct {
	UserID      string
	Title       string
	Price       float64
	Image       string
	Description string
}

// UpdateProductInput carries the mutable listing fields. Zero values leave
// the stored field unchanged.
type UpdateProductInput struct {
	UserID      string
	ProductID   string
	Title       string
	Price       float64
	Image       string
	Description string
}

// SellerSummary is the public view of the seller attached to a listing.
type SellerSummary struct {
	ID            string `json:"id"`
	StoreName     string `json:"store_name"`
	OwnerUsername string `json:"owner_username"`
}

// ProductView is a product joined with its seller summary for public reads.
type ProductView struct {
	Product domain.Product
	Seller  SellerSummary
	Reviews []domain.Review
}

// ProductPage is a paginated product listing.
type ProductPage struct {
	Products []ProductView
	Total    int64
	Page     int
	Limit    int
}

// ProductService implements the product catalog use cases. Mutations require
// a seller profile and ownership of the target product.
type ProductService interface {
	Create(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	Get(ctx context.Context, productID string) (*ProductView, error)
	List(ctx context.Context, page, limit int) (*ProductPage, error)
	ListBySeller(ctx context.Context, sellerID string) ([]ProductView, error)
	MyProducts(ctx context.Context, userID string) ([]domain.Product, error)
	Update(ctx context.Context, input UpdateProductInput) (*domain.Product, error)
	Delete(ctx context.Context, userID, productID string) error
}
