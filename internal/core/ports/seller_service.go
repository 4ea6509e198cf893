package ports

import (
	"context"

	"github.com/snapcart/marketplace/internal/core/domain"
)

// CreateSellerInput carries the storefront details for a new seller profile.
type CreateSellerInput struct {
	OwnerUserID string
	StoreName   string
	Email       string
	Phone       string
	Description string
}

// SellerService manages the seller lifecycle: profile creation with role
// promotion, strict-match seller login, and cascading deletion.
type SellerService interface {
	Create(ctx context.Context, input CreateSellerInput) (*domain.Seller, error)
	Get(ctx context.Context, sellerID string) (*domain.Seller, error)
	// Login returns the seller profile only when email matches AND the
	// profile is owned by userID; seller credentials are scoped per user,
	// not globally unique by email alone.
	Login(ctx context.Context, email, userID string) (*domain.Seller, error)
	// Delete removes the caller's seller profile, all its products and their
	// reviews, and demotes the owning user to buyer, atomically. It returns
	// the number of products deleted.
	Delete(ctx context.Context, userID string) (int, error)
}
