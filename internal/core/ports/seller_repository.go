package ports

import (
	"context"

	"github.com/snapcart/marketplace/internal/core/domain"
)

// SellerRepository defines persistence for seller profiles.
type SellerRepository interface {
	Create(ctx context.Context, seller *domain.Seller) (*domain.Seller, error)
	FindByID(ctx context.Context, id string) (*domain.Seller, error)
	FindByOwnerUserID(ctx context.Context, userID string) (*domain.Seller, error)
	FindByEmail(ctx context.Context, email string) (*domain.Seller, error)
	Delete(ctx context.Context, id string) error
}
