package ports

import (
	"context"

	"github.com/snapcart/marketplace/internal/core/domain"
)

// UpdateProfileInput carries the self-service mutable account fields.
type UpdateProfileInput struct {
	UserID    string
	Username  string
	AvatarURL string
}

// UserService implements account self-service. Deleting an account does not
// cascade; only seller deletion cascades to products.
type UserService interface {
	Profile(ctx context.Context, userID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, input UpdateProfileInput) (*domain.User, error)
	DeleteAccount(ctx context.Context, userID string) error
}

// AdminService implements platform-admin operations. Route access is gated by
// the platform_admin role before these are reached.
type AdminService interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	DeleteProduct(ctx context.Context, productID string) error
	DeleteReview(ctx context.Context, productID, reviewID string) error
}
