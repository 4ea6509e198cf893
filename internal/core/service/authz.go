package service

import (
	"context"
	"errors"

	"github.com/snapcart/marketplace/internal/core/domain"
	"github.com/snapcart/marketplace/internal/core/ports"
)

// Authorizer holds the per-resource ownership rules in one place instead of
// re-deriving them inline in each handler.
type Authorizer struct {
	sellers ports.SellerRepository
}

func NewAuthorizer(sellers ports.SellerRepository) *Authorizer {
	return &Authorizer{sellers: sellers}
}

// RequireSeller resolves the caller's seller profile. Product mutation and
// my-products are gated on its existence.
func (a *Authorizer) RequireSeller(ctx context.Context, userID string) (*domain.Seller, error) {
	seller, err := a.sellers.FindByOwnerUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrSellerNotFound) {
			return nil, domain.ErrSellerProfileRequired
		}
		return nil, err
	}
	return seller, nil
}

// CanMutateProduct checks product ownership against the caller's seller id,
// never the user id.
func (a *Authorizer) CanMutateProduct(seller *domain.Seller, product *domain.Product) error {
	if product.SellerID != seller.ID {
		return domain.ErrUnauthorized
	}
	return nil
}

// CanReviewProduct bans reviewing one's own product: the product's owning
// seller must not be linked to the caller's user id.
func (a *Authorizer) CanReviewProduct(ctx context.Context, userID string, product *domain.Product) error {
	owner, err := a.sellers.FindByID(ctx, product.SellerID)
	if err != nil {
		return err
	}
	if owner.OwnerUserID == userID {
		return domain.ErrSelfReview
	}
	return nil
}

// CanMutateReview requires the caller to be the review's author.
func (a *Authorizer) CanMutateReview(review *domain.Review, userID string) error {
	if review.AuthorUserID != userID {
		return domain.ErrUnauthorized
	}
	return nil
}

// IsPlatformAdmin reports whether the resolved role grants admin routes.
func (a *Authorizer) IsPlatformAdmin(role string) bool {
	return role == domain.RolePlatformAdmin
}
