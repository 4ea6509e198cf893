package ports

import (
	"context"

	"github.com/snapcart/marketplace/internal/core/domain"
)

// ReviewRepository defines persistence for product reviews.
type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) (*domain.Review, error)
	FindByID(ctx context.Context, id string) (*domain.Review, error)
	FindByIDs(ctx context.Context, ids []string) ([]domain.Review, error)
	Update(ctx context.Context, review *domain.Review) error
	Delete(ctx context.Context, id string) error
	DeleteByIDs(ctx context.Context, ids []string) error
}
