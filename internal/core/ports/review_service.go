package ports

import (
	"context"

	"github.com/snapcart/marketplace/internal/core/domain"
)

// CreateReviewInput carries a new review for a product.
type CreateReviewInput struct {
	ProductID    string
	AuthorUserID string
	Rating       int
	Review       string
}

// UpdateReviewInput carries a review mutation by its author.
type UpdateReviewInput struct {
	ProductID    string
	ReviewID     string
	AuthorUserID string
	Rating       int
	Review       string
}

// ReviewService implements review creation and author-scoped mutation.
type ReviewService interface {
	Create(ctx context.Context, input CreateReviewInput) (*domain.Review, error)
	Update(ctx context.Context, input UpdateReviewInput) (*domain.Review, error)
	Delete(ctx context.Context, productID, reviewID, userID string) error
}
