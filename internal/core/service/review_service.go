package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/snapcart/marketplace/internal/core/domain"
	"github.com/snapcart/marketplace/internal/core/ports"
)

// ReviewService implements review creation with the self-review ban and
// author-scoped update/delete.
type ReviewService struct {
	reviews  ports.ReviewRepository
	products ports.ProductRepository
	authz    *Authorizer
	logger   zerolog.Logger
}

func NewReviewService(reviews ports.ReviewRepository, products ports.ProductRepository, authz *Authorizer, logger zerolog.Logger) *ReviewService {
	return &ReviewService{reviews: reviews, products: products, authz: authz, logger: logger}
}

func validateReviewInput(rating int, text string) error {
	if rating < 1 || rating > 5 || strings.TrimSpace(text) == "" {
		return domain.ErrInvalidInput
	}
	return nil
}

func (s *ReviewService) Create(ctx context.Context, input ports.CreateReviewInput) (*domain.Review, error) {
	if err := validateReviewInput(input.Rating, input.Review); err != nil {
		return nil, err
	}

	product, err := s.products.FindByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}

	if err := s.authz.CanReviewProduct(ctx, input.AuthorUserID, product); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	review := &domain.Review{
		Rating:       input.Rating,
		Review:       strings.TrimSpace(input.Review),
		AuthorUserID: input.AuthorUserID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.reviews.Create(ctx, review)
	if err != nil {
		return nil, err
	}

	if err := s.products.PushReviewID(ctx, product.ID, created.ID); err != nil {
		// Keep the store consistent: a review unreachable from its product
		// would be orphaned.
		_ = s.reviews.Delete(ctx, created.ID)
		return nil, err
	}

	s.logger.Info().Str("review_id", created.ID).Str("product_id", product.ID).Msg("review created")
	return created, nil
}

func (s *ReviewService) Update(ctx context.Context, input ports.UpdateReviewInput) (*domain.Review, error) {
	if err := validateReviewInput(input.Rating, input.Review); err != nil {
		return nil, err
	}

	review, err := s.findInProduct(ctx, input.ProductID, input.ReviewID)
	if err != nil {
		return nil, err
	}
	if err := s.authz.CanMutateReview(review, input.AuthorUserID); err != nil {
		return nil, err
	}

	review.Rating = input.Rating
	review.Review = strings.TrimSpace(input.Review)
	review.UpdatedAt = time.Now().UTC()

	if err := s.reviews.Update(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *ReviewService) Delete(ctx context.Context, productID, reviewID, userID string) error {
	review, err := s.findInProduct(ctx, productID, reviewID)
	if err != nil {
		return err
	}
	if err := s.authz.CanMutateReview(review, userID); err != nil {
		return err
	}

	if err := s.reviews.Delete(ctx, reviewID); err != nil {
		return err
	}
	return s.products.PullReviewID(ctx, productID, reviewID)
}

// findInProduct loads a review only if the product's review list contains it;
// reviews are addressed through their owning product.
func (s *ReviewService) findInProduct(ctx context.Context, productID, reviewID string) (*domain.Review, error) {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	found := false
	for _, id := range product.ReviewIDs {
		if id == reviewID {
			found = true
			break
		}
	}
	if !found {
		return nil, domain.ErrReviewNotFound
	}

	return s.reviews.FindByID(ctx, reviewID)
}
