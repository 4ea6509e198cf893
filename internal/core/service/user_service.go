package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/snapcart/marketplace/internal/core/domain"
	"github.com/snapcart/marketplace/internal/core/ports"
)

// UserService implements account self-service.
type UserService struct {
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{users: users, logger: logger}
}

func (s *UserService) Profile(ctx context.Context, userID string) (*domain.User, error) {
	return s.users.FindByID(ctx, userID)
}

func (s *UserService) UpdateProfile(ctx context.Context, input ports.UpdateProfileInput) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if username := strings.TrimSpace(input.Username); username != "" {
		user.Username = username
	}
	if input.AvatarURL != "" {
		user.AvatarURL = input.AvatarURL
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteAccount removes the user record only. Seller profiles and products
// are not cascaded here; the seller lifecycle owns that cascade.
func (s *UserService) DeleteAccount(ctx context.Context, userID string) error {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return err
	}
	if err := s.users.Delete(ctx, userID); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", userID).Msg("account deleted")
	return nil
}

// AdminService implements platform-admin moderation operations. The RBAC
// middleware guarantees the caller's role before these run.
type AdminService struct {
	users    ports.UserRepository
	products ports.ProductRepository
	reviews  ports.ReviewRepository
	tx       ports.TxRunner
	logger   zerolog.Logger
}

func NewAdminService(
	users ports.UserRepository,
	products ports.ProductRepository,
	reviews ports.ReviewRepository,
	tx ports.TxRunner,
	logger zerolog.Logger,
) *AdminService {
	return &AdminService{users: users, products: products, reviews: reviews, tx: tx, logger: logger}
}

func (s *AdminService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

// DeleteProduct removes any product regardless of ownership, cascading its
// reviews like an owner delete.
func (s *AdminService) DeleteProduct(ctx context.Context, productID string) error {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return err
	}

	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if len(product.ReviewIDs) > 0 {
			if txErr := s.reviews.DeleteByIDs(ctx, product.ReviewIDs); txErr != nil {
				return txErr
			}
		}
		return s.products.Delete(ctx, product.ID)
	})
	if err != nil {
		return err
	}

	s.logger.Info().Str("product_id", productID).Msg("product removed by admin")
	return nil
}

func (s *AdminService) DeleteReview(ctx context.Context, productID, reviewID string) error {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return err
	}

	found := false
	for _, id := range product.ReviewIDs {
		if id == reviewID {
			found = true
			break
		}
	}
	if !found {
		return domain.ErrReviewNotFound
	}

	if err := s.reviews.Delete(ctx, reviewID); err != nil {
		return err
	}
	if err := s.products.PullReviewID(ctx, productID, reviewID); err != nil {
		return err
	}

	s.logger.Info().Str("review_id", reviewID).Str("product_id", productID).Msg("review removed by admin")
	return nil
}
