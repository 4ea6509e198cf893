package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/snapcart/marketplace/internal/core/domain"
	"github.com/snapcart/marketplace/internal/core/ports"
)

// SellerService manages seller profiles and the role side effects on the
// owning user. Create and Delete run their writes inside one transaction;
// unique indexes on owner_user_id and email backstop the check-then-create.
type SellerService struct {
	sellers  ports.SellerRepository
	products ports.ProductRepository
	reviews  ports.ReviewRepository
	users    ports.UserRepository
	tx       ports.TxRunner
	logger   zerolog.Logger
}

func NewSellerService(
	sellers ports.SellerRepository,
	products ports.ProductRepository,
	reviews ports.ReviewRepository,
	users ports.UserRepository,
	tx ports.TxRunner,
	logger zerolog.Logger,
) *SellerService {
	return &SellerService{
		sellers:  sellers,
		products: products,
		reviews:  reviews,
		users:    users,
		tx:       tx,
		logger:   logger,
	}
}

func (s *SellerService) Create(ctx context.Context, input ports.CreateSellerInput) (*domain.Seller, error) {
	storeName := strings.TrimSpace(input.StoreName)
	email := strings.TrimSpace(strings.ToLower(input.Email))
	if storeName == "" || email == "" {
		return nil, domain.ErrInvalidInput
	}

	// Fast-path duplicate checks; the unique indexes are authoritative.
	if _, err := s.sellers.FindByOwnerUserID(ctx, input.OwnerUserID); err == nil {
		return nil, domain.ErrSellerExists
	} else if !errors.Is(err, domain.ErrSellerNotFound) {
		return nil, err
	}
	if _, err := s.sellers.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrSellerExists
	} else if !errors.Is(err, domain.ErrSellerNotFound) {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, input.OwnerUserID)
	if err != nil {
		return nil, err
	}

	seller := &domain.Seller{
		OwnerUserID: input.OwnerUserID,
		StoreName:   storeName,
		Email:       email,
		Phone:       input.Phone,
		Description: input.Description,
		CreatedAt:   time.Now().UTC(),
	}

	var created *domain.Seller
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var txErr error
		created, txErr = s.sellers.Create(ctx, seller)
		if txErr != nil {
			return txErr
		}

		user.SetRole(domain.RoleSeller)
		user.SellerID = created.ID
		user.UpdatedAt = time.Now().UTC()
		return s.users.Update(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("seller_id", created.ID).Str("user_id", user.ID).Msg("seller profile created")
	return created, nil
}

func (s *SellerService) Get(ctx context.Context, sellerID string) (*domain.Seller, error) {
	return s.sellers.FindByID(ctx, sellerID)
}

// Login matches a seller profile by email and owner: both must agree, so a
// seller email never grants access across platform users.
func (s *SellerService) Login(ctx context.Context, email, userID string) (*domain.Seller, error) {
	seller, err := s.sellers.FindByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		return nil, err
	}
	if seller.OwnerUserID != userID {
		return nil, domain.ErrUnauthorized
	}
	return seller, nil
}

// Delete cascades: the caller's seller, all its products, their reviews, and
// the role demotion are removed or applied in one transaction. The product-id
// collection happens inside the transaction so a concurrent creation cannot
// escape the cascade.
func (s *SellerService) Delete(ctx context.Context, userID string) (int, error) {
	seller, err := s.sellers.FindByOwnerUserID(ctx, userID)
	if err != nil {
		return 0, err
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return 0, err
	}

	deleted := 0
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		products, txErr := s.products.ListBySellerID(ctx, seller.ID)
		if txErr != nil {
			return txErr
		}

		for _, p := range products {
			if len(p.ReviewIDs) > 0 {
				if txErr := s.reviews.DeleteByIDs(ctx, p.ReviewIDs); txErr != nil {
					return txErr
				}
			}
			if txErr := s.products.Delete(ctx, p.ID); txErr != nil {
				return txErr
			}
		}
		deleted = len(products)

		if txErr := s.sellers.Delete(ctx, seller.ID); txErr != nil {
			return txErr
		}

		user.SetRole(domain.RoleBuyer)
		user.SellerID = ""
		user.UpdatedAt = time.Now().UTC()
		return s.users.Update(ctx, user)
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info().
		Str("seller_id", seller.ID).
		Str("user_id", userID).
		Int("products_deleted", deleted).
		Msg("seller profile deleted")
	return deleted, nil
}
