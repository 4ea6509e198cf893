package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/snapcart/marketplace/internal/core/domain"
	"github.com/snapcart/marketplace/internal/core/ports"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// ProductService implements the catalog use cases. Reads are public;
// mutations go through the Authorizer's seller-profile and ownership gates.
type ProductService struct {
	products ports.ProductRepository
	sellers  ports.SellerRepository
	reviews  ports.ReviewRepository
	users    ports.UserRepository
	authz    *Authorizer
	tx       ports.TxRunner
	logger   zerolog.Logger
}

func NewProductService(
	products ports.ProductRepository,
	sellers ports.SellerRepository,
	reviews ports.ReviewRepository,
	users ports.UserRepository,
	authz *Authorizer,
	tx ports.TxRunner,
	logger zerolog.Logger,
) *ProductService {
	return &ProductService{
		products: products,
		sellers:  sellers,
		reviews:  reviews,
		users:    users,
		authz:    authz,
		tx:       tx,
		logger:   logger,
	}
}

func (s *ProductService) Create(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" || input.Price <= 0 {
		return nil, domain.ErrInvalidInput
	}

	seller, err := s.authz.RequireSeller(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	product := &domain.Product{
		Title:       title,
		Price:       input.Price,
		Image:       input.Image,
		Description: input.Description,
		SellerID:    seller.ID,
		ReviewIDs:   []string{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.products.Create(ctx, product)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("product_id", created.ID).Str("seller_id", seller.ID).Msg("product created")
	return created, nil
}

func (s *ProductService) Get(ctx context.Context, productID string) (*ports.ProductView, error) {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	return s.buildView(ctx, product, true)
}

func (s *ProductService) List(ctx context.Context, page, limit int) (*ports.ProductPage, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	products, total, err := s.products.List(ctx, page, limit)
	if err != nil {
		return nil, err
	}

	views := make([]ports.ProductView, 0, len(products))
	for i := range products {
		view, err := s.buildView(ctx, &products[i], false)
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}

	return &ports.ProductPage{Products: views, Total: total, Page: page, Limit: limit}, nil
}

func (s *ProductService) ListBySeller(ctx context.Context, sellerID string) ([]ports.ProductView, error) {
	if _, err := s.sellers.FindByID(ctx, sellerID); err != nil {
		return nil, err
	}

	products, err := s.products.ListBySellerID(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	views := make([]ports.ProductView, 0, len(products))
	for i := range products {
		view, err := s.buildView(ctx, &products[i], false)
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}
	return views, nil
}

func (s *ProductService) MyProducts(ctx context.Context, userID string) ([]domain.Product, error) {
	seller, err := s.authz.RequireSeller(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.products.ListBySellerID(ctx, seller.ID)
}

func (s *ProductService) Update(ctx context.Context, input ports.UpdateProductInput) (*domain.Product, error) {
	seller, err := s.authz.RequireSeller(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	product, err := s.products.FindByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if err := s.authz.CanMutateProduct(seller, product); err != nil {
		return nil, err
	}

	if title := strings.TrimSpace(input.Title); title != "" {
		product.Title = title
	}
	if input.Price != 0 {
		if input.Price < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.Price = input.Price
	}
	if input.Image != "" {
		product.Image = input.Image
	}
	if input.Description != "" {
		product.Description = input.Description
	}
	product.UpdatedAt = time.Now().UTC()

	if err := s.products.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete removes the product and its review documents in one transaction.
func (s *ProductService) Delete(ctx context.Context, userID, productID string) error {
	seller, err := s.authz.RequireSeller(ctx, userID)
	if err != nil {
		return err
	}

	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return err
	}
	if err := s.authz.CanMutateProduct(seller, product); err != nil {
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

	s.logger.Info().Str("product_id", productID).Str("seller_id", seller.ID).Msg("product deleted")
	return nil
}

// buildView joins a product with its seller summary and, when withReviews is
// set, the full review documents in the product's stored order.
func (s *ProductService) buildView(ctx context.Context, product *domain.Product, withReviews bool) (*ports.ProductView, error) {
	view := &ports.ProductView{Product: *product}

	seller, err := s.sellers.FindByID(ctx, product.SellerID)
	if err == nil {
		view.Seller = ports.SellerSummary{ID: seller.ID, StoreName: seller.StoreName}
		if owner, err := s.users.FindByID(ctx, seller.OwnerUserID); err == nil {
			view.Seller.OwnerUsername = owner.Username
		}
	}

	if withReviews && len(product.ReviewIDs) > 0 {
		reviews, err := s.reviews.FindByIDs(ctx, product.ReviewIDs)
		if err != nil {
			return nil, err
		}
		view.Reviews = reviews
	}

	return view, nil
}
