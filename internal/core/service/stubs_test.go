package service

import (
	"context"
	"fmt"

	"github.com/snapcart/marketplace/internal/core/domain"
)

// In-memory repositories shared by the service tests.

type stubUserRepo struct {
	users  map[string]*domain.User
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == user.Username || u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
		if user.OAuthProviderID != "" && u.OAuthProviderID == user.OAuthProviderID {
			return nil, domain.ErrUserExists
		}
	}
	r.nextID++
	created := cloneUser(user)
	created.ID = fmt.Sprintf("u%d", r.nextID)
	r.users[created.ID] = cloneUser(created)
	return created, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByOAuthProviderID(_ context.Context, providerID string) (*domain.User, error) {
	for _, u := range r.users {
		if u.OAuthProviderID != "" && u.OAuthProviderID == providerID {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	r.users[user.ID] = cloneUser(user)
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *stubUserRepo) List(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *cloneUser(u))
	}
	return out, nil
}

type stubSellerRepo struct {
	sellers map[string]*domain.Seller
	nextID  int
}

func newStubSellerRepo() *stubSellerRepo {
	return &stubSellerRepo{sellers: make(map[string]*domain.Seller)}
}

func (r *stubSellerRepo) Create(_ context.Context, seller *domain.Seller) (*domain.Seller, error) {
	for _, s := range r.sellers {
		if s.OwnerUserID == seller.OwnerUserID || s.Email == seller.Email {
			return nil, domain.ErrSellerExists
		}
	}
	r.nextID++
	clone := *seller
	clone.ID = fmt.Sprintf("s%d", r.nextID)
	stored := clone
	r.sellers[clone.ID] = &stored
	return &clone, nil
}

func (r *stubSellerRepo) FindByID(_ context.Context, id string) (*domain.Seller, error) {
	if s, ok := r.sellers[id]; ok {
		clone := *s
		return &clone, nil
	}
	return nil, domain.ErrSellerNotFound
}

func (r *stubSellerRepo) FindByOwnerUserID(_ context.Context, userID string) (*domain.Seller, error) {
	for _, s := range r.sellers {
		if s.OwnerUserID == userID {
			clone := *s
			return &clone, nil
		}
	}
	return nil, domain.ErrSellerNotFound
}

func (r *stubSellerRepo) FindByEmail(_ context.Context, email string) (*domain.Seller, error) {
	for _, s := range r.sellers {
		if s.Email == email {
			clone := *s
			return &clone, nil
		}
	}
	return nil, domain.ErrSellerNotFound
}

func (r *stubSellerRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.sellers[id]; !ok {
		return domain.ErrSellerNotFound
	}
	delete(r.sellers, id)
	return nil
}

type stubProductRepo struct {
	products map[string]*domain.Product
	nextID   int
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[string]*domain.Product)}
}

func cloneProduct(p *domain.Product) *domain.Product {
	clone := *p
	clone.ReviewIDs = append([]string{}, p.ReviewIDs...)
	return &clone
}

func (r *stubProductRepo) Create(_ context.Context, product *domain.Product) (*domain.Product, error) {
	r.nextID++
	created := cloneProduct(product)
	created.ID = fmt.Sprintf("p%d", r.nextID)
	r.products[created.ID] = cloneProduct(created)
	return created, nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id string) (*domain.Product, error) {
	if p, ok := r.products[id]; ok {
		return cloneProduct(p), nil
	}
	return nil, domain.ErrProductNotFound
}

func (r *stubProductRepo) List(_ context.Context, page, limit int) ([]domain.Product, int64, error) {
	out := make([]domain.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, *cloneProduct(p))
	}
	return out, int64(len(out)), nil
}

func (r *stubProductRepo) ListBySellerID(_ context.Context, sellerID string) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range r.products {
		if p.SellerID == sellerID {
			out = append(out, *cloneProduct(p))
		}
	}
	return out, nil
}

func (r *stubProductRepo) Update(_ context.Context, product *domain.Product) error {
	if _, ok := r.products[product.ID]; !ok {
		return domain.ErrProductNotFound
	}
	r.products[product.ID] = cloneProduct(product)
	return nil
}

func (r *stubProductRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.products[id]; !ok {
		return domain.ErrProductNotFound
	}
	delete(r.products, id)
	return nil
}

func (r *stubProductRepo) PushReviewID(_ context.Context, productID, reviewID string) error {
	p, ok := r.products[productID]
	if !ok {
		return domain.ErrProductNotFound
	}
	p.ReviewIDs = append(p.ReviewIDs, reviewID)
	return nil
}

func (r *stubProductRepo) PullReviewID(_ context.Context, productID, reviewID string) error {
	p, ok := r.products[productID]
	if !ok {
		return domain.ErrProductNotFound
	}
	kept := p.ReviewIDs[:0]
	for _, id := range p.ReviewIDs {
		if id != reviewID {
			kept = append(kept, id)
		}
	}
	p.ReviewIDs = kept
	return nil
}

type stubReviewRepo struct {
	reviews map[string]*domain.Review
	nextID  int
}

func newStubReviewRepo() *stubReviewRepo {
	return &stubReviewRepo{reviews: make(map[string]*domain.Review)}
}

func (r *stubReviewRepo) Create(_ context.Context, review *domain.Review) (*domain.Review, error) {
	r.nextID++
	clone := *review
	clone.ID = fmt.Sprintf("r%d", r.nextID)
	stored := clone
	r.reviews[clone.ID] = &stored
	return &clone, nil
}

func (r *stubReviewRepo) FindByID(_ context.Context, id string) (*domain.Review, error) {
	if rv, ok := r.reviews[id]; ok {
		clone := *rv
		return &clone, nil
	}
	return nil, domain.ErrReviewNotFound
}

func (r *stubReviewRepo) FindByIDs(_ context.Context, ids []string) ([]domain.Review, error) {
	var out []domain.Review
	for _, id := range ids {
		if rv, ok := r.reviews[id]; ok {
			out = append(out, *rv)
		}
	}
	return out, nil
}

func (r *stubReviewRepo) Update(_ context.Context, review *domain.Review) error {
	if _, ok := r.reviews[review.ID]; !ok {
		return domain.ErrReviewNotFound
	}
	clone := *review
	r.reviews[review.ID] = &clone
	return nil
}

func (r *stubReviewRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.reviews[id]; !ok {
		return domain.ErrReviewNotFound
	}
	delete(r.reviews, id)
	return nil
}

func (r *stubReviewRepo) DeleteByIDs(_ context.Context, ids []string) error {
	for _, id := range ids {
		delete(r.reviews, id)
	}
	return nil
}

// stubTx runs the callback directly; the in-memory stores have no
// transaction semantics.
type stubTx struct{}

func (stubTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
