package service

import (
	"context"
	"testing"

	"github.com/snapcart/marketplace/internal/core/domain"
)

func TestAuthorizer_RequireSeller(t *testing.T) {
	sellers := newStubSellerRepo()
	authz := NewAuthorizer(sellers)

	created, err := sellers.Create(context.Background(), &domain.Seller{OwnerUserID: "u1", StoreName: "Shop", Email: "shop@x.com"})
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	seller, err := authz.RequireSeller(context.Background(), "u1")
	if err != nil {
		t.Fatalf("expected seller, got %v", err)
	}
	if seller.ID != created.ID {
		t.Fatalf("resolved wrong seller: %s", seller.ID)
	}

	if _, err := authz.RequireSeller(context.Background(), "u2"); err != domain.ErrSellerProfileRequired {
		t.Fatalf("expected ErrSellerProfileRequired, got %v", err)
	}
}

func TestAuthorizer_CanMutateProduct(t *testing.T) {
	authz := NewAuthorizer(newStubSellerRepo())

	seller := &domain.Seller{ID: "s1"}
	owned := &domain.Product{ID: "p1", SellerID: "s1"}
	foreign := &domain.Product{ID: "p2", SellerID: "s2"}

	if err := authz.CanMutateProduct(seller, owned); err != nil {
		t.Fatalf("owner mutation should pass: %v", err)
	}
	if err := authz.CanMutateProduct(seller, foreign); err != domain.ErrUnauthorized {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestAuthorizer_CanReviewProduct(t *testing.T) {
	sellers := newStubSellerRepo()
	authz := NewAuthorizer(sellers)

	created, err := sellers.Create(context.Background(), &domain.Seller{OwnerUserID: "u1", StoreName: "Shop", Email: "shop@x.com"})
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	product := &domain.Product{ID: "p1", SellerID: created.ID}

	if err := authz.CanReviewProduct(context.Background(), "u1", product); err != domain.ErrSelfReview {
		t.Fatalf("expected ErrSelfReview for the owner, got %v", err)
	}
	if err := authz.CanReviewProduct(context.Background(), "u2", product); err != nil {
		t.Fatalf("non-owner review should pass: %v", err)
	}
}

func TestAuthorizer_CanMutateReview(t *testing.T) {
	authz := NewAuthorizer(newStubSellerRepo())

	review := &domain.Review{ID: "r1", AuthorUserID: "u1"}
	if err := authz.CanMutateReview(review, "u1"); err != nil {
		t.Fatalf("author mutation should pass: %v", err)
	}
	if err := authz.CanMutateReview(review, "u2"); err != domain.ErrUnauthorized {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestAuthorizer_IsPlatformAdmin(t *testing.T) {
	authz := NewAuthorizer(newStubSellerRepo())

	if !authz.IsPlatformAdmin(domain.RolePlatformAdmin) {
		t.Fatalf("platform_admin role should pass the admin gate")
	}
	if authz.IsPlatformAdmin(domain.RoleSeller) || authz.IsPlatformAdmin(domain.RoleBuyer) {
		t.Fatalf("non-admin roles must not pass the admin gate")
	}
}
