package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/snapcart/marketplace/internal/core/domain"
	"github.com/snapcart/marketplace/internal/core/ports"
)

type sellerFixture struct {
	users    *stubUserRepo
	sellers  *stubSellerRepo
	products *stubProductRepo
	reviews  *stubReviewRepo
	svc      *SellerService
}

func newSellerFixture(t *testing.T) *sellerFixture {
	t.Helper()
	f := &sellerFixture{
		users:    newStubUserRepo(),
		sellers:  newStubSellerRepo(),
		products: newStubProductRepo(),
		reviews:  newStubReviewRepo(),
	}
	f.svc = NewSellerService(f.sellers, f.products, f.reviews, f.users, stubTx{}, zerolog.Nop())
	return f
}

func (f *sellerFixture) seedUser(t *testing.T, username, email string) *domain.User {
	t.Helper()
	user := &domain.User{Username: username, Email: email, PasswordHash: "x"}
	user.SetRole(domain.RoleBuyer)
	created, err := f.users.Create(context.Background(), user)
	if err != nil {
		t.Fatalf("seed user failed: %v", err)
	}
	return created
}

func TestSellerService_Create_PromotesUser(t *testing.T) {
	f := newSellerFixture(t)
	user := f.seedUser(t, "alice", "alice@x.com")

	seller, err := f.svc.Create(context.Background(), ports.CreateSellerInput{
		OwnerUserID: user.ID,
		StoreName:   "AliceShop",
		Email:       "aliceshop@x.com",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if seller.OwnerUserID != user.ID {
		t.Fatalf("owner not set: %+v", seller)
	}

	updated, err := f.users.FindByID(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("find user failed: %v", err)
	}
	if updated.Role != domain.RoleSeller {
		t.Fatalf("expected role seller, got %s", updated.Role)
	}
	if updated.IsPlatformAdmin {
		t.Fatalf("seller must not be platform admin")
	}
	if updated.SellerID != seller.ID {
		t.Fatalf("seller ref not stored on user: %+v", updated)
	}
}

func TestSellerService_Create_RejectsSecondProfile(t *testing.T) {
	f := newSellerFixture(t)
	user := f.seedUser(t, "bob", "bob@x.com")

	if _, err := f.svc.Create(context.Background(), ports.CreateSellerInput{
		OwnerUserID: user.ID, StoreName: "BobShop", Email: "bobshop@x.com",
	}); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	if _, err := f.svc.Create(context.Background(), ports.CreateSellerInput{
		OwnerUserID: user.ID, StoreName: "BobShop2", Email: "bobshop2@x.com",
	}); err != domain.ErrSellerExists {
		t.Fatalf("expected ErrSellerExists, got %v", err)
	}
}

func TestSellerService_Create_RejectsDuplicateEmail(t *testing.T) {
	f := newSellerFixture(t)
	first := f.seedUser(t, "carol", "carol@x.com")
	second := f.seedUser(t, "dave", "dave@x.com")

	if _, err := f.svc.Create(context.Background(), ports.CreateSellerInput{
		OwnerUserID: first.ID, StoreName: "Shop", Email: "shop@x.com",
	}); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	if _, err := f.svc.Create(context.Background(), ports.CreateSellerInput{
		OwnerUserID: second.ID, StoreName: "Other", Email: "shop@x.com",
	}); err != domain.ErrSellerExists {
		t.Fatalf("expected ErrSellerExists for duplicate email, got %v", err)
	}
}

func TestSellerService_Login_StrictMatch(t *testing.T) {
	f := newSellerFixture(t)
	owner := f.seedUser(t, "erin", "erin@x.com")
	other := f.seedUser(t, "frank", "frank@x.com")

	created, err := f.svc.Create(context.Background(), ports.CreateSellerInput{
		OwnerUserID: owner.ID, StoreName: "ErinShop", Email: "erinshop@x.com",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	seller, err := f.svc.Login(context.Background(), "erinshop@x.com", owner.ID)
	if err != nil {
		t.Fatalf("owner login failed: %v", err)
	}
	if seller.ID != created.ID {
		t.Fatalf("wrong seller resolved: %s", seller.ID)
	}

	// Same email, different platform user: refused.
	if _, err := f.svc.Login(context.Background(), "erinshop@x.com", other.ID); err != domain.ErrUnauthorized {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestSellerService_Delete_Cascades(t *testing.T) {
	f := newSellerFixture(t)
	user := f.seedUser(t, "gail", "gail@x.com")

	seller, err := f.svc.Create(context.Background(), ports.CreateSellerInput{
		OwnerUserID: user.ID, StoreName: "GailShop", Email: "gailshop@x.com",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	now := time.Now().UTC()
	for i := 0; i < 3; i++ {
		product, err := f.products.Create(context.Background(), &domain.Product{
			Title: "Mug", Price: 9.99, SellerID: seller.ID, ReviewIDs: []string{}, CreatedAt: now, UpdatedAt: now,
		})
		if err != nil {
			t.Fatalf("seed product failed: %v", err)
		}
		review, err := f.reviews.Create(context.Background(), &domain.Review{Rating: 4, Review: "ok", AuthorUserID: "u99"})
		if err != nil {
			t.Fatalf("seed review failed: %v", err)
		}
		if err := f.products.PushReviewID(context.Background(), product.ID, review.ID); err != nil {
			t.Fatalf("push review failed: %v", err)
		}
	}

	count, err := f.svc.Delete(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected 3 deleted products, got %d", count)
	}

	if len(f.products.products) != 0 {
		t.Fatalf("products not cascaded: %d left", len(f.products.products))
	}
	if len(f.reviews.reviews) != 0 {
		t.Fatalf("reviews not cascaded: %d left", len(f.reviews.reviews))
	}
	if _, err := f.sellers.FindByOwnerUserID(context.Background(), user.ID); err != domain.ErrSellerNotFound {
		t.Fatalf("seller should be gone, got %v", err)
	}

	demoted, err := f.users.FindByID(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("find user failed: %v", err)
	}
	if demoted.Role != domain.RoleBuyer {
		t.Fatalf("expected role buyer after delete, got %s", demoted.Role)
	}
	if demoted.SellerID != "" {
		t.Fatalf("seller ref should be cleared, got %s", demoted.SellerID)
	}
}

func TestSellerService_Delete_NoProfile(t *testing.T) {
	f := newSellerFixture(t)
	user := f.seedUser(t, "henry", "henry@x.com")

	if _, err := f.svc.Delete(context.Background(), user.ID); err != domain.ErrSellerNotFound {
		t.Fatalf("expected ErrSellerNotFound, got %v", err)
	}
}
