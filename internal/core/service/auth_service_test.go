package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/snapcart/marketplace/internal/core/domain"
	"github.com/snapcart/marketplace/internal/core/ports"
)

func newAuthService(repo *stubUserRepo) *AuthService {
	tokens := NewTokenIssuer("secret", time.Hour)
	return NewAuthService(repo, tokens, zerolog.Nop())
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	user, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "alice",
		Email:    "alice@x.com",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.PasswordHash == "password123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.Role != domain.RoleBuyer {
		t.Fatalf("new accounts must start as buyer, got %s", user.Role)
	}
	if user.IsPlatformAdmin {
		t.Fatalf("buyer must not be platform admin")
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	cases := []ports.RegisterInput{
		{Username: "", Email: "a@x.com", Password: "pass"},
		{Username: "a", Email: "", Password: "pass"},
		{Username: "a", Email: "a@x.com", Password: ""},
	}
	for _, input := range cases {
		if _, err := svc.Register(context.Background(), input); err != domain.ErrInvalidInput {
			t.Fatalf("expected ErrInvalidInput for %+v, got %v", input, err)
		}
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	input := ports.RegisterInput{Username: "bob", Email: "bob@x.com", Password: "password123"}
	if _, err := svc.Register(context.Background(), input); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), input); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	if _, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "carol", Email: "carol@x.com", Password: "s3cretpass",
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "carol@x.com", "s3cretpass")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user.Username != "carol" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	_, _ = svc.Register(context.Background(), ports.RegisterInput{
		Username: "dave", Email: "dave@x.com", Password: "goodpass1",
	})
	if _, _, err := svc.Login(context.Background(), "dave@x.com", "badpass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UserNotFound(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	if _, _, err := svc.Login(context.Background(), "ghost@x.com", "pass"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

// The placeholder hash on an OAuth account must never authenticate, even with
// the correct plaintext.
func TestAuthService_Login_RefusesOAuthAccount(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	hash, err := bcrypt.GenerateFromPassword([]byte("knownsecret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	oauthUser := &domain.User{
		Username:        "erin",
		Email:           "erin@x.com",
		PasswordHash:    string(hash),
		OAuthProviderID: "google-123",
		IsOAuthAccount:  true,
	}
	oauthUser.SetRole(domain.RoleBuyer)
	if _, err := repo.Create(context.Background(), oauthUser); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	if _, _, err := svc.Login(context.Background(), "erin@x.com", "knownsecret"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for oauth account, got %v", err)
	}
}
