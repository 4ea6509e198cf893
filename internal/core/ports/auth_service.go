package ports

import (
	"context"

	"github.com/snapcart/marketplace/internal/core/domain"
)

// RegisterInput carries the fields needed to create a local account.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// AuthService implements local credential registration and login.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login verifies local credentials and returns a bearer token with the
	// authenticated user. OAuth-only accounts are refused even if the
	// supplied password matches the stored placeholder hash.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
