package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/snapcart/marketplace/internal/core/domain"
	"github.com/snapcart/marketplace/internal/core/ports"
)

// OAuthService resolves an external-provider profile to a local user with a
// three-tier lookup: provider id, then email merge, then account creation.
// After the first successful linkage the provider-id lookup short-circuits,
// making resolution idempotent per provider id.
type OAuthService struct {
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewOAuthService(users ports.UserRepository, logger zerolog.Logger) *OAuthService {
	return &OAuthService{users: users, logger: logger}
}

func (s *OAuthService) Resolve(ctx context.Context, profile ports.OAuthProfile) (*domain.User, error) {
	if profile.ProviderID == "" {
		return nil, domain.ErrInvalidInput
	}

	// Tier 1: already linked.
	user, err := s.users.FindByOAuthProviderID(ctx, profile.ProviderID)
	if err == nil {
		if profile.DisplayName != "" && user.Username != profile.DisplayName {
			user.Username = profile.DisplayName
			user.UpdatedAt = time.Now().UTC()
			if err := s.users.Update(ctx, user); err != nil {
				return nil, err
			}
		}
		return user, nil
	}
	if err != domain.ErrUserNotFound {
		return nil, err
	}

	// Tier 2: merge a pre-existing local account by email.
	if profile.Email != "" {
		user, err := s.users.FindByEmail(ctx, strings.ToLower(profile.Email))
		if err == nil {
			user.OAuthProviderID = profile.ProviderID
			if profile.DisplayName != "" {
				user.Username = profile.DisplayName
			}
			if profile.AvatarURL != "" {
				user.AvatarURL = profile.AvatarURL
			}
			user.UpdatedAt = time.Now().UTC()
			if err := s.users.Update(ctx, user); err != nil {
				return nil, err
			}
			s.logger.Info().Str("user_id", user.ID).Msg("linked oauth provider to existing account")
			return user, nil
		}
		if err != domain.ErrUserNotFound {
			return nil, err
		}
	}

	// Tier 3: first login, create the account.
	username := synthesizeUsername(profile.DisplayName)
	email := strings.ToLower(profile.Email)
	if email == "" {
		email = username + "@placeholder.com"
	}

	// Placeholder credential: a random password hashed like any other so the
	// record is structurally uniform. Local login refuses OAuth accounts, so
	// this hash can never authenticate.
	hash, err := bcrypt.GenerateFromPassword([]byte(randomSecret()), bcryptCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created := &domain.User{
		Username:        username,
		Email:           email,
		PasswordHash:    string(hash),
		OAuthProviderID: profile.ProviderID,
		AvatarURL:       profile.AvatarURL,
		IsOAuthAccount:  true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	created.SetRole(domain.RoleBuyer)

	persisted, err := s.users.Create(ctx, created)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", persisted.ID).Msg("created account from oauth profile")
	return persisted, nil
}

// synthesizeUsername derives a username from the provider display name,
// appending a random 0-999 suffix to dodge collisions.
func synthesizeUsername(displayName string) string {
	base := strings.ToLower(strings.Join(strings.Fields(displayName), ""))
	if base == "" {
		base = "user" + randomSecret()[:6]
	}
	n, err := rand.Int(rand.Reader, big.NewInt(1000))
	if err != nil {
		return base
	}
	return fmt.Sprintf("%s%d", base, n.Int64())
}

func randomSecret() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(b)
}
