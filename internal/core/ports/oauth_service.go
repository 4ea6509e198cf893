package ports

import (
	"context"

	"github.com/snapcart/marketplace/internal/core/domain"
)

// OAuthProfile is the normalized external-provider profile handed to the
// resolver after the provider callback.
type OAuthProfile struct {
	ProviderID  string
	Email       string
	DisplayName string
	AvatarURL   string
}

// OAuthResolver finds, links, or creates the local user for an external
// profile. Resolution is idempotent per provider id once linked.
type OAuthResolver interface {
	Resolve(ctx context.Context, profile OAuthProfile) (*domain.User, error)
}

// OAuthStateStore persists the short-lived state nonce issued with the
// provider redirect. Consume is one-shot: a state value validates at most once.
type OAuthStateStore interface {
	Save(ctx context.Context, state string) error
	Consume(ctx context.Context, state string) (bool, error)
}
