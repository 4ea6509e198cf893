package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// stateTTL matches the lifetime of the state cookie issued with the provider
// redirect.
const stateTTL = 5 * time.Minute

// OAuthStateStore persists state nonces for the OAuth login flow.
// Key format: oauth_state:<nonce>
type OAuthStateStore struct {
	client *redis.Client
}

func NewOAuthStateStore(client *redis.Client) *OAuthStateStore {
	return &OAuthStateStore{client: client}
}

// Save records a freshly issued state nonce (expires after stateTTL).
func (s *OAuthStateStore) Save(ctx context.Context, state string) error {
	return s.client.Set(ctx, s.key(state), "1", stateTTL).Err()
}

// Consume validates and removes a state nonce in one step, so a state value
// can authorize at most one callback.
func (s *OAuthStateStore) Consume(ctx context.Context, state string) (bool, error) {
	n, err := s.client.Del(ctx, s.key(state)).Result()
	if err != nil {
		return false, fmt.Errorf("consume oauth state: %w", err)
	}
	return n > 0, nil
}

func (s *OAuthStateStore) key(state string) string {
	return "oauth_state:" + state
}
