package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/snapcart/marketplace/internal/core/domain"
	"github.com/snapcart/marketplace/internal/core/ports"
)

// TokenIssuer creates and verifies HS256 bearer tokens with a fixed TTL.
// The signing secret is process-wide configuration, immutable after startup.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs a token carrying the user id as subject plus the role claim.
func (t *TokenIssuer) Issue(userID, role string) (string, error) {
	now := t.now().UTC()
	claims := jwt.MapClaims{
		"sub":  userID,
		"role": role,
		"iat":  now.Unix(),
		"exp":  now.Add(t.ttl).Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(t.secret)
}

// Verify parses and validates a token. Every failure mode (malformed input,
// signature mismatch, expiry) collapses to domain.ErrUnauthorized so callers
// cannot tell them apart.
func (t *TokenIssuer) Verify(token string) (ports.Claims, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(tok *jwt.Token) (interface{}, error) {
		if tok.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return t.secret, nil
	}, jwt.WithTimeFunc(t.now))
	if err != nil || !parsed.Valid {
		return ports.Claims{}, domain.ErrUnauthorized
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return ports.Claims{}, domain.ErrUnauthorized
	}
	role, _ := claims["role"].(string)

	return ports.Claims{UserID: sub, Role: role}, nil
}
