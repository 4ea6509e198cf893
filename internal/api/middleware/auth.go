package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/snapcart/marketplace/internal/core/domain"
	"github.com/snapcart/marketplace/internal/core/ports"
)

// Auth verifies the bearer token and injects the resolved identity into the
// request context. Every failure (missing header, malformed value, bad token)
// surfaces as the same authorization error so clients cannot distinguish the
// reason.
func Auth(tokens ports.TokenIssuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := extractBearer(c.Request().Header.Get("Authorization"))
			if raw == "" {
				return domain.ErrUnauthorized
			}

			claims, err := tokens.Verify(raw)
			if err != nil {
				return domain.ErrUnauthorized
			}

			c.Set("user_id", claims.UserID)
			c.Set("role", claims.Role)

			return next(c)
		}
	}
}

// extractBearer strips the "Bearer " prefix case-insensitively. A header
// carrying only the raw token is tolerated.
func extractBearer(header string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return strings.TrimSpace(parts[1])
	}
	if len(parts) == 1 {
		return parts[0]
	}
	return ""
}
