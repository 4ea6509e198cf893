package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/snapcart/marketplace/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Auth middleware. An empty
// user id means the middleware did not run for this route; treat the request
// as unauthorized rather than trusting it.
func ctxIdentity(c echo.Context) (userID, role string, err error) {
	userID, _ = c.Get("user_id").(string)
	if userID == "" {
		return "", "", domain.ErrUnauthorized
	}
	role, _ = c.Get("role").(string)
	return userID, role, nil
}
