package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/snapcart/marketplace/internal/api/handler"
	"github.com/snapcart/marketplace/internal/core/domain"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders the standard envelope: {"status":"error","message":...,"errors":[...]}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg, details := resolveError(err, log, c)
		_ = c.JSON(code, handler.Envelope{Status: "error", Message: msg, Errors: details})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string, []string) {
	// Field-level validation failures populate the errors array.
	var ve *handler.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, "validation failed", ve.Fields
	}

	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message), nil
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrSelfReview),
		errors.Is(err, domain.ErrUserExists),
		errors.Is(err, domain.ErrSellerExists):
		return http.StatusBadRequest, err.Error(), nil
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrSellerProfileRequired):
		return http.StatusUnauthorized, err.Error(), nil
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusForbidden, "authorization failed", nil
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrSellerNotFound),
		errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrReviewNotFound):
		return http.StatusNotFound, err.Error(), nil
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error", nil
}
