package domain

import "errors"

// Sentinel errors shared across services and translated to HTTP status codes
// by the API error handler.
var (
	// ErrInvalidInput covers malformed or missing request input (400).
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidCredentials is returned when a login attempt fails (401).
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrSellerProfileRequired gates product mutation behind an existing
	// seller profile (401).
	ErrSellerProfileRequired = errors.New("need seller profile")

	// ErrUnauthorized covers bad/missing tokens and ownership or role
	// mismatches (403).
	ErrUnauthorized = errors.New("authorization failed")

	// ErrSelfReview rejects a review on the author's own product (400).
	ErrSelfReview = errors.New("cannot review your own product")

	ErrUserNotFound    = errors.New("user not found")
	ErrSellerNotFound  = errors.New("seller not found")
	ErrProductNotFound = errors.New("product not found")
	ErrReviewNotFound  = errors.New("review not found")

	ErrUserExists   = errors.New("user already exists")
	ErrSellerExists = errors.New("seller profile already exists")
)
