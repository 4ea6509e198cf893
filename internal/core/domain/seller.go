package domain

import "time"

// Seller is a storefront profile. At most one exists per user
// (owner_user_id is unique at the store level).
type Seller struct {
	ID          string    `json:"id"`
	OwnerUserID string    `json:"owner_user_id"`
	StoreName   string    `json:"store_name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
