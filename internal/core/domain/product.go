package domain

import "time"

// Product is a listing owned by a Seller. SellerID always references a Seller
// record, never a User; ownership checks resolve the caller's seller first.
type Product struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Price       float64   `json:"price"`
	Image       string    `json:"image,omitempty"`
	Description string    `json:"description,omitempty"`
	SellerID    string    `json:"seller_id"`
	ReviewIDs   []string  `json:"reviews"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
