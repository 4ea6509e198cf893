package domain

import "time"

// Review belongs to exactly one product via the product's review-id list;
// there is no back-reference from the review document.
type Review struct {
	ID           string    `json:"id"`
	Rating       int       `json:"rating"`
	Review       string    `json:"review"`
	AuthorUserID string    `json:"author_user_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
