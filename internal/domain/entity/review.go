package entity

import "time"

// Review is a customer review attached to a product.
type Review struct {
	ID           int64     `json:"id"`
	User         UserRef   `json:"user"`
	Rating       int       `json:"rating"`
	Title        string    `json:"title"`
	Comment      string    `json:"comment"`
	Verified     bool      `json:"verified"`
	HelpfulCount int       `json:"helpfulCount"`
	CreatedAt    time.Time `json:"createdAt"`
}

// UserRef is the minimal author reference embedded in reviews.
type UserRef struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
}
