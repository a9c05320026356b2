package entity

import "time"

// Exhibition represents a time-bounded museum show a ticket may be bound to.
type Exhibition struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    *string   `json:"imageUrl,omitempty"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	IsFeatured  bool      `json:"isFeatured"`
	IsNew       bool      `json:"isNew"`
	CreatedAt   time.Time `json:"createdAt"`
}
