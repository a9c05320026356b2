package entity

import "time"

// TicketType is a priced product (e.g. General Admission) purchasable as a ticket.
type TicketType struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`    // Per-unit price, positive.
	Color       string    `json:"color"`    // Display tag, defaults to "primary".
	Includes    []string  `json:"includes"` // Included-feature bullet points.
	IsPopular   bool      `json:"isPopular"`
	CreatedAt   time.Time `json:"createdAt"`
}
