package usecase

import (
	"context"

	"musea/internal/domain/entity"
)

// TicketTypeInput carries the fields for creating or updating a ticket type.
type TicketTypeInput struct {
	Name        string
	Description string
	Price       float64
	Color       string
	Includes    []string
	IsPopular   bool
}

// TicketTypeUsecase defines the interface for ticket product use cases.
type TicketTypeUsecase interface {
	// ListTicketTypes returns all ticket types ordered by price.
	ListTicketTypes(ctx context.Context) ([]*entity.TicketType, error)

	// GetTicketType returns one ticket type by ID.
	GetTicketType(ctx context.Context, id int64) (*entity.TicketType, error)

	// CreateTicketType adds a ticket product. Admin only.
	CreateTicketType(ctx context.Context, input *TicketTypeInput) (*entity.TicketType, error)

	// UpdateTicketType replaces a ticket product's fields. Admin only.
	// Price changes never touch already-purchased tickets.
	UpdateTicketType(ctx context.Context, id int64, input *TicketTypeInput) (*entity.TicketType, error)

	// DeleteTicketType removes a ticket product. Admin only.
	DeleteTicketType(ctx context.Context, id int64) error
}
