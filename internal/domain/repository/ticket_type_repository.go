package repository

import (
	"context"

	"musea/internal/domain/entity"
	"musea/internal/errors"
)

// ErrTicketTypeNotFound is returned when a ticket type is not found.
var ErrTicketTypeNotFound = errors.New("ticket type not found")

// TicketTypeRepository defines the interface for ticket-type-related database operations.
type TicketTypeRepository interface {
	// CreateTicketType persists a new ticket type and assigns its identifier
	// and creation timestamp.
	CreateTicketType(ctx context.Context, ticketType *entity.TicketType) error

	// FindTicketTypeByID retrieves a ticket type by its unique ID.
	FindTicketTypeByID(ctx context.Context, id int64) (*entity.TicketType, error)

	// ListTicketTypes retrieves all ticket types ordered by price.
	ListTicketTypes(ctx context.Context) ([]*entity.TicketType, error)

	// UpdateTicketType replaces all mutable fields of an existing ticket type.
	// Returns ErrTicketTypeNotFound when the id does not exist.
	UpdateTicketType(ctx context.Context, ticketType *entity.TicketType) error

	// DeleteTicketType removes a ticket type. Returns ErrTicketTypeNotFound
	// when nothing was deleted.
	DeleteTicketType(ctx context.Context, id int64) error
}
