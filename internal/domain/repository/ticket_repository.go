package repository

import (
	"context"

	"musea/internal/domain/entity"
	"musea/internal/errors"
)

// ErrTicketNotFound is returned when a ticket is not found.
var ErrTicketNotFound = errors.New("ticket not found")

// TicketRepository defines the interface for ticket-related database operations.
//
// The mark-paid and set-QR operations are deliberately separate writes: the
// payment flow issues them sequentially without a transaction, and a read of
// a paid ticket lacking its QR payload regenerates it.
type TicketRepository interface {
	// CreateTicket persists a new ticket and assigns its identifier and
	// creation timestamp. The total price is supplied by the caller.
	CreateTicket(ctx context.Context, ticket *entity.Ticket) error

	// FindTicketByID retrieves a ticket by its unique ID.
	FindTicketByID(ctx context.Context, id int64) (*entity.Ticket, error)

	// ListTickets retrieves all tickets, newest first.
	ListTickets(ctx context.Context) ([]*entity.Ticket, error)

	// ListTicketsByUser retrieves all tickets owned by a user, newest first.
	ListTicketsByUser(ctx context.Context, userID int64) ([]*entity.Ticket, error)

	// MarkTicketPaid sets the paid flag and payment reference and returns the
	// updated ticket. Returns ErrTicketNotFound when the id does not exist.
	MarkTicketPaid(ctx context.Context, id int64, paymentIntentID string) (*entity.Ticket, error)

	// SetTicketQRCode stores the QR payload, overwriting any previous value.
	SetTicketQRCode(ctx context.Context, id int64, qrCodeData string) error

	// MarkTicketUsed sets the used flag and returns the updated ticket.
	MarkTicketUsed(ctx context.Context, id int64) (*entity.Ticket, error)

	// DeleteTicket removes a ticket. Returns ErrTicketNotFound when nothing
	// was deleted.
	DeleteTicket(ctx context.Context, id int64) error
}
