package usecase

import (
	"context"
	"time"

	"musea/internal/domain/entity"
)

// PurchaseTicketInput carries the fields of a ticket purchase request.
type PurchaseTicketInput struct {
	TicketTypeID int64
	ExhibitionID *int64
	Quantity     int
	VisitDate    time.Time
}

// TicketDetails decorates a ticket with catalog display fields. When the
// referenced exhibition has been deleted, the title falls back to
// "General Admission".
type TicketDetails struct {
	*entity.Ticket
	TicketTypeName  string  `json:"ticketTypeName"`
	ExhibitionTitle string  `json:"exhibitionTitle"`
	UnitPrice       float64 `json:"unitPrice"`
}

// TicketUsecase defines the interface for ticket lifecycle use cases.
type TicketUsecase interface {
	// PurchaseTicket creates an unpaid ticket. The total price is computed
	// from the ticket type's current price and the quantity.
	PurchaseTicket(ctx context.Context, userID int64, input *PurchaseTicketInput) (*entity.Ticket, error)

	// GetTicket returns a ticket with display details. Non-admin callers may
	// only read their own tickets. Reading a paid ticket that lost its QR
	// payload regenerates it.
	GetTicket(ctx context.Context, userID int64, isAdmin bool, ticketID int64) (*TicketDetails, error)

	// ListUserTickets returns the caller's tickets, newest first.
	ListUserTickets(ctx context.Context, userID int64) ([]*TicketDetails, error)

	// ListAllTickets returns every ticket. Admin only.
	ListAllTickets(ctx context.Context) ([]*TicketDetails, error)

	// ProcessPayment marks an unpaid ticket paid, assigns the payment
	// reference, and generates the entry QR code. Paying twice fails.
	ProcessPayment(ctx context.Context, userID int64, ticketID int64) (*entity.Ticket, error)

	// UseTicket marks a paid ticket as used for entry. Admin only.
	UseTicket(ctx context.Context, ticketID int64) (*entity.Ticket, error)

	// CancelTicket deletes a ticket. Only the owner may cancel, and only
	// while the ticket is unpaid, unused, and the visit date is in the future.
	CancelTicket(ctx context.Context, userID int64, isAdmin bool, ticketID int64) error
}
