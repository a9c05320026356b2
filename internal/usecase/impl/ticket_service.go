package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/fx"

	"musea/internal/domain/entity"
	domainerrors "musea/internal/domain/errors"
	"musea/internal/domain/repository"
	"musea/internal/domain/service"
	"musea/internal/errors"
	"musea/internal/infra/metrics"
	"musea/internal/usecase"
)

// generalAdmissionTitle is the display fallback for tickets whose exhibition
// reference no longer resolves.
const generalAdmissionTitle = "General Admission"

type ticketService struct {
	ticketRepo     repository.TicketRepository
	ticketTypeRepo repository.TicketTypeRepository
	exhibitionRepo repository.ExhibitionRepository
	qrcodeService  service.QRCodeService
	metrics        *metrics.Metrics
	logger         *slog.Logger
}

// TicketServiceParams holds dependencies for TicketService, injected by Fx.
type TicketServiceParams struct {
	fx.In

	TicketRepo     repository.TicketRepository
	TicketTypeRepo repository.TicketTypeRepository
	ExhibitionRepo repository.ExhibitionRepository
	QRCodeService  service.QRCodeService
	Metrics        *metrics.Metrics
	Logger         *slog.Logger
}

// NewTicketService creates a new ticket service instance.
func NewTicketService(params TicketServiceParams) usecase.TicketUsecase {
	return &ticketService{
		ticketRepo:     params.TicketRepo,
		ticketTypeRepo: params.TicketTypeRepo,
		exhibitionRepo: params.ExhibitionRepo,
		qrcodeService:  params.QRCodeService,
		metrics:        params.Metrics,
		logger:         params.Logger,
	}
}

// PurchaseTicket creates an unpaid ticket. The total price is locked in from
// the ticket type's current price; later price changes never touch it.
func (s *ticketService) PurchaseTicket(ctx context.Context, userID int64, input *usecase.PurchaseTicketInput) (*entity.Ticket, error) {
	ticketType, err := s.ticketTypeRepo.FindTicketTypeByID(ctx, input.TicketTypeID)
	if err != nil {
		if errors.Is(err, repository.ErrTicketTypeNotFound) {
			return nil, domainerrors.ErrTicketTypeNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find ticket type")
	}

	if input.ExhibitionID != nil {
		if _, err := s.exhibitionRepo.FindExhibitionByID(ctx, *input.ExhibitionID); err != nil {
			if errors.Is(err, repository.ErrExhibitionNotFound) {
				return nil, domainerrors.ErrExhibitionNotFound
			}

			return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find exhibition")
		}
	}

	ticket := &entity.Ticket{
		UserID:       userID,
		TicketTypeID: input.TicketTypeID,
		ExhibitionID: input.ExhibitionID,
		Quantity:     input.Quantity,
		VisitDate:    input.VisitDate,
		TotalPrice:   ticketType.Price * float64(input.Quantity),
	}
	if err := s.ticketRepo.CreateTicket(ctx, ticket); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create ticket")
	}

	s.metrics.TicketsCreated.Inc()
	s.logger.Info("ticket created",
		slog.Int64("ticketId", ticket.ID),
		slog.Int64("userId", userID),
		slog.Float64("totalPrice", ticket.TotalPrice))

	return ticket, nil
}

// GetTicket returns a ticket with display details, enforcing ownership.
func (s *ticketService) GetTicket(ctx context.Context, userID int64, isAdmin bool, ticketID int64) (*usecase.TicketDetails, error) {
	ticket, err := s.findTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if ticket.UserID != userID && !isAdmin {
		return nil, domainerrors.ErrNotTicketOwner
	}

	// Regenerate the QR payload when a paid ticket lost it, e.g. because the
	// payment flow crashed between the two writes.
	if ticket.IsPaid && ticket.QRCodeData == nil {
		if err := s.attachQRCode(ctx, ticket); err != nil {
			return nil, err
		}
	}

	return s.decorate(ctx, ticket)
}

// ListUserTickets returns the caller's tickets, newest first.
func (s *ticketService) ListUserTickets(ctx context.Context, userID int64) ([]*usecase.TicketDetails, error) {
	tickets, err := s.ticketRepo.ListTicketsByUser(ctx, userID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list tickets")
	}

	return s.decorateAll(ctx, tickets)
}

// ListAllTickets returns every ticket for the admin console.
func (s *ticketService) ListAllTickets(ctx context.Context) ([]*usecase.TicketDetails, error) {
	tickets, err := s.ticketRepo.ListTickets(ctx)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list tickets")
	}

	return s.decorateAll(ctx, tickets)
}

// ProcessPayment marks an unpaid ticket paid and generates its entry QR code.
func (s *ticketService) ProcessPayment(ctx context.Context, userID int64, ticketID int64) (*entity.Ticket, error) {
	ticket, err := s.findTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if ticket.UserID != userID {
		return nil, domainerrors.ErrNotTicketOwner
	}
	if ticket.IsPaid {
		return nil, domainerrors.ErrTicketAlreadyPaid
	}

	paymentIntentID := newPaymentIntentID()
	paid, err := s.ticketRepo.MarkTicketPaid(ctx, ticketID, paymentIntentID)
	if err != nil {
		if errors.Is(err, repository.ErrTicketNotFound) {
			return nil, domainerrors.ErrTicketNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to mark ticket paid")
	}

	if err := s.attachQRCode(ctx, paid); err != nil {
		return nil, err
	}

	s.metrics.PaymentsProcessed.Inc()
	s.logger.Info("payment processed",
		slog.Int64("ticketId", ticketID),
		slog.String("paymentIntentId", paymentIntentID))

	return paid, nil
}

// UseTicket marks a paid ticket as used for entry.
func (s *ticketService) UseTicket(ctx context.Context, ticketID int64) (*entity.Ticket, error) {
	ticket, err := s.findTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if !ticket.IsPaid {
		return nil, domainerrors.ErrTicketNotPaid
	}

	used, err := s.ticketRepo.MarkTicketUsed(ctx, ticketID)
	if err != nil {
		if errors.Is(err, repository.ErrTicketNotFound) {
			return nil, domainerrors.ErrTicketNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to mark ticket used")
	}

	s.metrics.TicketsUsed.Inc()

	return used, nil
}

// CancelTicket deletes a ticket under the cancellation rules. Admins bypass
// the rules; owners may only cancel unpaid, unused, future-dated tickets.
func (s *ticketService) CancelTicket(ctx context.Context, userID int64, isAdmin bool, ticketID int64) error {
	ticket, err := s.findTicket(ctx, ticketID)
	if err != nil {
		return err
	}
	if ticket.UserID != userID && !isAdmin {
		return domainerrors.ErrNotTicketOwner
	}
	if !isAdmin {
		if ticket.IsPaid || ticket.IsUsed || !ticket.VisitDate.After(time.Now()) {
			return domainerrors.ErrTicketNotCancellable
		}
	}

	if err := s.ticketRepo.DeleteTicket(ctx, ticketID); err != nil {
		if errors.Is(err, repository.ErrTicketNotFound) {
			return domainerrors.ErrTicketNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to delete ticket")
	}

	return nil
}

func (s *ticketService) findTicket(ctx context.Context, ticketID int64) (*entity.Ticket, error) {
	ticket, err := s.ticketRepo.FindTicketByID(ctx, ticketID)
	if err != nil {
		if errors.Is(err, repository.ErrTicketNotFound) {
			return nil, domainerrors.ErrTicketNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find ticket")
	}

	return ticket, nil
}

func (s *ticketService) attachQRCode(ctx context.Context, ticket *entity.Ticket) error {
	qrData, err := s.qrcodeService.GenerateTicketQR(ticket)
	if err != nil {
		return domainerrors.ErrInternalError.WithDetails("failed to generate QR code")
	}
	if err := s.ticketRepo.SetTicketQRCode(ctx, ticket.ID, qrData); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to store QR code")
	}
	ticket.QRCodeData = &qrData

	return nil
}

// decorate resolves catalog display fields for one ticket.
func (s *ticketService) decorate(ctx context.Context, ticket *entity.Ticket) (*usecase.TicketDetails, error) {
	details := &usecase.TicketDetails{
		Ticket:          ticket,
		ExhibitionTitle: generalAdmissionTitle,
	}

	if ticketType, err := s.ticketTypeRepo.FindTicketTypeByID(ctx, ticket.TicketTypeID); err == nil {
		details.TicketTypeName = ticketType.Name
		details.UnitPrice = ticketType.Price
	}
	if ticket.ExhibitionID != nil {
		if exhibition, err := s.exhibitionRepo.FindExhibitionByID(ctx, *ticket.ExhibitionID); err == nil {
			details.ExhibitionTitle = exhibition.Title
		}
	}

	return details, nil
}

// decorateAll resolves display fields for a ticket list with one catalog
// pass instead of per-ticket lookups.
func (s *ticketService) decorateAll(ctx context.Context, tickets []*entity.Ticket) ([]*usecase.TicketDetails, error) {
	ticketTypes, err := s.ticketTypeRepo.ListTicketTypes(ctx)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list ticket types")
	}
	typeByID := make(map[int64]*entity.TicketType, len(ticketTypes))
	for _, ticketType := range ticketTypes {
		typeByID[ticketType.ID] = ticketType
	}

	exhibitions, err := s.exhibitionRepo.ListExhibitions(ctx)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list exhibitions")
	}
	exhibitionByID := make(map[int64]*entity.Exhibition, len(exhibitions))
	for _, exhibition := range exhibitions {
		exhibitionByID[exhibition.ID] = exhibition
	}

	detailed := make([]*usecase.TicketDetails, 0, len(tickets))
	for _, ticket := range tickets {
		details := &usecase.TicketDetails{
			Ticket:          ticket,
			ExhibitionTitle: generalAdmissionTitle,
		}
		if ticketType, ok := typeByID[ticket.TicketTypeID]; ok {
			details.TicketTypeName = ticketType.Name
			details.UnitPrice = ticketType.Price
		}
		if ticket.ExhibitionID != nil {
			if exhibition, ok := exhibitionByID[*ticket.ExhibitionID]; ok {
				details.ExhibitionTitle = exhibition.Title
			}
		}
		detailed = append(detailed, details)
	}

	return detailed, nil
}

// newPaymentIntentID mints a payment reference in the pi_<millis>_<suffix>
// shape expected by the client.
func newPaymentIntentID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:13]

	return fmt.Sprintf("pi_%d_%s", time.Now().UnixMilli(), suffix)
}
