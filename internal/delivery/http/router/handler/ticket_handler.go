package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"musea/internal/delivery/http/middleware"
	"musea/internal/delivery/http/response"
	domainerrors "musea/internal/domain/errors"
	"musea/internal/usecase"
)

// TicketHandler holds dependencies for ticket lifecycle and payment handlers.
type TicketHandler struct {
	uc     usecase.TicketUsecase
	logger *slog.Logger
}

// NewTicketHandler is the constructor for TicketHandler, injected by Fx.
func NewTicketHandler(uc usecase.TicketUsecase, logger *slog.Logger) *TicketHandler {
	return &TicketHandler{uc: uc, logger: logger}
}

type purchaseTicketRequest struct {
	TicketTypeID int64  `json:"ticketTypeId" validate:"required,gt=0"`
	ExhibitionID *int64 `json:"exhibitionId"`
	Quantity     int    `json:"quantity" validate:"required,gt=0"`
	VisitDate    string `json:"visitDate" validate:"required"`
}

type processPaymentRequest struct {
	TicketID int64 `json:"ticketId" validate:"required,gt=0"`
}

// Purchase creates an unpaid ticket for the authenticated caller.
func (h *TicketHandler) Purchase(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrNotAuthenticated)
	}

	var req purchaseTicketRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid ticket input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	visitDate, err := parseDate(req.VisitDate)
	if err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("visitDate must be an ISO date"))
	}

	ticket, err := h.uc.PurchaseTicket(c.Request().Context(), userID, &usecase.PurchaseTicketInput{
		TicketTypeID: req.TicketTypeID,
		ExhibitionID: req.ExhibitionID,
		Quantity:     req.Quantity,
		VisitDate:    visitDate,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, ticket, "Ticket created")
}

// List returns the caller's tickets, or every ticket for administrators.
func (h *TicketHandler) List(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrNotAuthenticated)
	}

	var (
		tickets []*usecase.TicketDetails
		err     error
	)
	if middleware.IsAdmin(c) {
		tickets, err = h.uc.ListAllTickets(c.Request().Context())
	} else {
		tickets, err = h.uc.ListUserTickets(c.Request().Context(), userID)
	}
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tickets, "")
}

// Get returns one ticket with display details.
func (h *TicketHandler) Get(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrNotAuthenticated)
	}

	ticketID, err := parseIDParam(c)
	if err != nil {
		return errors.WithStack(err)
	}

	ticket, err := h.uc.GetTicket(c.Request().Context(), userID, middleware.IsAdmin(c), ticketID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ticket, "")
}

// Cancel deletes an unpaid, unused ticket with a future visit date.
func (h *TicketHandler) Cancel(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrNotAuthenticated)
	}

	ticketID, err := parseIDParam(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.CancelTicket(c.Request().Context(), userID, middleware.IsAdmin(c), ticketID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Ticket cancelled")
}

// Use marks a paid ticket as used for entry.
func (h *TicketHandler) Use(c echo.Context) error {
	ticketID, err := parseIDParam(c)
	if err != nil {
		return errors.WithStack(err)
	}

	ticket, err := h.uc.UseTicket(c.Request().Context(), ticketID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ticket, "Ticket used")
}

// ProcessPayment marks an unpaid ticket paid and attaches the entry QR code.
func (h *TicketHandler) ProcessPayment(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrNotAuthenticated)
	}

	var req processPaymentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	ticket, err := h.uc.ProcessPayment(c.Request().Context(), userID, req.TicketID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ticket, "Payment processed")
}
