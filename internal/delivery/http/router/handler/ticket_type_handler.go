package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"musea/internal/delivery/http/response"
	"musea/internal/usecase"
)

// TicketTypeHandler holds dependencies for ticket product handlers.
type TicketTypeHandler struct {
	uc     usecase.TicketTypeUsecase
	logger *slog.Logger
}

// NewTicketTypeHandler is the constructor for TicketTypeHandler, injected by Fx.
func NewTicketTypeHandler(uc usecase.TicketTypeUsecase, logger *slog.Logger) *TicketTypeHandler {
	return &TicketTypeHandler{uc: uc, logger: logger}
}

type ticketTypeRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Price       float64  `json:"price" validate:"required,gt=0"`
	Color       string   `json:"color"`
	Includes    []string `json:"includes"`
	IsPopular   bool     `json:"isPopular"`
}

func (r *ticketTypeRequest) toInput() *usecase.TicketTypeInput {
	return &usecase.TicketTypeInput{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Color:       r.Color,
		Includes:    r.Includes,
		IsPopular:   r.IsPopular,
	}
}

// List returns all ticket types ordered by price.
func (h *TicketTypeHandler) List(c echo.Context) error {
	ticketTypes, err := h.uc.ListTicketTypes(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ticketTypes, "")
}

// Get returns one ticket type by ID.
func (h *TicketTypeHandler) Get(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return errors.WithStack(err)
	}

	ticketType, err := h.uc.GetTicketType(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ticketType, "")
}

// Create adds a ticket product.
func (h *TicketTypeHandler) Create(c echo.Context) error {
	var req ticketTypeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid ticket type input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	ticketType, err := h.uc.CreateTicketType(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, ticketType, "Ticket type created")
}

// Update replaces a ticket product's fields.
func (h *TicketTypeHandler) Update(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req ticketTypeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid ticket type input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	ticketType, err := h.uc.UpdateTicketType(c.Request().Context(), id, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ticketType, "Ticket type updated")
}

// Delete removes a ticket product.
func (h *TicketTypeHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeleteTicketType(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Ticket type deleted")
}
