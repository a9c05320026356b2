package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"musea/internal/delivery/http/response"
	domainerrors "musea/internal/domain/errors"
	"musea/internal/usecase"
)

// ExhibitionHandler holds dependencies for exhibition catalog handlers.
type ExhibitionHandler struct {
	uc     usecase.ExhibitionUsecase
	logger *slog.Logger
}

// NewExhibitionHandler is the constructor for ExhibitionHandler, injected by Fx.
func NewExhibitionHandler(uc usecase.ExhibitionUsecase, logger *slog.Logger) *ExhibitionHandler {
	return &ExhibitionHandler{uc: uc, logger: logger}
}

type exhibitionRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description" validate:"required"`
	ImageURL    *string `json:"imageUrl"`
	StartDate   string  `json:"startDate" validate:"required"`
	EndDate     string  `json:"endDate" validate:"required"`
	IsFeatured  bool    `json:"isFeatured"`
	IsNew       bool    `json:"isNew"`
}

func (r *exhibitionRequest) toInput() (*usecase.ExhibitionInput, error) {
	startDate, err := parseDate(r.StartDate)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("startDate must be an ISO date")
	}

	endDate, err := parseDate(r.EndDate)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("endDate must be an ISO date")
	}

	return &usecase.ExhibitionInput{
		Title:       r.Title,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		StartDate:   startDate,
		EndDate:     endDate,
		IsFeatured:  r.IsFeatured,
		IsNew:       r.IsNew,
	}, nil
}

// List returns all exhibitions ordered by start date.
func (h *ExhibitionHandler) List(c echo.Context) error {
	exhibitions, err := h.uc.ListExhibitions(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, exhibitions, "")
}

// ListFeatured returns exhibitions flagged for the landing page.
func (h *ExhibitionHandler) ListFeatured(c echo.Context) error {
	exhibitions, err := h.uc.ListFeaturedExhibitions(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, exhibitions, "")
}

// Get returns one exhibition by ID.
func (h *ExhibitionHandler) Get(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return errors.WithStack(err)
	}

	exhibition, err := h.uc.GetExhibition(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, exhibition, "")
}

// Create adds an exhibition to the catalog.
func (h *ExhibitionHandler) Create(c echo.Context) error {
	var req exhibitionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid exhibition input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	input, err := req.toInput()
	if err != nil {
		return errors.WithStack(err)
	}

	exhibition, err := h.uc.CreateExhibition(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, exhibition, "Exhibition created")
}

// Update replaces an exhibition's fields.
func (h *ExhibitionHandler) Update(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req exhibitionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid exhibition input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	input, err := req.toInput()
	if err != nil {
		return errors.WithStack(err)
	}

	exhibition, err := h.uc.UpdateExhibition(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, exhibition, "Exhibition updated")
}

// Delete removes an exhibition from the catalog.
func (h *ExhibitionHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeleteExhibition(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Exhibition deleted")
}

// parseDate accepts both plain ISO dates and full RFC 3339 timestamps, since
// browser clients send either depending on the field widget.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}

	return time.Parse(time.RFC3339, value)
}

// parseIDParam reads the :id path parameter as a positive integer.
func parseIDParam(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domainerrors.ErrValidationFailed.WithDetails("id must be a positive integer")
	}

	return id, nil
}
