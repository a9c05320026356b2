package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"musea/internal/delivery/http/response"
	domainerrors "musea/internal/domain/errors"
	"musea/internal/usecase"
)

// AnalyticsHandler holds dependencies for the admin dashboard handlers.
type AnalyticsHandler struct {
	uc     usecase.AnalyticsUsecase
	logger *slog.Logger
}

// NewAnalyticsHandler is the constructor for AnalyticsHandler, injected by Fx.
func NewAnalyticsHandler(uc usecase.AnalyticsUsecase, logger *slog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc, logger: logger}
}

type analyticsRequest struct {
	Date                 string  `json:"date" validate:"required"`
	VisitorCount         int     `json:"visitorCount" validate:"gte=0"`
	Revenue              float64 `json:"revenue" validate:"gte=0"`
	PopularExhibitionID  *int64  `json:"popularExhibitionId"`
	AverageVisitDuration *int    `json:"averageVisitDuration"`
}

// List returns all daily snapshots, newest first.
func (h *AnalyticsHandler) List(c echo.Context) error {
	entries, err := h.uc.ListAnalytics(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entries, "")
}

// Record appends a daily snapshot.
func (h *AnalyticsHandler) Record(c echo.Context) error {
	var req analyticsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid analytics input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("date must be an ISO date"))
	}

	entry, err := h.uc.RecordAnalytics(c.Request().Context(), &usecase.AnalyticsInput{
		Date:                 date,
		VisitorCount:         req.VisitorCount,
		Revenue:              req.Revenue,
		PopularExhibitionID:  req.PopularExhibitionID,
		AverageVisitDuration: req.AverageVisitDuration,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, entry, "Analytics recorded")
}
