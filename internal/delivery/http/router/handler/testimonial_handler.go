package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"musea/internal/delivery/http/response"
	"musea/internal/usecase"
)

// TestimonialHandler holds dependencies for testimonial handlers.
type TestimonialHandler struct {
	uc     usecase.TestimonialUsecase
	logger *slog.Logger
}

// NewTestimonialHandler is the constructor for TestimonialHandler, injected by Fx.
func NewTestimonialHandler(uc usecase.TestimonialUsecase, logger *slog.Logger) *TestimonialHandler {
	return &TestimonialHandler{uc: uc, logger: logger}
}

type testimonialRequest struct {
	Name      string  `json:"name" validate:"required"`
	Role      *string `json:"role"`
	Content   string  `json:"content" validate:"required"`
	Rating    int     `json:"rating" validate:"required,min=1,max=5"`
	AvatarURL *string `json:"avatarUrl"`
}

// List returns approved testimonials, newest first.
func (h *TestimonialHandler) List(c echo.Context) error {
	testimonials, err := h.uc.ListApprovedTestimonials(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, testimonials, "")
}

// Submit records a testimonial pending admin approval.
func (h *TestimonialHandler) Submit(c echo.Context) error {
	var req testimonialRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid testimonial input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	testimonial, err := h.uc.SubmitTestimonial(c.Request().Context(), &usecase.TestimonialInput{
		Name:      req.Name,
		Role:      req.Role,
		Content:   req.Content,
		Rating:    req.Rating,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, testimonial, "Testimonial submitted")
}

// Approve publishes a testimonial.
func (h *TestimonialHandler) Approve(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return errors.WithStack(err)
	}

	testimonial, err := h.uc.ApproveTestimonial(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, testimonial, "Testimonial approved")
}
