package repository

import (
	"context"

	"musea/internal/domain/entity"
	"musea/internal/errors"
)

// ErrTestimonialNotFound is returned when a testimonial is not found.
var ErrTestimonialNotFound = errors.New("testimonial not found")

// TestimonialRepository defines the interface for testimonial persistence.
type TestimonialRepository interface {
	// CreateTestimonial persists a new testimonial and assigns its identifier
	// and creation timestamp. New testimonials start unapproved.
	CreateTestimonial(ctx context.Context, testimonial *entity.Testimonial) error

	// ListApprovedTestimonials retrieves approved testimonials, newest first.
	ListApprovedTestimonials(ctx context.Context) ([]*entity.Testimonial, error)

	// ApproveTestimonial sets the approved flag and returns the updated
	// testimonial. Approval is monotonic; nothing un-approves.
	ApproveTestimonial(ctx context.Context, id int64) (*entity.Testimonial, error)
}
