package usecase

import (
	"context"

	"musea/internal/domain/entity"
)

// TestimonialInput carries the fields of a testimonial submission.
type TestimonialInput struct {
	Name      string
	Role      *string
	Content   string
	Rating    int
	AvatarURL *string
}

// TestimonialUsecase defines the interface for visitor testimonial use cases.
type TestimonialUsecase interface {
	// ListApprovedTestimonials returns publishable testimonials, newest first.
	ListApprovedTestimonials(ctx context.Context) ([]*entity.Testimonial, error)

	// SubmitTestimonial records a new testimonial. It stays hidden until an
	// admin approves it.
	SubmitTestimonial(ctx context.Context, input *TestimonialInput) (*entity.Testimonial, error)

	// ApproveTestimonial publishes a testimonial. Admin only.
	ApproveTestimonial(ctx context.Context, id int64) (*entity.Testimonial, error)
}
