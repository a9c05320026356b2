package impl

import (
	"context"

	"go.uber.org/fx"

	"musea/internal/domain/entity"
	domainerrors "musea/internal/domain/errors"
	"musea/internal/domain/repository"
	"musea/internal/errors"
	"musea/internal/usecase"
)

type testimonialService struct {
	testimonialRepo repository.TestimonialRepository
}

// TestimonialServiceParams holds dependencies for TestimonialService, injected by Fx.
type TestimonialServiceParams struct {
	fx.In

	TestimonialRepo repository.TestimonialRepository
}

// NewTestimonialService creates a new testimonial service instance.
func NewTestimonialService(params TestimonialServiceParams) usecase.TestimonialUsecase {
	return &testimonialService{testimonialRepo: params.TestimonialRepo}
}

func (s *testimonialService) ListApprovedTestimonials(ctx context.Context) ([]*entity.Testimonial, error) {
	testimonials, err := s.testimonialRepo.ListApprovedTestimonials(ctx)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list testimonials")
	}

	return testimonials, nil
}

// SubmitTestimonial records a new testimonial. Visibility requires admin
// approval regardless of what the submitter sends.
func (s *testimonialService) SubmitTestimonial(ctx context.Context, input *usecase.TestimonialInput) (*entity.Testimonial, error) {
	testimonial := &entity.Testimonial{
		Name:      input.Name,
		Role:      input.Role,
		Content:   input.Content,
		Rating:    input.Rating,
		AvatarURL: input.AvatarURL,
	}
	if err := s.testimonialRepo.CreateTestimonial(ctx, testimonial); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create testimonial")
	}

	return testimonial, nil
}

func (s *testimonialService) ApproveTestimonial(ctx context.Context, id int64) (*entity.Testimonial, error) {
	testimonial, err := s.testimonialRepo.ApproveTestimonial(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTestimonialNotFound) {
			return nil, domainerrors.ErrTestimonialNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to approve testimonial")
	}

	return testimonial, nil
}
