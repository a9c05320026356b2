package postgres

import (
	"context"

	"musea/internal/domain/entity"
	"musea/internal/domain/repository"
	"musea/internal/errors"
	"musea/internal/infra/persistence/model"
)

// CreateTestimonial persists a new testimonial.
func (s *Store) CreateTestimonial(ctx context.Context, testimonial *entity.Testimonial) error {
	testimonialM := &model.TestimonialModel{
		Name:       testimonial.Name,
		Role:       testimonial.Role,
		Content:    testimonial.Content,
		Rating:     testimonial.Rating,
		AvatarURL:  testimonial.AvatarURL,
		IsApproved: testimonial.IsApproved,
		CreatedAt:  testimonial.CreatedAt,
	}

	if err := s.db.WithContext(ctx).Create(testimonialM).Error; err != nil {
		return errors.Wrap(err, "failed to create testimonial")
	}

	testimonial.ID = testimonialM.ID
	testimonial.CreatedAt = testimonialM.CreatedAt

	return nil
}

// ListApprovedTestimonials retrieves approved testimonials, newest first.
func (s *Store) ListApprovedTestimonials(ctx context.Context) ([]*entity.Testimonial, error) {
	var testimonialModels []*model.TestimonialModel

	if err := s.db.WithContext(ctx).
		Where("is_approved = ?", true).
		Order("created_at DESC, id DESC").
		Find(&testimonialModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list approved testimonials")
	}

	testimonials := make([]*entity.Testimonial, 0, len(testimonialModels))
	for _, testimonialM := range testimonialModels {
		testimonials = append(testimonials, toTestimonialDomain(testimonialM))
	}

	return testimonials, nil
}

// ApproveTestimonial sets the approved flag and returns the updated testimonial.
func (s *Store) ApproveTestimonial(ctx context.Context, id int64) (*entity.Testimonial, error) {
	result := s.db.WithContext(ctx).
		Model(&model.TestimonialModel{}).
		Where("id = ?", id).
		Update("is_approved", true)

	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to approve testimonial")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrTestimonialNotFound
	}

	var testimonialM model.TestimonialModel
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&testimonialM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to reload testimonial")
	}

	return toTestimonialDomain(&testimonialM), nil
}

// --- Mapper Functions ---

func toTestimonialDomain(data *model.TestimonialModel) *entity.Testimonial {
	if data == nil {
		return nil
	}

	return &entity.Testimonial{
		ID:         data.ID,
		Name:       data.Name,
		Role:       data.Role,
		Content:    data.Content,
		Rating:     data.Rating,
		AvatarURL:  data.AvatarURL,
		IsApproved: data.IsApproved,
		CreatedAt:  data.CreatedAt,
	}
}
