package postgres

import (
	"context"

	"gorm.io/gorm"

	"musea/internal/domain/entity"
	"musea/internal/domain/repository"
	"musea/internal/errors"
	"musea/internal/infra/persistence/model"
)

// CreateExhibition persists a new exhibition.
func (s *Store) CreateExhibition(ctx context.Context, exhibition *entity.Exhibition) error {
	exhibitionM := fromExhibitionDomain(exhibition)

	if err := s.db.WithContext(ctx).Create(exhibitionM).Error; err != nil {
		return errors.Wrap(err, "failed to create exhibition")
	}

	exhibition.ID = exhibitionM.ID
	exhibition.CreatedAt = exhibitionM.CreatedAt

	return nil
}

// FindExhibitionByID retrieves an exhibition by its unique ID.
func (s *Store) FindExhibitionByID(ctx context.Context, id int64) (*entity.Exhibition, error) {
	var exhibitionM model.ExhibitionModel

	if err := s.db.WithContext(ctx).
		Where("id = ?", id).
		First(&exhibitionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrExhibitionNotFound
		}

		return nil, errors.Wrap(err, "failed to find exhibition by ID")
	}

	return toExhibitionDomain(&exhibitionM), nil
}

// ListExhibitions retrieves all exhibitions ordered by start date.
func (s *Store) ListExhibitions(ctx context.Context) ([]*entity.Exhibition, error) {
	var exhibitionModels []*model.ExhibitionModel

	if err := s.db.WithContext(ctx).
		Order("start_date ASC").
		Find(&exhibitionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list exhibitions")
	}

	return toExhibitionDomainList(exhibitionModels), nil
}

// ListFeaturedExhibitions retrieves exhibitions with the featured flag set.
func (s *Store) ListFeaturedExhibitions(ctx context.Context) ([]*entity.Exhibition, error) {
	var exhibitionModels []*model.ExhibitionModel

	if err := s.db.WithContext(ctx).
		Where("is_featured = ?", true).
		Order("start_date ASC").
		Find(&exhibitionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list featured exhibitions")
	}

	return toExhibitionDomainList(exhibitionModels), nil
}

// UpdateExhibition replaces all mutable fields of an existing exhibition.
func (s *Store) UpdateExhibition(ctx context.Context, exhibition *entity.Exhibition) error {
	result := s.db.WithContext(ctx).
		Model(&model.ExhibitionModel{}).
		Where("id = ?", exhibition.ID).
		Updates(map[string]any{
			"title":       exhibition.Title,
			"description": exhibition.Description,
			"image_url":   exhibition.ImageURL,
			"start_date":  exhibition.StartDate,
			"end_date":    exhibition.EndDate,
			"is_featured": exhibition.IsFeatured,
			"is_new":      exhibition.IsNew,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update exhibition")
	}
	if result.RowsAffected == 0 {
		return repository.ErrExhibitionNotFound
	}

	return nil
}

// DeleteExhibition removes an exhibition by its ID.
func (s *Store) DeleteExhibition(ctx context.Context, id int64) error {
	result := s.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ExhibitionModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete exhibition")
	}
	if result.RowsAffected == 0 {
		return repository.ErrExhibitionNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toExhibitionDomain(data *model.ExhibitionModel) *entity.Exhibition {
	if data == nil {
		return nil
	}

	return &entity.Exhibition{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		ImageURL:    data.ImageURL,
		StartDate:   data.StartDate,
		EndDate:     data.EndDate,
		IsFeatured:  data.IsFeatured,
		IsNew:       data.IsNew,
		CreatedAt:   data.CreatedAt,
	}
}

func toExhibitionDomainList(models []*model.ExhibitionModel) []*entity.Exhibition {
	exhibitions := make([]*entity.Exhibition, 0, len(models))
	for _, exhibitionM := range models {
		exhibitions = append(exhibitions, toExhibitionDomain(exhibitionM))
	}

	return exhibitions
}

func fromExhibitionDomain(data *entity.Exhibition) *model.ExhibitionModel {
	if data == nil {
		return nil
	}

	return &model.ExhibitionModel{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		ImageURL:    data.ImageURL,
		StartDate:   data.StartDate,
		EndDate:     data.EndDate,
		IsFeatured:  data.IsFeatured,
		IsNew:       data.IsNew,
		CreatedAt:   data.CreatedAt,
	}
}
