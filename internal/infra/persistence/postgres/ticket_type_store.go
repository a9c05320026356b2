package postgres

import (
	"context"

	"gorm.io/gorm"

	"musea/internal/domain/entity"
	"musea/internal/domain/repository"
	"musea/internal/errors"
	"musea/internal/infra/persistence/model"
)

// CreateTicketType persists a new ticket type.
func (s *Store) CreateTicketType(ctx context.Context, ticketType *entity.TicketType) error {
	ticketTypeM := fromTicketTypeDomain(ticketType)
	if ticketTypeM.Color == "" {
		ticketTypeM.Color = "primary"
	}

	if err := s.db.WithContext(ctx).Create(ticketTypeM).Error; err != nil {
		return errors.Wrap(err, "failed to create ticket type")
	}

	ticketType.ID = ticketTypeM.ID
	ticketType.Color = ticketTypeM.Color
	ticketType.CreatedAt = ticketTypeM.CreatedAt

	return nil
}

// FindTicketTypeByID retrieves a ticket type by its unique ID.
func (s *Store) FindTicketTypeByID(ctx context.Context, id int64) (*entity.TicketType, error) {
	var ticketTypeM model.TicketTypeModel

	if err := s.db.WithContext(ctx).
		Where("id = ?", id).
		First(&ticketTypeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTicketTypeNotFound
		}

		return nil, errors.Wrap(err, "failed to find ticket type by ID")
	}

	return toTicketTypeDomain(&ticketTypeM), nil
}

// ListTicketTypes retrieves all ticket types ordered by price.
func (s *Store) ListTicketTypes(ctx context.Context) ([]*entity.TicketType, error) {
	var ticketTypeModels []*model.TicketTypeModel

	if err := s.db.WithContext(ctx).
		Order("price ASC").
		Find(&ticketTypeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list ticket types")
	}

	ticketTypes := make([]*entity.TicketType, 0, len(ticketTypeModels))
	for _, ticketTypeM := range ticketTypeModels {
		ticketTypes = append(ticketTypes, toTicketTypeDomain(ticketTypeM))
	}

	return ticketTypes, nil
}

// UpdateTicketType replaces all mutable fields of an existing ticket type.
func (s *Store) UpdateTicketType(ctx context.Context, ticketType *entity.TicketType) error {
	// Select forces zero values through, and keeps the includes column on the
	// JSON serializer path.
	result := s.db.WithContext(ctx).
		Model(&model.TicketTypeModel{}).
		Where("id = ?", ticketType.ID).
		Select("name", "description", "price", "color", "includes", "is_popular").
		Updates(&model.TicketTypeModel{
			Name:        ticketType.Name,
			Description: ticketType.Description,
			Price:       ticketType.Price,
			Color:       ticketType.Color,
			Includes:    ticketType.Includes,
			IsPopular:   ticketType.IsPopular,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update ticket type")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTicketTypeNotFound
	}

	return nil
}

// DeleteTicketType removes a ticket type by its ID.
func (s *Store) DeleteTicketType(ctx context.Context, id int64) error {
	result := s.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.TicketTypeModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete ticket type")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTicketTypeNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toTicketTypeDomain(data *model.TicketTypeModel) *entity.TicketType {
	if data == nil {
		return nil
	}

	return &entity.TicketType{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Color:       data.Color,
		Includes:    data.Includes,
		IsPopular:   data.IsPopular,
		CreatedAt:   data.CreatedAt,
	}
}

func fromTicketTypeDomain(data *entity.TicketType) *model.TicketTypeModel {
	if data == nil {
		return nil
	}

	return &model.TicketTypeModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Color:       data.Color,
		Includes:    data.Includes,
		IsPopular:   data.IsPopular,
		CreatedAt:   data.CreatedAt,
	}
}
