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

type ticketTypeService struct {
	ticketTypeRepo repository.TicketTypeRepository
}

// TicketTypeServiceParams holds dependencies for TicketTypeService, injected by Fx.
type TicketTypeServiceParams struct {
	fx.In

	TicketTypeRepo repository.TicketTypeRepository
}

// NewTicketTypeService creates a new ticket type service instance.
func NewTicketTypeService(params TicketTypeServiceParams) usecase.TicketTypeUsecase {
	return &ticketTypeService{ticketTypeRepo: params.TicketTypeRepo}
}

func (s *ticketTypeService) ListTicketTypes(ctx context.Context) ([]*entity.TicketType, error) {
	ticketTypes, err := s.ticketTypeRepo.ListTicketTypes(ctx)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list ticket types")
	}

	return ticketTypes, nil
}

func (s *ticketTypeService) GetTicketType(ctx context.Context, id int64) (*entity.TicketType, error) {
	ticketType, err := s.ticketTypeRepo.FindTicketTypeByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTicketTypeNotFound) {
			return nil, domainerrors.ErrTicketTypeNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find ticket type")
	}

	return ticketType, nil
}

func (s *ticketTypeService) CreateTicketType(ctx context.Context, input *usecase.TicketTypeInput) (*entity.TicketType, error) {
	ticketType := &entity.TicketType{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Color:       input.Color,
		Includes:    input.Includes,
		IsPopular:   input.IsPopular,
	}
	if err := s.ticketTypeRepo.CreateTicketType(ctx, ticketType); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create ticket type")
	}

	return ticketType, nil
}

func (s *ticketTypeService) UpdateTicketType(ctx context.Context, id int64, input *usecase.TicketTypeInput) (*entity.TicketType, error) {
	ticketType := &entity.TicketType{
		ID:          id,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Color:       input.Color,
		Includes:    input.Includes,
		IsPopular:   input.IsPopular,
	}
	if err := s.ticketTypeRepo.UpdateTicketType(ctx, ticketType); err != nil {
		if errors.Is(err, repository.ErrTicketTypeNotFound) {
			return nil, domainerrors.ErrTicketTypeNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update ticket type")
	}

	return s.GetTicketType(ctx, id)
}

func (s *ticketTypeService) DeleteTicketType(ctx context.Context, id int64) error {
	if err := s.ticketTypeRepo.DeleteTicketType(ctx, id); err != nil {
		if errors.Is(err, repository.ErrTicketTypeNotFound) {
			return domainerrors.ErrTicketTypeNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to delete ticket type")
	}

	return nil
}
