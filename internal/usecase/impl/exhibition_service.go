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

type exhibitionService struct {
	exhibitionRepo repository.ExhibitionRepository
}

// ExhibitionServiceParams holds dependencies for ExhibitionService, injected by Fx.
type ExhibitionServiceParams struct {
	fx.In

	ExhibitionRepo repository.ExhibitionRepository
}

// NewExhibitionService creates a new exhibition service instance.
func NewExhibitionService(params ExhibitionServiceParams) usecase.ExhibitionUsecase {
	return &exhibitionService{exhibitionRepo: params.ExhibitionRepo}
}

func (s *exhibitionService) ListExhibitions(ctx context.Context) ([]*entity.Exhibition, error) {
	exhibitions, err := s.exhibitionRepo.ListExhibitions(ctx)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list exhibitions")
	}

	return exhibitions, nil
}

func (s *exhibitionService) ListFeaturedExhibitions(ctx context.Context) ([]*entity.Exhibition, error) {
	exhibitions, err := s.exhibitionRepo.ListFeaturedExhibitions(ctx)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list featured exhibitions")
	}

	return exhibitions, nil
}

func (s *exhibitionService) GetExhibition(ctx context.Context, id int64) (*entity.Exhibition, error) {
	exhibition, err := s.exhibitionRepo.FindExhibitionByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrExhibitionNotFound) {
			return nil, domainerrors.ErrExhibitionNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find exhibition")
	}

	return exhibition, nil
}

func (s *exhibitionService) CreateExhibition(ctx context.Context, input *usecase.ExhibitionInput) (*entity.Exhibition, error) {
	exhibition := &entity.Exhibition{
		Title:       input.Title,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		IsFeatured:  input.IsFeatured,
		IsNew:       input.IsNew,
	}
	if err := s.exhibitionRepo.CreateExhibition(ctx, exhibition); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create exhibition")
	}

	return exhibition, nil
}

func (s *exhibitionService) UpdateExhibition(ctx context.Context, id int64, input *usecase.ExhibitionInput) (*entity.Exhibition, error) {
	exhibition := &entity.Exhibition{
		ID:          id,
		Title:       input.Title,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		IsFeatured:  input.IsFeatured,
		IsNew:       input.IsNew,
	}
	if err := s.exhibitionRepo.UpdateExhibition(ctx, exhibition); err != nil {
		if errors.Is(err, repository.ErrExhibitionNotFound) {
			return nil, domainerrors.ErrExhibitionNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update exhibition")
	}

	return s.GetExhibition(ctx, id)
}

func (s *exhibitionService) DeleteExhibition(ctx context.Context, id int64) error {
	if err := s.exhibitionRepo.DeleteExhibition(ctx, id); err != nil {
		if errors.Is(err, repository.ErrExhibitionNotFound) {
			return domainerrors.ErrExhibitionNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to delete exhibition")
	}

	return nil
}
