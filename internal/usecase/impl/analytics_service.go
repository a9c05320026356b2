package impl

import (
	"context"

	"go.uber.org/fx"

	"musea/internal/domain/entity"
	domainerrors "musea/internal/domain/errors"
	"musea/internal/domain/repository"
	"musea/internal/usecase"
)

type analyticsService struct {
	analyticsRepo repository.AnalyticsRepository
}

// AnalyticsServiceParams holds dependencies for AnalyticsService, injected by Fx.
type AnalyticsServiceParams struct {
	fx.In

	AnalyticsRepo repository.AnalyticsRepository
}

// NewAnalyticsService creates a new analytics service instance.
func NewAnalyticsService(params AnalyticsServiceParams) usecase.AnalyticsUsecase {
	return &analyticsService{analyticsRepo: params.AnalyticsRepo}
}

func (s *analyticsService) ListAnalytics(ctx context.Context) ([]*entity.AnalyticsEntry, error) {
	entries, err := s.analyticsRepo.ListAnalyticsEntries(ctx)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list analytics entries")
	}

	return entries, nil
}

func (s *analyticsService) RecordAnalytics(ctx context.Context, input *usecase.AnalyticsInput) (*entity.AnalyticsEntry, error) {
	entry := &entity.AnalyticsEntry{
		Date:                 input.Date,
		VisitorCount:         input.VisitorCount,
		Revenue:              input.Revenue,
		PopularExhibitionID:  input.PopularExhibitionID,
		AverageVisitDuration: input.AverageVisitDuration,
	}
	if err := s.analyticsRepo.CreateAnalyticsEntry(ctx, entry); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create analytics entry")
	}

	return entry, nil
}
