package postgres

import (
	"context"

	"musea/internal/domain/entity"
	"musea/internal/errors"
	"musea/internal/infra/persistence/model"
)

// CreateAnalyticsEntry persists a new analytics entry.
func (s *Store) CreateAnalyticsEntry(ctx context.Context, entry *entity.AnalyticsEntry) error {
	entryM := &model.AnalyticsModel{
		Date:                 entry.Date,
		VisitorCount:         entry.VisitorCount,
		Revenue:              entry.Revenue,
		PopularExhibitionID:  entry.PopularExhibitionID,
		AverageVisitDuration: entry.AverageVisitDuration,
		CreatedAt:            entry.CreatedAt,
	}

	if err := s.db.WithContext(ctx).Create(entryM).Error; err != nil {
		return errors.Wrap(err, "failed to create analytics entry")
	}

	entry.ID = entryM.ID
	entry.CreatedAt = entryM.CreatedAt

	return nil
}

// ListAnalyticsEntries retrieves all entries, newest first.
func (s *Store) ListAnalyticsEntries(ctx context.Context) ([]*entity.AnalyticsEntry, error) {
	var entryModels []*model.AnalyticsModel

	if err := s.db.WithContext(ctx).
		Order("date DESC, id DESC").
		Find(&entryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list analytics entries")
	}

	entries := make([]*entity.AnalyticsEntry, 0, len(entryModels))
	for _, entryM := range entryModels {
		entries = append(entries, &entity.AnalyticsEntry{
			ID:                   entryM.ID,
			Date:                 entryM.Date,
			VisitorCount:         entryM.VisitorCount,
			Revenue:              entryM.Revenue,
			PopularExhibitionID:  entryM.PopularExhibitionID,
			AverageVisitDuration: entryM.AverageVisitDuration,
			CreatedAt:            entryM.CreatedAt,
		})
	}

	return entries, nil
}
