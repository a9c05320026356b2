package usecase

import (
	"context"
	"time"

	"musea/internal/domain/entity"
)

// AnalyticsInput carries the fields of a daily analytics snapshot.
type AnalyticsInput struct {
	Date                 time.Time
	VisitorCount         int
	Revenue              float64
	PopularExhibitionID  *int64
	AverageVisitDuration *int
}

// AnalyticsUsecase defines the interface for admin dashboard analytics.
type AnalyticsUsecase interface {
	// ListAnalytics returns all snapshots, newest first. Admin only.
	ListAnalytics(ctx context.Context) ([]*entity.AnalyticsEntry, error)

	// RecordAnalytics appends a daily snapshot. Admin only.
	RecordAnalytics(ctx context.Context, input *AnalyticsInput) (*entity.AnalyticsEntry, error)
}
