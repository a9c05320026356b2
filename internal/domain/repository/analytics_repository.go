package repository

import (
	"context"

	"musea/internal/domain/entity"
)

// AnalyticsRepository defines the interface for analytics persistence.
// Entries are append-only; there is no update or delete operation.
type AnalyticsRepository interface {
	// CreateAnalyticsEntry persists a new entry and assigns its identifier
	// and creation timestamp.
	CreateAnalyticsEntry(ctx context.Context, entry *entity.AnalyticsEntry) error

	// ListAnalyticsEntries retrieves all entries, newest first.
	ListAnalyticsEntries(ctx context.Context) ([]*entity.AnalyticsEntry, error)
}
