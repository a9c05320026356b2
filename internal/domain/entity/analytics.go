package entity

import "time"

// AnalyticsEntry is an append-only daily snapshot for the admin dashboard.
type AnalyticsEntry struct {
	ID                   int64     `json:"id"`
	Date                 time.Time `json:"date"`
	VisitorCount         int       `json:"visitorCount"`
	Revenue              float64   `json:"revenue"`
	PopularExhibitionID  *int64    `json:"popularExhibitionId,omitempty"`
	AverageVisitDuration *int      `json:"averageVisitDuration,omitempty"` // Minutes.
	CreatedAt            time.Time `json:"createdAt"`
}
