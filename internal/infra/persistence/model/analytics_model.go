package model

import "time"

// AnalyticsModel is the GORM-specific struct for the 'analytics' table.
type AnalyticsModel struct {
	ID                   int64     `gorm:"primaryKey;autoIncrement"`
	Date                 time.Time `gorm:"not null;index"`
	VisitorCount         int       `gorm:"not null;default:0"`
	Revenue              float64   `gorm:"type:decimal(12,2);not null;default:0"`
	PopularExhibitionID  *int64
	AverageVisitDuration *int
	CreatedAt            time.Time
}

// TableName explicitly sets the table name for GORM.
func (AnalyticsModel) TableName() string {
	return "analytics"
}
