package model

import "time"

// ExhibitionModel is the GORM-specific struct for the 'exhibitions' table.
type ExhibitionModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	Title       string    `gorm:"size:255;not null"`
	Description string    `gorm:"type:text;not null"`
	ImageURL    *string   `gorm:"size:512"`
	StartDate   time.Time `gorm:"not null;index"`
	EndDate     time.Time `gorm:"not null"`
	IsFeatured  bool      `gorm:"not null;default:false;index"`
	IsNew       bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ExhibitionModel) TableName() string {
	return "exhibitions"
}
