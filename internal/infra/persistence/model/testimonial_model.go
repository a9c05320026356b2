package model

import "time"

// TestimonialModel is the GORM-specific struct for the 'testimonials' table.
type TestimonialModel struct {
	ID         int64   `gorm:"primaryKey;autoIncrement"`
	Name       string  `gorm:"size:128;not null"`
	Role       *string `gorm:"size:128"`
	Content    string  `gorm:"type:text;not null"`
	Rating     int     `gorm:"not null"`
	AvatarURL  *string `gorm:"size:512"`
	IsApproved bool    `gorm:"not null;default:false;index"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (TestimonialModel) TableName() string {
	return "testimonials"
}
