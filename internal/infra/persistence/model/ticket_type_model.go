package model

import "time"

// TicketTypeModel is the GORM-specific struct for the 'ticket_types' table.
// The includes list is stored as a JSON column via the gorm serializer.
type TicketTypeModel struct {
	ID          int64    `gorm:"primaryKey;autoIncrement"`
	Name        string   `gorm:"size:128;not null"`
	Description string   `gorm:"type:text;not null"`
	Price       float64  `gorm:"type:decimal(10,2);not null"`
	Color       string   `gorm:"size:32;not null;default:'primary'"`
	Includes    []string `gorm:"serializer:json;type:jsonb"`
	IsPopular   bool     `gorm:"not null;default:false"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (TicketTypeModel) TableName() string {
	return "ticket_types"
}
