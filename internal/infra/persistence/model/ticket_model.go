package model

import "time"

// TicketModel is the GORM-specific struct for the 'tickets' table.
type TicketModel struct {
	ID              int64     `gorm:"primaryKey;autoIncrement"`
	UserID          int64     `gorm:"not null;index"`
	TicketTypeID    int64     `gorm:"not null;index"`
	ExhibitionID    *int64    `gorm:"index"`
	Quantity        int       `gorm:"not null;default:1"`
	VisitDate       time.Time `gorm:"not null"`
	TotalPrice      float64   `gorm:"type:decimal(10,2);not null"`
	IsPaid          bool      `gorm:"not null;default:false"`
	PaymentIntentID *string   `gorm:"size:128"`
	QRCodeData      *string   `gorm:"type:text"`
	IsUsed          bool      `gorm:"not null;default:false"`
	CreatedAt       time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (TicketModel) TableName() string {
	return "tickets"
}
