package model

import "time"

// ConversationModel is the GORM-specific struct for the 'conversations' table.
type ConversationModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	UserID    *int64 `gorm:"index"`
	SessionID string `gorm:"size:128;not null;index"`
	Language  string `gorm:"size:8;not null;default:'en'"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ConversationModel) TableName() string {
	return "conversations"
}

// MessageModel is the GORM-specific struct for the 'messages' table.
type MessageModel struct {
	ID             int64     `gorm:"primaryKey;autoIncrement"`
	ConversationID int64     `gorm:"not null;index"`
	IsFromUser     bool      `gorm:"not null"`
	Content        string    `gorm:"type:text;not null"`
	CreatedAt      time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (MessageModel) TableName() string {
	return "messages"
}
