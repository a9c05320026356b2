// Package model contains the GORM-specific structs mapping entities to tables.
package model

import "time"

// UserModel is the GORM-specific struct for the 'users' table.
type UserModel struct {
	ID                 int64   `gorm:"primaryKey;autoIncrement"`
	Username           string  `gorm:"size:64;not null;uniqueIndex"`
	Password           string  `gorm:"size:255;not null"`
	Email              string  `gorm:"size:255;not null;uniqueIndex"`
	FullName           *string `gorm:"size:255"`
	IsAdmin            bool    `gorm:"not null;default:false"`
	LanguagePreference string  `gorm:"size:8;not null;default:'en'"`
	CreatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
