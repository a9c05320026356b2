// Package entity contains the core business objects of the project.
package entity

import "time"

// User represents a registered visitor or administrator.
type User struct {
	ID                 int64     `json:"id"`
	Username           string    `json:"username"`           // Unique login name.
	Password           string    `json:"-"`                  // Bcrypt hash, never serialized.
	Email              string    `json:"email"`              // Unique contact address.
	FullName           *string   `json:"fullName,omitempty"` // Optional display name.
	IsAdmin            bool      `json:"isAdmin"`
	LanguagePreference string    `json:"languagePreference"` // ISO code, defaults to "en".
	CreatedAt          time.Time `json:"createdAt"`
}
