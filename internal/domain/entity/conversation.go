package entity

import "time"

// Conversation groups the messages of one chatbot session.
type Conversation struct {
	ID        int64     `json:"id"`
	UserID    *int64    `json:"userId,omitempty"` // Nil for anonymous visitors.
	SessionID string    `json:"sessionId"`        // Opaque, client-correlatable.
	Language  string    `json:"language"`         // Defaults to "en".
	CreatedAt time.Time `json:"createdAt"`
}
