package entity

import "time"

// Message is one chat turn, ordered by creation time within its conversation.
type Message struct {
	ID             int64     `json:"id"`
	ConversationID int64     `json:"conversationId"`
	IsFromUser     bool      `json:"isFromUser"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"createdAt"`
}
