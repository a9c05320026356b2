package usecase

import (
	"context"

	"musea/internal/domain/entity"
)

// StartConversationInput carries the fields of a chat start request.
type StartConversationInput struct {
	UserID   *int64
	Language string
}

// ConversationResult bundles a conversation with its messages in order.
type ConversationResult struct {
	Conversation *entity.Conversation `json:"conversation"`
	Messages     []*entity.Message    `json:"messages"`
}

// ChatUsecase defines the interface for the rule-based booking assistant.
type ChatUsecase interface {
	// StartConversation opens a conversation and posts the assistant's
	// greeting as its first message.
	StartConversation(ctx context.Context, input *StartConversationInput) (*ConversationResult, error)

	// SendMessage appends a visitor message and the assistant's reply, then
	// returns the full transcript. Each turn adds exactly two messages.
	SendMessage(ctx context.Context, conversationID int64, content string) (*ConversationResult, error)

	// GetConversation returns a conversation with its transcript.
	GetConversation(ctx context.Context, conversationID int64) (*ConversationResult, error)
}
