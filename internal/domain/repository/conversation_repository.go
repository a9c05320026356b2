package repository

import (
	"context"

	"musea/internal/domain/entity"
	"musea/internal/errors"
)

// ErrConversationNotFound is returned when a conversation is not found.
var ErrConversationNotFound = errors.New("conversation not found")

// ConversationRepository defines the interface for chatbot conversation and
// message persistence.
type ConversationRepository interface {
	// CreateConversation persists a new conversation and assigns its
	// identifier. An empty language defaults to "en".
	CreateConversation(ctx context.Context, conversation *entity.Conversation) error

	// FindConversationByID retrieves a conversation by its unique ID.
	FindConversationByID(ctx context.Context, id int64) (*entity.Conversation, error)

	// CreateMessage persists a new message and assigns its identifier and
	// creation timestamp.
	CreateMessage(ctx context.Context, message *entity.Message) error

	// ListMessagesByConversation retrieves a conversation's messages ordered
	// by creation time ascending.
	ListMessagesByConversation(ctx context.Context, conversationID int64) ([]*entity.Message, error)
}
