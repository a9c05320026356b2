package postgres

import (
	"context"

	"gorm.io/gorm"

	"musea/internal/domain/entity"
	"musea/internal/domain/repository"
	"musea/internal/errors"
	"musea/internal/infra/persistence/model"
)

// CreateConversation persists a new chatbot conversation.
func (s *Store) CreateConversation(ctx context.Context, conversation *entity.Conversation) error {
	conversationM := fromConversationDomain(conversation)
	if conversationM.Language == "" {
		conversationM.Language = "en"
	}

	if err := s.db.WithContext(ctx).Create(conversationM).Error; err != nil {
		return errors.Wrap(err, "failed to create conversation")
	}

	conversation.ID = conversationM.ID
	conversation.Language = conversationM.Language
	conversation.CreatedAt = conversationM.CreatedAt

	return nil
}

// FindConversationByID retrieves a conversation by its unique ID.
func (s *Store) FindConversationByID(ctx context.Context, id int64) (*entity.Conversation, error) {
	var conversationM model.ConversationModel

	if err := s.db.WithContext(ctx).
		Where("id = ?", id).
		First(&conversationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrConversationNotFound
		}

		return nil, errors.Wrap(err, "failed to find conversation by ID")
	}

	return toConversationDomain(&conversationM), nil
}

// CreateMessage persists a new chat message.
func (s *Store) CreateMessage(ctx context.Context, message *entity.Message) error {
	messageM := &model.MessageModel{
		ConversationID: message.ConversationID,
		IsFromUser:     message.IsFromUser,
		Content:        message.Content,
		CreatedAt:      message.CreatedAt,
	}

	if err := s.db.WithContext(ctx).Create(messageM).Error; err != nil {
		return errors.Wrap(err, "failed to create message")
	}

	message.ID = messageM.ID
	message.CreatedAt = messageM.CreatedAt

	return nil
}

// ListMessagesByConversation retrieves a conversation's messages in order.
func (s *Store) ListMessagesByConversation(ctx context.Context, conversationID int64) ([]*entity.Message, error) {
	var messageModels []*model.MessageModel

	if err := s.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("created_at ASC, id ASC").
		Find(&messageModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list messages by conversation")
	}

	messages := make([]*entity.Message, 0, len(messageModels))
	for _, messageM := range messageModels {
		messages = append(messages, &entity.Message{
			ID:             messageM.ID,
			ConversationID: messageM.ConversationID,
			IsFromUser:     messageM.IsFromUser,
			Content:        messageM.Content,
			CreatedAt:      messageM.CreatedAt,
		})
	}

	return messages, nil
}

// --- Mapper Functions ---

func toConversationDomain(data *model.ConversationModel) *entity.Conversation {
	if data == nil {
		return nil
	}

	return &entity.Conversation{
		ID:        data.ID,
		UserID:    data.UserID,
		SessionID: data.SessionID,
		Language:  data.Language,
		CreatedAt: data.CreatedAt,
	}
}

func fromConversationDomain(data *entity.Conversation) *model.ConversationModel {
	if data == nil {
		return nil
	}

	return &model.ConversationModel{
		ID:        data.ID,
		UserID:    data.UserID,
		SessionID: data.SessionID,
		Language:  data.Language,
		CreatedAt: data.CreatedAt,
	}
}
