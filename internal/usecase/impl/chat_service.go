package impl

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/fx"

	"musea/internal/domain/entity"
	domainerrors "musea/internal/domain/errors"
	"musea/internal/domain/repository"
	"musea/internal/domain/service"
	"musea/internal/errors"
	"musea/internal/infra/metrics"
	"musea/internal/usecase"
)

type chatService struct {
	conversationRepo repository.ConversationRepository
	responder        service.Responder
	metrics          *metrics.Metrics
}

// ChatServiceParams holds dependencies for ChatService, injected by Fx.
type ChatServiceParams struct {
	fx.In

	ConversationRepo repository.ConversationRepository
	Responder        service.Responder
	Metrics          *metrics.Metrics
}

// NewChatService creates a new chat service instance.
func NewChatService(params ChatServiceParams) usecase.ChatUsecase {
	return &chatService{
		conversationRepo: params.ConversationRepo,
		responder:        params.Responder,
		metrics:          params.Metrics,
	}
}

// StartConversation opens a conversation and posts the greeting.
func (s *chatService) StartConversation(ctx context.Context, input *usecase.StartConversationInput) (*usecase.ConversationResult, error) {
	conversation := &entity.Conversation{
		UserID:    input.UserID,
		SessionID: uuid.NewString(),
		Language:  input.Language,
	}
	if err := s.conversationRepo.CreateConversation(ctx, conversation); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create conversation")
	}

	welcome := &entity.Message{
		ConversationID: conversation.ID,
		IsFromUser:     false,
		Content:        s.responder.Welcome(),
	}
	if err := s.conversationRepo.CreateMessage(ctx, welcome); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create welcome message")
	}

	return s.transcript(ctx, conversation)
}

// SendMessage appends the visitor message and the assistant's reply.
func (s *chatService) SendMessage(ctx context.Context, conversationID int64, content string) (*usecase.ConversationResult, error) {
	conversation, err := s.findConversation(ctx, conversationID)
	if err != nil {
		return nil, err
	}

	userMessage := &entity.Message{
		ConversationID: conversation.ID,
		IsFromUser:     true,
		Content:        content,
	}
	if err := s.conversationRepo.CreateMessage(ctx, userMessage); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to save user message")
	}

	reply := &entity.Message{
		ConversationID: conversation.ID,
		IsFromUser:     false,
		Content:        s.responder.Reply(content),
	}
	if err := s.conversationRepo.CreateMessage(ctx, reply); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to save assistant reply")
	}

	s.metrics.ChatTurns.Inc()

	return s.transcript(ctx, conversation)
}

// GetConversation returns a conversation with its transcript.
func (s *chatService) GetConversation(ctx context.Context, conversationID int64) (*usecase.ConversationResult, error) {
	conversation, err := s.findConversation(ctx, conversationID)
	if err != nil {
		return nil, err
	}

	return s.transcript(ctx, conversation)
}

func (s *chatService) findConversation(ctx context.Context, conversationID int64) (*entity.Conversation, error) {
	conversation, err := s.conversationRepo.FindConversationByID(ctx, conversationID)
	if err != nil {
		if errors.Is(err, repository.ErrConversationNotFound) {
			return nil, domainerrors.ErrConversationNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find conversation")
	}

	return conversation, nil
}

func (s *chatService) transcript(ctx context.Context, conversation *entity.Conversation) (*usecase.ConversationResult, error) {
	messages, err := s.conversationRepo.ListMessagesByConversation(ctx, conversation.ID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list messages")
	}

	return &usecase.ConversationResult{
		Conversation: conversation,
		Messages:     messages,
	}, nil
}
