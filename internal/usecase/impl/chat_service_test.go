package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"musea/internal/domain/errors"
	"musea/internal/infra/chatbot"
	"musea/internal/infra/metrics"
	"musea/internal/infra/persistence/memory"
	"musea/internal/usecase"
)

func newChatService(t *testing.T) usecase.ChatUsecase {
	t.Helper()

	return NewChatService(ChatServiceParams{
		ConversationRepo: memory.NewStore(),
		Responder:        chatbot.NewResponder(),
		Metrics:          metrics.New(),
	})
}

func TestStartConversation_PostsGreeting(t *testing.T) {
	t.Parallel()

	svc := newChatService(t)

	result, err := svc.StartConversation(context.Background(), &usecase.StartConversationInput{})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Conversation.SessionID)
	assert.Equal(t, "en", result.Conversation.Language)
	require.Len(t, result.Messages, 1)
	assert.False(t, result.Messages[0].IsFromUser)
	assert.Contains(t, result.Messages[0].Content, "museum booking assistant")
}

func TestStartConversation_AnonymousAndAuthenticated(t *testing.T) {
	t.Parallel()

	svc := newChatService(t)
	ctx := context.Background()

	anonymous, err := svc.StartConversation(ctx, &usecase.StartConversationInput{})
	require.NoError(t, err)
	assert.Nil(t, anonymous.Conversation.UserID)

	userID := int64(7)
	authenticated, err := svc.StartConversation(ctx, &usecase.StartConversationInput{UserID: &userID, Language: "fr"})
	require.NoError(t, err)
	require.NotNil(t, authenticated.Conversation.UserID)
	assert.Equal(t, int64(7), *authenticated.Conversation.UserID)
	assert.Equal(t, "fr", authenticated.Conversation.Language)
}

func TestSendMessage_AddsTwoMessagesPerTurn(t *testing.T) {
	t.Parallel()

	svc := newChatService(t)
	ctx := context.Background()

	started, err := svc.StartConversation(ctx, &usecase.StartConversationInput{})
	require.NoError(t, err)

	result, err := svc.SendMessage(ctx, started.Conversation.ID, "what are your opening hours?")
	require.NoError(t, err)
	require.Len(t, result.Messages, 3) // greeting + visitor + reply

	visitor := result.Messages[1]
	reply := result.Messages[2]
	assert.True(t, visitor.IsFromUser)
	assert.Equal(t, "what are your opening hours?", visitor.Content)
	assert.False(t, reply.IsFromUser)
	assert.Contains(t, reply.Content, "closed on Mondays")

	result, err = svc.SendMessage(ctx, started.Conversation.ID, "thanks")
	require.NoError(t, err)
	assert.Len(t, result.Messages, 5)
}

func TestSendMessage_UnknownConversation(t *testing.T) {
	t.Parallel()

	svc := newChatService(t)
	_, err := svc.SendMessage(context.Background(), 999, "hello")
	assert.ErrorIs(t, err, errors.ErrConversationNotFound)
}

func TestGetConversation(t *testing.T) {
	t.Parallel()

	svc := newChatService(t)
	ctx := context.Background()

	started, err := svc.StartConversation(ctx, &usecase.StartConversationInput{})
	require.NoError(t, err)

	result, err := svc.GetConversation(ctx, started.Conversation.ID)
	require.NoError(t, err)
	assert.Equal(t, started.Conversation.ID, result.Conversation.ID)
	assert.Len(t, result.Messages, 1)

	_, err = svc.GetConversation(ctx, 999)
	assert.ErrorIs(t, err, errors.ErrConversationNotFound)
}
