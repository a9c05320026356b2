package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"musea/internal/delivery/http/middleware"
	"musea/internal/delivery/http/response"
	"musea/internal/usecase"
)

// ChatHandler holds dependencies for the booking assistant handlers.
type ChatHandler struct {
	uc     usecase.ChatUsecase
	logger *slog.Logger
}

// NewChatHandler is the constructor for ChatHandler, injected by Fx.
func NewChatHandler(uc usecase.ChatUsecase, logger *slog.Logger) *ChatHandler {
	return &ChatHandler{uc: uc, logger: logger}
}

type startConversationRequest struct {
	Language string `json:"language"`
}

type sendMessageRequest struct {
	ConversationID int64  `json:"conversationId" validate:"required,gt=0"`
	Message        string `json:"message" validate:"required"`
}

// Start opens a conversation and returns the assistant's greeting. Anonymous
// visitors may chat; authenticated callers get the conversation tied to their
// account.
func (h *ChatHandler) Start(c echo.Context) error {
	var req startConversationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid chat input")
	}

	input := &usecase.StartConversationInput{Language: req.Language}
	if userID, ok := middleware.GetUserID(c); ok {
		input.UserID = &userID
	}

	result, err := h.uc.StartConversation(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, result, "Conversation started")
}

// SendMessage appends a visitor message and the assistant's reply.
func (h *ChatHandler) SendMessage(c echo.Context) error {
	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid chat input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	result, err := h.uc.SendMessage(c.Request().Context(), req.ConversationID, req.Message)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "")
}

// Get returns a conversation with its transcript.
func (h *ChatHandler) Get(c echo.Context) error {
	conversationID, err := parseIDParam(c)
	if err != nil {
		return errors.WithStack(err)
	}

	result, err := h.uc.GetConversation(c.Request().Context(), conversationID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "")
}
