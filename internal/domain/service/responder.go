package service

// Responder selects the chatbot's canned reply for a visitor message.
// Implementations are pure functions over the message text; the chat
// usecase persists messages around them.
type Responder interface {
	// Reply returns the response text for one visitor message.
	Reply(message string) string

	// Welcome returns the greeting that opens every conversation.
	Welcome() string
}
