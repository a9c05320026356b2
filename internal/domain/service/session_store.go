package service

import (
	"context"
	"time"

	"musea/internal/errors"
)

// ErrSessionNotFound is returned when a session token is unknown or expired.
var ErrSessionNotFound = errors.New("session not found")

// Session is a refresh session correlating an opaque token to a user.
type Session struct {
	Token     string    `json:"token"`
	UserID    int64     `json:"userId"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// SessionStore persists refresh sessions. The production implementation is
// redis-backed; when redis is unreachable at startup the process degrades to
// an in-memory store, which loses sessions on restart.
type SessionStore interface {
	// SaveSession stores a session until its expiry.
	SaveSession(ctx context.Context, session *Session) error

	// FindSession retrieves a session by token. Expired or unknown tokens
	// return ErrSessionNotFound.
	FindSession(ctx context.Context, token string) (*Session, error)

	// DeleteSession removes a session. Deleting an unknown token is not an error.
	DeleteSession(ctx context.Context, token string) error
}
