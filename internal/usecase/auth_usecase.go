// Package usecase defines the application's use case interfaces and DTOs.
package usecase

import (
	"context"

	"musea/internal/domain/entity"
)

// RegisterInput carries the fields of a registration request.
type RegisterInput struct {
	Username           string
	Password           string
	Email              string
	FullName           *string
	LanguagePreference string
}

// LoginInput carries the credentials of a login request.
type LoginInput struct {
	Username string
	Password string
}

// AuthResult is returned on successful registration or login.
type AuthResult struct {
	User         *entity.User
	AccessToken  string
	RefreshToken string
}

// AuthUsecase defines the interface for authentication use cases.
type AuthUsecase interface {
	// Register creates a new visitor account and opens a session.
	// Taken usernames and emails are rejected as conflicts.
	Register(ctx context.Context, input *RegisterInput) (*AuthResult, error)

	// Login verifies credentials and opens a session.
	Login(ctx context.Context, input *LoginInput) (*AuthResult, error)

	// Refresh exchanges a valid refresh token for a new token pair.
	Refresh(ctx context.Context, refreshToken string) (*AuthResult, error)

	// Logout invalidates a refresh session. Unknown tokens are ignored.
	Logout(ctx context.Context, refreshToken string) error

	// CurrentUser loads the account behind an authenticated request.
	CurrentUser(ctx context.Context, userID int64) (*entity.User, error)
}
