// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"musea/internal/domain/entity"
	"musea/internal/errors"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateUser is returned when the username or email is already taken.
	ErrDuplicateUser = errors.New("username or email already exists")
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	// CreateUser persists a new user and assigns its identifier and
	// creation timestamp. Username and email uniqueness is enforced here.
	CreateUser(ctx context.Context, user *entity.User) error

	// FindUserByID retrieves a user by its unique ID.
	FindUserByID(ctx context.Context, id int64) (*entity.User, error)

	// FindUserByUsername retrieves a user by its unique username.
	FindUserByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindUserByEmail retrieves a user by its unique email.
	FindUserByEmail(ctx context.Context, email string) (*entity.User, error)

	// ListUsers retrieves all users, newest first.
	ListUsers(ctx context.Context) ([]*entity.User, error)
}
