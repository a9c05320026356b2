package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims for access tokens.
type Claims struct {
	UserID  int64 `json:"uid"`
	IsAdmin bool  `json:"adm"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateAccessToken creates a signed access token for a user.
	GenerateAccessToken(userID int64, isAdmin bool) (string, error)

	// ValidateAccessToken checks a token string and returns its claims.
	ValidateAccessToken(tokenString string) (*Claims, error)

	// RefreshTokenDuration returns the configured refresh session lifetime.
	RefreshTokenDuration() time.Duration
}
