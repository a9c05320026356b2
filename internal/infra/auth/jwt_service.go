package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"musea/config"
	"musea/internal/domain/service"
	"musea/internal/errors"
)

const (
	defaultAccessTokenTTL  = 15 * time.Minute
	defaultRefreshTokenTTL = 7 * 24 * time.Hour
)

// jwtService is a concrete implementation of the TokenService interface using JWT.
type jwtService struct {
	secretKey       []byte
	issuer          string
	accessTokenTTL  time.Duration
	refreshTokenTTL time.Duration
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("access token secret key is not configured")
	}

	accessTTL := defaultAccessTokenTTL
	refreshTTL := defaultRefreshTokenTTL
	if cfg.Auth != nil {
		if cfg.Auth.AccessTokenTTL > 0 {
			accessTTL = cfg.Auth.AccessTokenTTL
		}
		if cfg.Auth.RefreshTokenTTL > 0 {
			refreshTTL = cfg.Auth.RefreshTokenTTL
		}
	}

	return &jwtService{
		secretKey:       []byte(cfg.SecretKey.Access),
		issuer:          cfg.Env.ServiceName,
		accessTokenTTL:  accessTTL,
		refreshTokenTTL: refreshTTL,
	}, nil
}

// GenerateAccessToken creates a signed HS256 access token for a user.
func (s *jwtService) GenerateAccessToken(userID int64, isAdmin bool) (string, error) {
	now := time.Now()
	claims := &service.Claims{
		UserID:  userID,
		IsAdmin: isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", errors.Wrap(err, "sign access token")
	}

	return signed, nil
}

// ValidateAccessToken parses and verifies a token string, returning its claims.
func (s *jwtService) ValidateAccessToken(tokenString string) (*service.Claims, error) {
	claims := new(service.Claims)
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return s.secretKey, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "parse access token")
	}
	if !token.Valid {
		return nil, errors.New("invalid access token")
	}

	return claims, nil
}

// RefreshTokenDuration returns the configured refresh session lifetime.
func (s *jwtService) RefreshTokenDuration() time.Duration {
	return s.refreshTokenTTL
}
