package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"musea/config"
	"musea/internal/domain/service"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			AccessTokenTTL:  time.Minute,
			RefreshTokenTTL: time.Hour,
		},
	}
	cfg.SecretKey.Access = "test-secret"
	cfg.Env.ServiceName = "musea-test"

	return cfg
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	t.Parallel()

	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	token, err := svc.GenerateAccessToken(42, true)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.True(t, claims.IsAdmin)
	assert.Equal(t, "musea-test", claims.Issuer)
}

func TestJWTService_RejectsTamperedToken(t *testing.T) {
	t.Parallel()

	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	token, err := svc.GenerateAccessToken(7, false)
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(token + "x")
	assert.Error(t, err)
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	t.Parallel()

	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	otherCfg := newTestConfig()
	otherCfg.SecretKey.Access = "other-secret"
	other, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	token, err := other.GenerateAccessToken(7, false)
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	t.Parallel()

	cfg := newTestConfig()
	cfg.Auth.AccessTokenTTL = -time.Minute
	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	token, err := svc.GenerateAccessToken(7, false)
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsUnexpectedSigningMethod(t *testing.T) {
	t.Parallel()

	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &service.Claims{UserID: 7})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestJWTService_RequiresSecret(t *testing.T) {
	t.Parallel()

	cfg := newTestConfig()
	cfg.SecretKey.Access = ""
	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}

func TestJWTService_RefreshTokenDuration(t *testing.T) {
	t.Parallel()

	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)
	assert.Equal(t, time.Hour, svc.RefreshTokenDuration())
}
