package impl

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"musea/config"
	domainerrors "musea/internal/domain/errors"
	"musea/internal/infra/auth"
	"musea/internal/infra/metrics"
	"musea/internal/infra/persistence/memory"
	"musea/internal/infra/session"
	"musea/internal/usecase"
)

func newAuthService(t *testing.T) usecase.AuthUsecase {
	t.Helper()

	store := memory.NewStore()
	require.NoError(t, store.InitializeData(context.Background()))

	cfg := &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:      bcrypt.MinCost,
			AccessTokenTTL:  time.Minute,
			RefreshTokenTTL: time.Hour,
		},
	}
	cfg.SecretKey.Access = "test-secret"

	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	return NewAuthService(AuthServiceParams{
		UserRepo:     store,
		Hasher:       auth.NewBcryptHasher(cfg),
		TokenService: tokenService,
		SessionStore: session.NewMemoryStore(),
		Metrics:      metrics.New(),
		Logger:       discardLogger(),
	})
}

func registerInput() *usecase.RegisterInput {
	return &usecase.RegisterInput{
		Username: "visitor",
		Password: "secret-password",
		Email:    "visitor@example.com",
	}
}

func TestRegister_OpensSession(t *testing.T) {
	t.Parallel()

	svc := newAuthService(t)

	result, err := svc.Register(context.Background(), registerInput())
	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)
	assert.Equal(t, "visitor", result.User.Username)
	assert.False(t, result.User.IsAdmin)
	assert.Equal(t, "en", result.User.LanguagePreference)
	// The stored password is hashed.
	assert.NotEqual(t, "secret-password", result.User.Password)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	t.Parallel()

	svc := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerInput())
	require.NoError(t, err)

	input := registerInput()
	input.Email = "other@example.com"
	_, err = svc.Register(ctx, input)
	assert.ErrorIs(t, err, domainerrors.ErrUsernameTaken)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()

	svc := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerInput())
	require.NoError(t, err)

	input := registerInput()
	input.Username = "othervisitor"
	_, err = svc.Register(ctx, input)
	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
}

func TestLogin(t *testing.T) {
	t.Parallel()

	svc := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerInput())
	require.NoError(t, err)

	result, err := svc.Login(ctx, &usecase.LoginInput{Username: "visitor", Password: "secret-password"})
	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)

	_, err = svc.Login(ctx, &usecase.LoginInput{Username: "visitor", Password: "wrong"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	_, err = svc.Login(ctx, &usecase.LoginInput{Username: "nobody", Password: "secret-password"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestLogin_SeededAdmin(t *testing.T) {
	t.Parallel()

	svc := newAuthService(t)

	result, err := svc.Login(context.Background(), &usecase.LoginInput{Username: "admin", Password: "admin123"})
	require.NoError(t, err)
	assert.True(t, result.User.IsAdmin)
}

func TestRefresh_RotatesSession(t *testing.T) {
	t.Parallel()

	svc := newAuthService(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, registerInput())
	require.NoError(t, err)

	refreshed, err := svc.Refresh(ctx, registered.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, registered.RefreshToken, refreshed.RefreshToken)

	// The old token is invalid after rotation.
	_, err = svc.Refresh(ctx, registered.RefreshToken)
	assert.ErrorIs(t, err, domainerrors.ErrSessionInvalid)
}

func TestLogout(t *testing.T) {
	t.Parallel()

	svc := newAuthService(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, registerInput())
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, registered.RefreshToken))

	_, err = svc.Refresh(ctx, registered.RefreshToken)
	assert.ErrorIs(t, err, domainerrors.ErrSessionInvalid)

	// Logging out an unknown token is not an error.
	require.NoError(t, svc.Logout(ctx, "unknown-token"))
}

func TestCurrentUser(t *testing.T) {
	t.Parallel()

	svc := newAuthService(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, registerInput())
	require.NoError(t, err)

	user, err := svc.CurrentUser(ctx, registered.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "visitor", user.Username)

	_, err = svc.CurrentUser(ctx, 999)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
