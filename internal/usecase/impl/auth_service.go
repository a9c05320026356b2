// Package impl contains the concrete use case services wired together by fx.
package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.uber.org/fx"

	"musea/internal/domain/entity"
	domainerrors "musea/internal/domain/errors"
	"musea/internal/domain/repository"
	"musea/internal/domain/service"
	"musea/internal/errors"
	"musea/internal/infra/metrics"
	"musea/internal/usecase"
)

type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	sessionStore service.SessionStore
	metrics      *metrics.Metrics
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	SessionStore service.SessionStore
	Metrics      *metrics.Metrics
	Logger       *slog.Logger
}

// NewAuthService creates a new authentication service instance.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		sessionStore: params.SessionStore,
		metrics:      params.Metrics,
		logger:       params.Logger,
	}
}

// Register creates a new visitor account and opens a session.
func (s *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthResult, error) {
	if _, err := s.userRepo.FindUserByUsername(ctx, input.Username); err == nil {
		return nil, domainerrors.ErrUsernameTaken
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to check username")
	}

	if _, err := s.userRepo.FindUserByEmail(ctx, input.Email); err == nil {
		return nil, domainerrors.ErrEmailTaken
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to check email")
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrInternalError.WithDetails("failed to hash password")
	}

	user := &entity.User{
		Username:           input.Username,
		Password:           hash,
		Email:              input.Email,
		FullName:           input.FullName,
		LanguagePreference: input.LanguagePreference,
	}
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			// Lost a race against a concurrent registration.
			return nil, domainerrors.ErrUsernameTaken
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	s.metrics.UsersRegistered.Inc()
	s.logger.Info("user registered",
		slog.Int64("userId", user.ID),
		slog.String("username", user.Username))

	return s.openSession(ctx, user)
}

// Login verifies credentials and opens a session.
func (s *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthResult, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user")
	}

	if !s.hasher.Check(input.Password, user.Password) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	return s.openSession(ctx, user)
}

// Refresh exchanges a valid refresh token for a new token pair. The old
// session is rotated out.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*usecase.AuthResult, error) {
	session, err := s.sessionStore.FindSession(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			return nil, domainerrors.ErrSessionInvalid
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load session")
	}

	user, err := s.userRepo.FindUserByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrSessionInvalid
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user")
	}

	if err := s.sessionStore.DeleteSession(ctx, refreshToken); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to rotate session")
	}

	return s.openSession(ctx, user)
}

// Logout invalidates a refresh session.
func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	if err := s.sessionStore.DeleteSession(ctx, refreshToken); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete session")
	}

	return nil
}

// CurrentUser loads the account behind an authenticated request.
func (s *authService) CurrentUser(ctx context.Context, userID int64) (*entity.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user")
	}

	return user, nil
}

func (s *authService) openSession(ctx context.Context, user *entity.User) (*usecase.AuthResult, error) {
	accessToken, err := s.tokenService.GenerateAccessToken(user.ID, user.IsAdmin)
	if err != nil {
		return nil, domainerrors.ErrInternalError.WithDetails("failed to generate access token")
	}

	refreshToken := uuid.NewString()
	session := &service.Session{
		Token:     refreshToken,
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(s.tokenService.RefreshTokenDuration()),
	}
	if err := s.sessionStore.SaveSession(ctx, session); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to save session")
	}

	return &usecase.AuthResult{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
