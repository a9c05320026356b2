// Package session implements refresh session storage.
//
// The redis-backed store is preferred. When redis is not configured or is
// unreachable at startup, New degrades to an in-memory store so that the
// process still serves traffic; sessions are then lost on restart.
package session

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"musea/config"
	"musea/internal/domain/service"
	"musea/internal/errors"
)

const sessionKeyPrefix = "session:"

// New builds the session store from configuration. A failed redis ping is
// logged and answered with the in-memory fallback rather than an error.
func New(cfg *config.Config, logger *slog.Logger) service.SessionStore {
	if cfg.Redis == nil || cfg.Redis.Addr == "" {
		logger.Warn("redis is not configured, using in-memory session store")

		return NewMemoryStore()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis unreachable, falling back to in-memory session store",
			slog.String("addr", cfg.Redis.Addr),
			slog.Any("error", err))

		return NewMemoryStore()
	}

	logger.Info("session store connected to redis", slog.String("addr", cfg.Redis.Addr))

	return &redisStore{client: client}
}

type redisStore struct {
	client *redis.Client
}

// NewRedisStore wraps an existing redis client as a session store.
func NewRedisStore(client *redis.Client) service.SessionStore {
	return &redisStore{client: client}
}

func (s *redisStore) SaveSession(ctx context.Context, session *service.Session) error {
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return errors.New("session already expired")
	}

	raw, err := json.Marshal(session)
	if err != nil {
		return errors.Wrap(err, "marshal session")
	}

	if err := s.client.Set(ctx, sessionKeyPrefix+session.Token, raw, ttl).Err(); err != nil {
		return errors.Wrap(err, "save session to redis")
	}

	return nil
}

func (s *redisStore) FindSession(ctx context.Context, token string) (*service.Session, error) {
	raw, err := s.client.Get(ctx, sessionKeyPrefix+token).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, service.ErrSessionNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "load session from redis")
	}

	session := new(service.Session)
	if err := json.Unmarshal(raw, session); err != nil {
		return nil, errors.Wrap(err, "unmarshal session")
	}

	return session, nil
}

func (s *redisStore) DeleteSession(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, sessionKeyPrefix+token).Err(); err != nil {
		return errors.Wrap(err, "delete session from redis")
	}

	return nil
}
