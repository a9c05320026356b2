package session

import (
	"context"
	"sync"
	"time"

	"musea/internal/domain/service"
)

// memoryStore keeps sessions in a process-local map. Expired entries are
// pruned lazily on lookup.
type memoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*service.Session
}

// NewMemoryStore is the constructor for the in-memory session store.
func NewMemoryStore() service.SessionStore {
	return &memoryStore{sessions: make(map[string]*service.Session)}
}

func (s *memoryStore) SaveSession(_ context.Context, session *service.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *session
	s.sessions[session.Token] = &copied

	return nil
}

func (s *memoryStore) FindSession(_ context.Context, token string) (*service.Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return nil, service.ErrSessionNotFound
	}
	if time.Now().After(session.ExpiresAt) {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()

		return nil, service.ErrSessionNotFound
	}

	copied := *session

	return &copied, nil
}

func (s *memoryStore) DeleteSession(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)

	return nil
}
