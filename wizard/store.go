package wizard

import (
	"sync"

	"github.com/google/uuid"

	"comment-pilot/apperrors"
)

// Store owns the active sessions. Each user flow gets its own instance with
// an explicit lifecycle; there is no process-wide ambient session.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{sessions: map[string]*Session{}}
}

// Create starts a fresh session for the user and returns it.
func (st *Store) Create(userID string) *Session {
	s := newSession(uuid.NewString(), userID)

	st.mu.Lock()
	st.sessions[s.id] = s
	st.mu.Unlock()
	return s
}

// Get returns the user's session. Another user's session id behaves as
// absent; sessions are strictly per-user.
func (st *Store) Get(id, userID string) (*Session, error) {
	st.mu.RLock()
	s, ok := st.sessions[id]
	st.mu.RUnlock()

	if !ok || s.userID != userID {
		return nil, apperrors.NewNotFound("wizard session", id)
	}
	return s, nil
}

// Discard drops the session entirely.
func (st *Store) Discard(id, userID string) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[id]
	if !ok || s.userID != userID {
		return apperrors.NewNotFound("wizard session", id)
	}
	delete(st.sessions, id)
	return nil
}
