package session

import (
	"sync"

	"github.com/samber/do"
)

// Store maps user ids to their sessions. Sessions live for the process
// lifetime, there is no eviction.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewStore(_ *do.Injector) (*Store, error) {
	return &Store{
		sessions: make(map[string]*Session),
	}, nil
}

// GetOrCreate returns the user's session, creating a fresh one on the first
// message.
func (s *Store) GetOrCreate(userID string) *Session {
	s.mu.RLock()
	sess, ok := s.sessions[userID]
	s.mu.RUnlock()

	if ok {
		return sess
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok = s.sessions[userID]; ok {
		return sess
	}

	sess = &Session{State: Searching}
	s.sessions[userID] = sess

	return sess
}

// Reset clears the user's session. A missing session is already reset.
func (s *Store) Reset(userID string) {
	s.mu.RLock()
	sess, ok := s.sessions[userID]
	s.mu.RUnlock()

	if !ok {
		return
	}

	sess.Lock()
	defer sess.Unlock()

	sess.Clear()
}

// Peek reports the user's current state without creating a session,
// for read-only status queries.
func (s *Store) Peek(userID string) State {
	s.mu.RLock()
	sess, ok := s.sessions[userID]
	s.mu.RUnlock()

	if !ok {
		return Searching
	}

	sess.Lock()
	defer sess.Unlock()

	return sess.State
}
