package storage

import (
	"sync"

	"github.com/aburaya/english-trainer-bot/internal/domain/entities"
)

// SessionStore provides in-memory storage for per-user training
// sessions. Sessions are created lazily with defaults on first access
// and live until process restart.
//
// Access goes through With, which holds a per-user lock for the whole
// callback: two rapid messages from the same user never race on the
// same session, while different users proceed concurrently.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[int64]*lockedSession
}

type lockedSession struct {
	mu      sync.Mutex
	session *entities.Session
}

// NewSessionStore creates a new SessionStore.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[int64]*lockedSession),
	}
}

// With runs fn with exclusive access to the user's session, creating
// it with defaults if the user has none yet.
func (s *SessionStore) With(userID int64, fn func(*entities.Session)) {
	ls := s.get(userID)

	ls.mu.Lock()
	defer ls.mu.Unlock()
	fn(ls.session)
}

func (s *SessionStore) get(userID int64) *lockedSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	ls, ok := s.sessions[userID]
	if !ok {
		ls = &lockedSession{session: entities.NewSession()}
		s.sessions[userID] = ls
	}

	return ls
}
