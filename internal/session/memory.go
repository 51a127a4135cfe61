package session

import "sync"

// MemStore is an in-memory Store. Used by tests and by callers that do not
// want the session to outlive the process.
type MemStore struct {
	mu   sync.RWMutex
	sess *Session
}

func NewMemStore() *MemStore {
	return &MemStore{}
}

func (s *MemStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.sess == nil {
		return ""
	}
	return s.sess.Token
}

func (s *MemStore) Current() (Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.sess == nil {
		return Session{}, ErrAuthenticationRequired
	}
	return *s.sess, nil
}

func (s *MemStore) Save(sess Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sess = &sess
	return nil
}

func (s *MemStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sess = nil
	return nil
}
