package session

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"marketfront/internal/domain/entity"
	"marketfront/internal/domain/store"
)

// memoryStore keeps session records in process memory. Used when no Redis
// is configured, and by tests. Records do not survive a restart.
type memoryStore struct {
	mu      sync.RWMutex
	records map[string][]byte
}

// NewMemoryStore returns an in-memory SessionStore.
func NewMemoryStore() store.SessionStore {
	return &memoryStore{records: make(map[string][]byte)}
}

// Save writes the session record under its ID.
func (s *memoryStore) Save(_ context.Context, session *entity.Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[session.ID] = raw

	return nil
}

// Load retrieves a session record by ID, honoring its expiry.
func (s *memoryStore) Load(_ context.Context, sessionID string) (*entity.Session, error) {
	s.mu.RLock()
	raw, ok := s.records[sessionID]
	s.mu.RUnlock()
	if !ok {
		return nil, store.ErrSessionNotFound
	}

	session := &entity.Session{}
	if err := json.Unmarshal(raw, session); err != nil {
		return nil, store.ErrSessionCorrupted
	}

	if session.Expired(time.Now()) {
		s.mu.Lock()
		delete(s.records, sessionID)
		s.mu.Unlock()

		return nil, store.ErrSessionNotFound
	}

	return session, nil
}

// Delete removes the session record.
func (s *memoryStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, sessionID)

	return nil
}

// Corrupt overwrites a stored record with unparseable bytes. Test hook for
// exercising the corrupted-session path.
func (s *memoryStore) Corrupt(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[sessionID]; ok {
		s.records[sessionID] = []byte("{not-json")
	}
}
