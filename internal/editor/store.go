package editor

import (
	"sync"

	"github.com/google/uuid"

	"github.com/runprhq/runpr-backend/internal/domain"
)

// Store keeps one editor per authenticated user so the transport layer can
// route field mutations to the right working copy between loads and saves.
type Store struct {
	mu      sync.RWMutex
	editors map[uuid.UUID]*Editor
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{editors: make(map[uuid.UUID]*Editor)}
}

// Seed installs a fresh editor for the user, replacing any previous one,
// and returns it.
func (s *Store) Seed(userID uuid.UUID, profile domain.ProfileDraft, records []domain.RecordDraft) *Editor {
	e := New(profile, records)

	s.mu.Lock()
	s.editors[userID] = e
	s.mu.Unlock()

	return e
}

// Get returns the user's editor, or false if none has been seeded.
func (s *Store) Get(userID uuid.UUID) (*Editor, bool) {
	s.mu.RLock()
	e, ok := s.editors[userID]
	s.mu.RUnlock()
	return e, ok
}

// Remove discards the user's editor, typically on logout.
func (s *Store) Remove(userID uuid.UUID) {
	s.mu.Lock()
	delete(s.editors, userID)
	s.mu.Unlock()
}
