package timesheet

import (
	"sync"

	"github.com/google/uuid"
)

// Store holds in-flight editor drafts keyed by an opaque ID the session
// carries. Drafts are process-memory only; logout or session expiry orphans
// them and Delete reclaims them.
type Store struct {
	mu     sync.Mutex
	drafts map[string]*Editor
}

// NewStore returns an empty draft store.
func NewStore() *Store {
	return &Store{drafts: make(map[string]*Editor)}
}

// Put registers an editor and returns its draft ID.
func (s *Store) Put(e *Editor) string {
	id := uuid.NewString()
	s.mu.Lock()
	s.drafts[id] = e
	s.mu.Unlock()
	return id
}

// Get looks up a draft.
func (s *Store) Get(id string) (*Editor, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.drafts[id]
	return e, ok
}

// Delete discards a draft.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.drafts, id)
	s.mu.Unlock()
}
