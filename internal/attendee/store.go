package attendee

import "sync"

// Store keeps one attendee set per user. Sets configured here outlive a
// single tally (manual roster mode) but are never persisted.
type Store struct {
	mu   sync.RWMutex
	sets map[string]*Set
}

func NewStore() *Store {
	return &Store{sets: make(map[string]*Set)}
}

func (s *Store) Add(userID, name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, ok := s.sets[userID]
	if !ok {
		set = NewSet()
		s.sets[userID] = set
	}
	return set.Add(name)
}

func (s *Store) Remove(userID, name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, ok := s.sets[userID]
	if !ok {
		return false
	}
	return set.Remove(name)
}

func (s *Store) Clear(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sets, userID)
}

func (s *Store) List(userID string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	set, ok := s.sets[userID]
	if !ok {
		return nil
	}
	return set.List()
}

// Snapshot returns a copy of the user's set, or nil if none is
// configured. Callers classify against the copy, so a tally is not
// affected by concurrent roster edits.
func (s *Store) Snapshot(userID string) *Set {
	s.mu.RLock()
	defer s.mu.RUnlock()

	set, ok := s.sets[userID]
	if !ok {
		return nil
	}
	return set.clone()
}
