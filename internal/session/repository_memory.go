package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type InMemoryRepository struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		sessions: make(map[string]*Session),
	}
}

func (r *InMemoryRepository) Get(userID string) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[userID]
	if !ok {
		return nil, ErrNotFound
	}
	copy := *s
	return &copy, nil
}

func (r *InMemoryRepository) Save(session *Session) error {
	// Generate UUID if not already set
	if session.ID == "" {
		session.ID = uuid.New().String()
	}
	session.UpdatedAt = time.Now()

	r.mu.Lock()
	defer r.mu.Unlock()

	copy := *session
	r.sessions[session.UserID] = &copy
	return nil
}

func (r *InMemoryRepository) Delete(userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[userID]; !ok {
		return ErrNotFound
	}
	delete(r.sessions, userID)
	return nil
}

func (r *InMemoryRepository) List() ([]*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		copy := *s
		out = append(out, &copy)
	}
	return out, nil
}

// PurgeStale drops sessions idle longer than ttl and returns how many
// were removed.
func (r *InMemoryRepository) PurgeStale(ttl time.Duration) int {
	cutoff := time.Now().Add(-ttl)

	r.mu.Lock()
	defer r.mu.Unlock()

	purged := 0
	for userID, s := range r.sessions {
		if s.UpdatedAt.Before(cutoff) {
			delete(r.sessions, userID)
			purged++
		}
	}
	return purged
}
