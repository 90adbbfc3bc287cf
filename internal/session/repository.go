package session

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("session not found")

// Repository defines the session-table contract.
// The bot service depends ONLY on this interface.
type Repository interface {
	Get(userID string) (*Session, error)
	Save(session *Session) error
	Delete(userID string) error
	List() ([]*Session, error)
	PurgeStale(ttl time.Duration) int
}
