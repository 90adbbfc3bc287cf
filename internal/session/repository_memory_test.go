package session

import (
	"errors"
	"testing"
	"time"
)

func TestRepositorySaveAndGet(t *testing.T) {
	repo := NewInMemoryRepository()

	sess := &Session{UserID: "u1", State: StateAwaitingMeetingConfirmation, PendingOrder: "小明：雞腿飯$80"}
	if err := repo.Save(sess); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sess.ID == "" {
		t.Fatalf("expected ID assigned on save")
	}

	got, err := repo.Get("u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.State != StateAwaitingMeetingConfirmation {
		t.Errorf("expected state preserved, got %s", got.State)
	}
	if got.PendingOrder != "小明：雞腿飯$80" {
		t.Errorf("pending order lost: %q", got.PendingOrder)
	}
}

func TestRepositoryGetReturnsCopy(t *testing.T) {
	repo := NewInMemoryRepository()
	repo.Save(&Session{UserID: "u1", State: StateIdle})

	got, _ := repo.Get("u1")
	got.State = StateAwaitingAttendeeNames

	again, _ := repo.Get("u1")
	if again.State != StateIdle {
		t.Errorf("mutating a returned session must not affect the store")
	}
}

func TestRepositoryDelete(t *testing.T) {
	repo := NewInMemoryRepository()
	repo.Save(&Session{UserID: "u1"})

	if err := repo.Delete("u1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := repo.Get("u1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
	if err := repo.Delete("u1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on double delete, got %v", err)
	}
}

func TestRepositoryPurgeStale(t *testing.T) {
	repo := NewInMemoryRepository()
	repo.Save(&Session{UserID: "u1"})
	repo.Save(&Session{UserID: "u2"})

	if n := repo.PurgeStale(time.Hour); n != 0 {
		t.Fatalf("fresh sessions must survive, purged %d", n)
	}

	time.Sleep(2 * time.Millisecond)
	if n := repo.PurgeStale(0); n != 2 {
		t.Fatalf("expected both sessions purged, got %d", n)
	}

	sessions, _ := repo.List()
	if len(sessions) != 0 {
		t.Errorf("expected empty table after purge, got %d", len(sessions))
	}
}
