package auth

import (
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestLoginIssuesToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-12345")

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Setenv("ADMIN_PASSWORD_HASH", string(hash))

	service := NewService()

	token, err := service.Login("hunter2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	userID, role, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("token did not validate: %v", err)
	}
	if userID != "admin" || role != RoleAdmin {
		t.Errorf("unexpected claims: userID=%s role=%s", userID, role)
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-12345")

	hash, _ := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.DefaultCost)
	t.Setenv("ADMIN_PASSWORD_HASH", string(hash))

	service := NewService()

	if _, err := service.Login("wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-12345")

	if _, _, err := ValidateToken("not-a-token"); err == nil {
		t.Fatalf("expected validation error")
	}
}
