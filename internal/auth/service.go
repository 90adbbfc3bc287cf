package auth

import (
	"errors"
	"os"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid password")
)

const RoleAdmin = "ADMIN"

// Service authenticates the single operator account. The password hash
// comes from the environment; there is no user table.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

// LOGIN
func (s *Service) Login(password string) (string, error) {
	if password == "" {
		return "", errors.New("missing required fields")
	}

	hash := os.Getenv("ADMIN_PASSWORD_HASH")
	if hash == "" {
		return "", errors.New("ADMIN_PASSWORD_HASH not set")
	}

	err := bcrypt.CompareHashAndPassword(
		[]byte(hash),
		[]byte(password),
	)
	if err != nil {
		return "", ErrInvalidCredentials
	}

	return GenerateToken("admin", RoleAdmin)
}
