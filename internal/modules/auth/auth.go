package auth

import (
	"context"

	"github.com/sunspire/solarmart-backend/internal/store"
)

// Service defines the interface for authentication-related business logic.
type Service interface {
	// Login verifies the credentials and requested role, refreshes the
	// account's last-login timestamp and returns a signed session token.
	Login(ctx context.Context, email, password string, role store.UserRole) (*Session, error)
}

// Session is a successful login: the token plus the account it names.
type Session struct {
	Token string      `json:"token"`
	User  *store.User `json:"user"`
}
