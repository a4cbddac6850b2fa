package user

import (
	"context"

	"github.com/sunspire/solarmart-backend/internal/store"
)

// Service defines the interface for user-related business logic.
type Service interface {
	RegisterUser(ctx context.Context, req RegisterRequest) (*store.User, error)
	GetUser(ctx context.Context, id string) (*store.User, error)
	UpdateUser(ctx context.Context, id string, req UpdateUserRequest) (*store.User, error)
	ListUsers(ctx context.Context) ([]*store.User, error)
}

// RegisterRequest holds the data for creating a customer account.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
	Plan     string `json:"plan,omitempty"`
}

// UpdateUserRequest is a partial profile update; nil fields are untouched.
type UpdateUserRequest struct {
	Name    *string `json:"name,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
	Plan    *string `json:"plan,omitempty"`
}
