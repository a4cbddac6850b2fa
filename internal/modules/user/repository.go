package user

import (
	"context"

	"github.com/sunspire/solarmart-backend/internal/store"
)

// Repository defines data access for user accounts.
type Repository interface {
	CreateUser(ctx context.Context, u *store.User) error
	GetUserByID(ctx context.Context, id string) (*store.User, error)
	GetUserByEmail(ctx context.Context, email string) (*store.User, error)
	ListUsers(ctx context.Context) ([]*store.User, error)

	// UpdateUser replaces the stored user with the same id.
	UpdateUser(ctx context.Context, u *store.User) error
}
