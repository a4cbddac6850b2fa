package user

import (
	"context"

	"github.com/sunspire/solarmart-backend/internal/store"
)

type memoryRepository struct {
	store *store.Store
}

// NewMemoryRepository creates a Repository backed by the shared store.
func NewMemoryRepository(s *store.Store) Repository {
	return &memoryRepository{store: s}
}

func (r *memoryRepository) CreateUser(_ context.Context, u *store.User) error {
	return r.store.Update(func(d *store.Data) error {
		d.Users = append(d.Users, cloneUser(u))
		return nil
	})
}

func (r *memoryRepository) GetUserByID(_ context.Context, id string) (*store.User, error) {
	var found *store.User
	r.store.View(func(d *store.Data) {
		if u := d.FindUser(id); u != nil {
			found = cloneUser(u)
		}
	})
	if found == nil {
		return nil, store.ErrNotFound
	}
	return found, nil
}

func (r *memoryRepository) GetUserByEmail(_ context.Context, email string) (*store.User, error) {
	var found *store.User
	r.store.View(func(d *store.Data) {
		if u := d.FindUserByEmail(email); u != nil {
			found = cloneUser(u)
		}
	})
	if found == nil {
		return nil, store.ErrNotFound
	}
	return found, nil
}

func (r *memoryRepository) ListUsers(_ context.Context) ([]*store.User, error) {
	var out []*store.User
	r.store.View(func(d *store.Data) {
		for _, u := range d.Users {
			out = append(out, cloneUser(u))
		}
	})
	return out, nil
}

func (r *memoryRepository) UpdateUser(_ context.Context, u *store.User) error {
	return r.store.Update(func(d *store.Data) error {
		existing := d.FindUser(u.ID)
		if existing == nil {
			return store.ErrNotFound
		}
		*existing = *cloneUser(u)
		return nil
	})
}

func cloneUser(u *store.User) *store.User {
	cp := *u
	if u.LastLogin != nil {
		t := *u.LastLogin
		cp.LastLogin = &t
	}
	return &cp
}
