package chat

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

func (r *memoryRepository) Append(_ context.Context, messages ...*store.ChatMessage) error {
	return r.store.Update(func(d *store.Data) error {
		for _, m := range messages {
			cp := *m
			d.ChatMessages[m.UserID] = append(d.ChatMessages[m.UserID], &cp)
		}
		return nil
	})
}

func (r *memoryRepository) History(_ context.Context, userID string) ([]*store.ChatMessage, error) {
	var out []*store.ChatMessage
	r.store.View(func(d *store.Data) {
		for _, m := range d.ChatMessages[userID] {
			cp := *m
			out = append(out, &cp)
		}
	})
	return out, nil
}

func (r *memoryRepository) MarkRead(_ context.Context, userID string) error {
	return r.store.Update(func(d *store.Data) error {
		for _, m := range d.ChatMessages[userID] {
			m.Read = true
		}
		return nil
	})
}
