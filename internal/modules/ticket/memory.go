package ticket

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

func (r *memoryRepository) Create(_ context.Context, t *store.Ticket) error {
	return r.store.Update(func(d *store.Data) error {
		d.Tickets = append(d.Tickets, cloneTicket(t))
		return nil
	})
}

func (r *memoryRepository) GetByID(_ context.Context, id string) (*store.Ticket, error) {
	var found *store.Ticket
	r.store.View(func(d *store.Data) {
		if t := d.FindTicket(id); t != nil {
			found = cloneTicket(t)
		}
	})
	if found == nil {
		return nil, store.ErrNotFound
	}
	return found, nil
}

func (r *memoryRepository) List(_ context.Context, userID string) ([]*store.Ticket, error) {
	var out []*store.Ticket
	r.store.View(func(d *store.Data) {
		for _, t := range d.Tickets {
			if userID != "" && t.UserID != userID {
				continue
			}
			out = append(out, cloneTicket(t))
		}
	})
	return out, nil
}

func (r *memoryRepository) Update(_ context.Context, t *store.Ticket) error {
	return r.store.Update(func(d *store.Data) error {
		existing := d.FindTicket(t.ID)
		if existing == nil {
			return store.ErrNotFound
		}
		*existing = *cloneTicket(t)
		return nil
	})
}

func cloneTicket(t *store.Ticket) *store.Ticket {
	cp := *t
	cp.Attachments = append([]string(nil), t.Attachments...)
	cp.Comments = append([]store.TicketComment(nil), t.Comments...)
	return &cp
}
