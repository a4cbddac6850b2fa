package cart

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

func (r *memoryRepository) Items(_ context.Context, userID string) ([]store.CartItem, error) {
	var out []store.CartItem
	r.store.View(func(d *store.Data) {
		for _, item := range d.Carts[userID] {
			out = append(out, *item)
		}
	})
	return out, nil
}

func (r *memoryRepository) UpsertItem(_ context.Context, userID, productID string, quantity int) error {
	return r.store.Update(func(d *store.Data) error {
		for _, item := range d.Carts[userID] {
			if item.ProductID == productID {
				item.Quantity = quantity
				return nil
			}
		}
		d.Carts[userID] = append(d.Carts[userID], &store.CartItem{ProductID: productID, Quantity: quantity})
		return nil
	})
}

func (r *memoryRepository) RemoveItem(_ context.Context, userID, productID string) error {
	return r.store.Update(func(d *store.Data) error {
		items := d.Carts[userID]
		for i, item := range items {
			if item.ProductID == productID {
				d.Carts[userID] = append(items[:i], items[i+1:]...)
				return nil
			}
		}
		return nil
	})
}

func (r *memoryRepository) Clear(_ context.Context, userID string) error {
	return r.store.Update(func(d *store.Data) error {
		delete(d.Carts, userID)
		return nil
	})
}

func (r *memoryRepository) GetProduct(_ context.Context, id string) (*store.Product, error) {
	var found *store.Product
	r.store.View(func(d *store.Data) {
		if p := d.FindProduct(id); p != nil {
			cp := *p
			found = &cp
		}
	})
	if found == nil {
		return nil, store.ErrNotFound
	}
	return found, nil
}
