package order

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

func (r *memoryRepository) CommitOrder(_ context.Context, userID string, o *store.Order, p *store.Payment) error {
	return r.store.Update(func(d *store.Data) error {
		// Validate every line against current stock before touching
		// anything, so a late failure cannot leave a partial decrement.
		for _, line := range o.Items {
			product := d.FindProduct(line.ProductID)
			if product == nil {
				return store.ErrNotFound
			}
			if line.Quantity > product.Stock {
				return ErrInsufficientStock
			}
		}
		for _, line := range o.Items {
			product := d.FindProduct(line.ProductID)
			product.Stock -= line.Quantity
			product.Sold += line.Quantity
			product.SyncStock()
		}
		d.Orders = append(d.Orders, cloneOrder(o))
		payment := *p
		d.Payments = append(d.Payments, &payment)
		delete(d.Carts, userID)
		return nil
	})
}

func (r *memoryRepository) GetOrderByID(_ context.Context, id string) (*store.Order, error) {
	var found *store.Order
	r.store.View(func(d *store.Data) {
		if o := d.FindOrder(id); o != nil {
			found = cloneOrder(o)
		}
	})
	if found == nil {
		return nil, store.ErrNotFound
	}
	return found, nil
}

func (r *memoryRepository) ListOrders(_ context.Context, userID string) ([]*store.Order, error) {
	var out []*store.Order
	r.store.View(func(d *store.Data) {
		for _, o := range d.Orders {
			if userID != "" && o.UserID != userID {
				continue
			}
			out = append(out, cloneOrder(o))
		}
	})
	return out, nil
}

func (r *memoryRepository) UpdateOrder(_ context.Context, o *store.Order) error {
	return r.store.Update(func(d *store.Data) error {
		existing := d.FindOrder(o.ID)
		if existing == nil {
			return store.ErrNotFound
		}
		*existing = *cloneOrder(o)
		return nil
	})
}

func (r *memoryRepository) GetTracking(_ context.Context, orderID string) (*store.Tracking, error) {
	var found *store.Tracking
	r.store.View(func(d *store.Data) {
		if t := d.FindTracking(orderID); t != nil {
			found = cloneTracking(t)
		}
	})
	if found == nil {
		return nil, store.ErrNotFound
	}
	return found, nil
}

func (r *memoryRepository) CreateTracking(_ context.Context, t *store.Tracking) error {
	return r.store.Update(func(d *store.Data) error {
		if d.FindTracking(t.OrderID) != nil {
			return ErrTrackingExists
		}
		d.Tracking = append(d.Tracking, cloneTracking(t))
		return nil
	})
}

func (r *memoryRepository) UpdateTracking(_ context.Context, t *store.Tracking) error {
	return r.store.Update(func(d *store.Data) error {
		existing := d.FindTracking(t.OrderID)
		if existing == nil {
			return store.ErrNotFound
		}
		*existing = *cloneTracking(t)
		return nil
	})
}

func (r *memoryRepository) GetUser(_ context.Context, id string) (*store.User, error) {
	var found *store.User
	r.store.View(func(d *store.Data) {
		if u := d.FindUser(id); u != nil {
			cp := *u
			found = &cp
		}
	})
	if found == nil {
		return nil, store.ErrNotFound
	}
	return found, nil
}

func (r *memoryRepository) CartItems(_ context.Context, userID string) ([]store.CartItem, error) {
	var out []store.CartItem
	r.store.View(func(d *store.Data) {
		for _, item := range d.Carts[userID] {
			out = append(out, *item)
		}
	})
	return out, nil
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

func cloneOrder(o *store.Order) *store.Order {
	cp := *o
	cp.Items = append([]store.CartItem(nil), o.Items...)
	return &cp
}

func cloneTracking(t *store.Tracking) *store.Tracking {
	cp := *t
	cp.Updates = append([]store.TrackingUpdate(nil), t.Updates...)
	return &cp
}
