package order

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sunspire/solarmart-backend/internal/modules/payment"
	"github.com/sunspire/solarmart-backend/internal/store"
)

// Service defines the order management business logic.
type Service interface {
	// PlaceOrder checks out the user's cart: validates stock, charges the
	// gateway, and commits the order, its payment and the inventory
	// decrement as one atomic step. On any failure nothing is mutated.
	PlaceOrder(ctx context.Context, userID string, req PlaceOrderRequest) (*store.Order, error)

	GetOrder(ctx context.Context, id string) (*store.Order, error)
	ListOrders(ctx context.Context, userID string) ([]*store.Order, error)

	// UpdateStatus moves an order to any known status. Transitions are
	// deliberately unconstrained; only unknown status names are rejected.
	UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (*store.Order, error)

	// AddTracking attaches a shipment record seeded with a picked-up scan
	// and forces the order to shipped with a descriptive note.
	AddTracking(ctx context.Context, orderID string, req AddTrackingRequest) (*store.Tracking, error)

	GetTracking(ctx context.Context, orderID string) (*store.Tracking, error)

	// UpdateTracking appends a scan event and moves the record-level
	// status along with it.
	UpdateTracking(ctx context.Context, orderID string, req TrackingUpdateRequest) (*store.Tracking, error)
}

type service struct {
	repo    Repository
	gateway payment.Gateway
}

// NewService creates a new order service.
func NewService(repo Repository, gateway payment.Gateway) Service {
	return &service{repo: repo, gateway: gateway}
}

func (s *service) PlaceOrder(ctx context.Context, userID string, req PlaceOrderRequest) (*store.Order, error) {
	u, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("acting user: %w", err)
	}
	items, err := s.repo.CartItems(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	// Price the cart from the live catalog. The total is frozen on the
	// order; the stock check is repeated inside the commit.
	var total int64
	for _, line := range items {
		p, err := s.repo.GetProduct(ctx, line.ProductID)
		if err != nil {
			return nil, fmt.Errorf("cart line %s: %w", line.ProductID, err)
		}
		if line.Quantity > p.Stock {
			return nil, ErrInsufficientStock
		}
		total += p.EffectivePrice() * int64(line.Quantity)
	}

	txn, err := s.gateway.Charge(ctx, userID, total, req.PaymentMethod)
	if err != nil {
		return nil, fmt.Errorf("payment failed: %w", err)
	}

	now := time.Now().UTC()
	o := &store.Order{
		ID:                uuid.NewString(),
		OrderNumber:       generateOrderNumber(now),
		UserID:            u.ID,
		Items:             items,
		TotalAmount:       total,
		Status:            store.OrderPending,
		CreatedAt:         now,
		UpdatedAt:         now,
		ShippingAddress:   req.ShippingAddress,
		PaymentMethod:     req.PaymentMethod,
		EstimatedDelivery: now.Add(7 * 24 * time.Hour).Format("2006-01-02"),
	}
	p := &store.Payment{
		ID:            uuid.NewString(),
		UserID:        u.ID,
		Amount:        total,
		Description:   fmt.Sprintf("Payment for order (%d items)", len(items)),
		Status:        store.PaymentCompleted,
		Date:          now,
		OrderID:       o.ID,
		Method:        req.PaymentMethod,
		TransactionID: txn,
	}

	if err := s.repo.CommitOrder(ctx, userID, o, p); err != nil {
		// The charge was captured but nothing was recorded; hand the
		// money back before reporting the failure.
		if voidErr := s.gateway.Void(ctx, txn); voidErr != nil {
			return nil, fmt.Errorf("%w (void charge %s: %v)", err, txn, voidErr)
		}
		return nil, err
	}
	return o, nil
}

func (s *service) GetOrder(ctx context.Context, id string) (*store.Order, error) {
	return s.repo.GetOrderByID(ctx, id)
}

func (s *service) ListOrders(ctx context.Context, userID string) ([]*store.Order, error) {
	return s.repo.ListOrders(ctx, userID)
}

func (s *service) UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (*store.Order, error) {
	status := store.OrderStatus(req.Status)
	if !store.ValidOrderStatus(status) {
		return nil, ErrInvalidStatus
	}
	o, err := s.repo.GetOrderByID(ctx, id)
	if err != nil {
		return nil, err
	}

	o.Status = status
	o.UpdatedAt = time.Now().UTC()
	if req.Notes != "" {
		if o.Notes != "" {
			o.Notes = o.Notes + "\n" + req.Notes
		} else {
			o.Notes = req.Notes
		}
	}

	if err := s.repo.UpdateOrder(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *service) AddTracking(ctx context.Context, orderID string, req AddTrackingRequest) (*store.Tracking, error) {
	if req.TrackingNumber == "" || req.Carrier == "" {
		return nil, fmt.Errorf("tracking_number and carrier are required")
	}
	if _, err := s.repo.GetOrderByID(ctx, orderID); err != nil {
		return nil, err
	}

	t := &store.Tracking{
		OrderID:           orderID,
		TrackingNumber:    req.TrackingNumber,
		Carrier:           req.Carrier,
		Status:            store.TrackingPickedUp,
		EstimatedDelivery: req.EstimatedDelivery,
		Updates: []store.TrackingUpdate{{
			Date:        time.Now().UTC(),
			Status:      store.TrackingPickedUp,
			Location:    "Solar Warehouse, Mumbai",
			Description: "Package picked up by carrier",
		}},
	}
	if err := s.repo.CreateTracking(ctx, t); err != nil {
		return nil, err
	}

	note := fmt.Sprintf("Shipped with %s. Tracking number: %s", req.Carrier, req.TrackingNumber)
	o, err := s.UpdateStatus(ctx, orderID, UpdateStatusRequest{Status: string(store.OrderShipped), Notes: note})
	if err != nil {
		return nil, err
	}
	o.TrackingNumber = req.TrackingNumber
	if req.EstimatedDelivery != "" {
		o.EstimatedDelivery = req.EstimatedDelivery
	}
	if err := s.repo.UpdateOrder(ctx, o); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *service) GetTracking(ctx context.Context, orderID string) (*store.Tracking, error) {
	return s.repo.GetTracking(ctx, orderID)
}

func (s *service) UpdateTracking(ctx context.Context, orderID string, req TrackingUpdateRequest) (*store.Tracking, error) {
	status := store.TrackingStatus(req.Status)
	if !store.ValidTrackingStatus(status) {
		return nil, ErrInvalidTracking
	}
	t, err := s.repo.GetTracking(ctx, orderID)
	if err != nil {
		return nil, err
	}

	t.Updates = append(t.Updates, store.TrackingUpdate{
		Date:        time.Now().UTC(),
		Status:      status,
		Location:    req.Location,
		Description: req.Description,
	})
	t.Status = status

	if err := s.repo.UpdateTracking(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// generateOrderNumber creates a human-readable order number: ORD-YYYYMMDD-XXXX
func generateOrderNumber(now time.Time) string {
	suffix := strings.ToUpper(uuid.NewString()[:4])
	return fmt.Sprintf("ORD-%s-%s", now.Format("20060102"), suffix)
}
