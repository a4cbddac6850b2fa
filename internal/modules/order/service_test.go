package order

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sunspire/solarmart-backend/internal/modules/payment"
	"github.com/sunspire/solarmart-backend/internal/store"
)

const testUser = "2"

func newTestService(t *testing.T) (Service, *store.Store) {
	t.Helper()
	s, err := store.Open("")
	require.NoError(t, err)
	return NewService(NewMemoryRepository(s), payment.NewSandboxGateway()), s
}

func fillCart(t *testing.T, s *store.Store, items ...store.CartItem) {
	t.Helper()
	err := s.Update(func(d *store.Data) error {
		for i := range items {
			item := items[i]
			d.Carts[testUser] = append(d.Carts[testUser], &item)
		}
		return nil
	})
	require.NoError(t, err)
}

func TestPlaceOrder(t *testing.T) {
	svc, s := newTestService(t)
	ctx := context.Background()
	fillCart(t, s,
		store.CartItem{ProductID: "p1", Quantity: 2}, // 22999 each (discounted)
		store.CartItem{ProductID: "p4", Quantity: 1}, // 14999
	)

	o, err := svc.PlaceOrder(ctx, testUser, PlaceOrderRequest{
		ShippingAddress: "123 Solar St, Sunny City",
		PaymentMethod:   "Credit Card",
	})
	require.NoError(t, err)

	assert.Equal(t, store.OrderPending, o.Status)
	assert.Equal(t, int64(2*22999+14999), o.TotalAmount)
	assert.Len(t, o.Items, 2)
	assert.NotEmpty(t, o.OrderNumber)
	assert.NotEmpty(t, o.EstimatedDelivery)

	s.View(func(d *store.Data) {
		// Cart is cleared, stock and sold moved by the line quantities.
		assert.Empty(t, d.Carts[testUser])

		p1 := d.FindProduct("p1")
		assert.Equal(t, 43, p1.Stock)
		assert.Equal(t, 25, p1.Sold)
		assert.True(t, p1.InStock)

		p4 := d.FindProduct("p4")
		assert.Equal(t, 59, p4.Stock)
		assert.Equal(t, 33, p4.Sold)

		// Exactly one new order and one new payment, linked both ways.
		assert.Len(t, d.Orders, 4)
		assert.Len(t, d.Payments, 4)
		pay := d.Payments[len(d.Payments)-1]
		assert.Equal(t, o.ID, pay.OrderID)
		assert.Equal(t, o.TotalAmount, pay.Amount)
		assert.Equal(t, store.PaymentCompleted, pay.Status)
		assert.NotEmpty(t, pay.TransactionID)
	})
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	svc, s := newTestService(t)

	_, err := svc.PlaceOrder(context.Background(), testUser, PlaceOrderRequest{})
	assert.ErrorIs(t, err, ErrEmptyCart)

	assertNothingMutated(t, s)
}

func TestPlaceOrderUnknownUser(t *testing.T) {
	svc, s := newTestService(t)

	_, err := svc.PlaceOrder(context.Background(), "ghost", PlaceOrderRequest{})
	assert.ErrorIs(t, err, store.ErrNotFound)

	assertNothingMutated(t, s)
}

func TestPlaceOrderInsufficientStock(t *testing.T) {
	svc, s := newTestService(t)
	fillCart(t, s, store.CartItem{ProductID: "p2", Quantity: 16}) // stock is 15

	_, err := svc.PlaceOrder(context.Background(), testUser, PlaceOrderRequest{})
	assert.ErrorIs(t, err, ErrInsufficientStock)

	s.View(func(d *store.Data) {
		p2 := d.FindProduct("p2")
		assert.Equal(t, 15, p2.Stock, "failed placement must not decrement stock")
		assert.Equal(t, 8, p2.Sold)
		assert.Len(t, d.Orders, 3)
		assert.Len(t, d.Payments, 3)
		assert.Len(t, d.Carts[testUser], 1, "failed placement must not clear the cart")
	})
}

// A line whose stock drains between pricing and commit rolls the whole
// placement back, including lines that would have fit.
func TestPlaceOrderIsAtomicAcrossLines(t *testing.T) {
	svc, s := newTestService(t)
	fillCart(t, s,
		store.CartItem{ProductID: "p1", Quantity: 1},
		store.CartItem{ProductID: "p3", Quantity: 31}, // stock is 30
	)

	_, err := svc.PlaceOrder(context.Background(), testUser, PlaceOrderRequest{})
	require.Error(t, err)

	s.View(func(d *store.Data) {
		assert.Equal(t, 45, d.FindProduct("p1").Stock)
		assert.Equal(t, 30, d.FindProduct("p3").Stock)
		assert.Len(t, d.Orders, 3)
	})
}

// staleStockRepository reports more stock than the store holds, so the
// service's optimistic check passes and the failure lands in the commit.
type staleStockRepository struct {
	Repository
}

func (r *staleStockRepository) GetProduct(ctx context.Context, id string) (*store.Product, error) {
	p, err := r.Repository.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Stock += 100
	return p, nil
}

type recordingGateway struct {
	charged string
	voided  string
}

func (g *recordingGateway) Charge(context.Context, string, int64, string) (string, error) {
	g.charged = "TXN-TEST-0001"
	return g.charged, nil
}

func (g *recordingGateway) Void(_ context.Context, transactionID string) error {
	g.voided = transactionID
	return nil
}

// A charge captured for a checkout that fails its commit is voided, so a
// real gateway adapter would not keep money with no payment record.
func TestPlaceOrderVoidsChargeOnCommitFailure(t *testing.T) {
	s, err := store.Open("")
	require.NoError(t, err)
	gateway := &recordingGateway{}
	svc := NewService(&staleStockRepository{Repository: NewMemoryRepository(s)}, gateway)
	fillCart(t, s, store.CartItem{ProductID: "p2", Quantity: 16}) // stock is 15

	_, err = svc.PlaceOrder(context.Background(), testUser, PlaceOrderRequest{})
	assert.ErrorIs(t, err, ErrInsufficientStock)

	assert.NotEmpty(t, gateway.charged)
	assert.Equal(t, gateway.charged, gateway.voided)

	s.View(func(d *store.Data) {
		assert.Equal(t, 15, d.FindProduct("p2").Stock)
		assert.Len(t, d.Orders, 3)
		assert.Len(t, d.Payments, 3)
	})
}

func assertNothingMutated(t *testing.T, s *store.Store) {
	t.Helper()
	s.View(func(d *store.Data) {
		assert.Len(t, d.Orders, 3)
		assert.Len(t, d.Payments, 3)
		assert.Equal(t, 45, d.FindProduct("p1").Stock)
	})
}

func TestUpdateStatus(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	o, err := svc.UpdateStatus(ctx, "ord_1652347", UpdateStatusRequest{Status: "delivered"})
	require.NoError(t, err)
	assert.Equal(t, store.OrderDelivered, o.Status)

	fetched, err := svc.GetOrder(ctx, "ord_1652347")
	require.NoError(t, err)
	assert.Equal(t, store.OrderDelivered, fetched.Status)
}

func TestUpdateStatusAppendsNotes(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	o, err := svc.UpdateStatus(ctx, "ord_1652345", UpdateStatusRequest{Status: "delivered", Notes: "left at door"})
	require.NoError(t, err)
	assert.Equal(t, "Customer requested installation support.\nleft at door", o.Notes)
}

func TestUpdateStatusValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.UpdateStatus(ctx, "ord_1652347", UpdateStatusRequest{Status: "teleported"})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = svc.UpdateStatus(ctx, "ghost", UpdateStatusRequest{Status: "delivered"})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

// Transitions are not constrained to move forward; the permissive model
// follows the admin tooling, which reuses the same dropdown for fixes.
func TestUpdateStatusAllowsBackwardTransitions(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	o, err := svc.UpdateStatus(ctx, "ord_1652345", UpdateStatusRequest{Status: "pending"})
	require.NoError(t, err)
	assert.Equal(t, store.OrderPending, o.Status)
}

func TestAddTracking(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	tr, err := svc.AddTracking(ctx, "ord_1652347", AddTrackingRequest{
		TrackingNumber:    "TRK555000111",
		Carrier:           "Solar Express",
		EstimatedDelivery: "2025-05-10",
	})
	require.NoError(t, err)

	assert.Equal(t, store.TrackingPickedUp, tr.Status)
	require.Len(t, tr.Updates, 1)
	assert.Equal(t, store.TrackingPickedUp, tr.Updates[0].Status)

	o, err := svc.GetOrder(ctx, "ord_1652347")
	require.NoError(t, err)
	assert.Equal(t, store.OrderShipped, o.Status)
	assert.Equal(t, "TRK555000111", o.TrackingNumber)
	assert.Contains(t, o.Notes, "Shipped with Solar Express")

	// Second attachment attempt conflicts.
	_, err = svc.AddTracking(ctx, "ord_1652347", AddTrackingRequest{TrackingNumber: "x", Carrier: "y"})
	assert.ErrorIs(t, err, ErrTrackingExists)
}

func TestAddTrackingUnknownOrder(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.AddTracking(context.Background(), "ghost", AddTrackingRequest{TrackingNumber: "x", Carrier: "y"})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestUpdateTracking(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	tr, err := svc.UpdateTracking(ctx, "ord_1652346", TrackingUpdateRequest{
		Status:      "out-for-delivery",
		Location:    "Sunny City depot",
		Description: "Out for delivery",
	})
	require.NoError(t, err)

	assert.Equal(t, store.TrackingOutForDelivery, tr.Status)
	require.Len(t, tr.Updates, 3)
	assert.Equal(t, store.TrackingOutForDelivery, tr.Updates[2].Status)
}

func TestUpdateTrackingRejectsUnknownStatus(t *testing.T) {
	svc, s := newTestService(t)

	_, err := svc.UpdateTracking(context.Background(), "ord_1652346", TrackingUpdateRequest{Status: "lost-in-space"})
	assert.ErrorIs(t, err, ErrInvalidTracking)

	s.View(func(d *store.Data) {
		assert.Len(t, d.FindTracking("ord_1652346").Updates, 2)
	})
}

func TestListOrders(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	all, err := svc.ListOrders(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	mine, err := svc.ListOrders(ctx, testUser)
	require.NoError(t, err)
	assert.Len(t, mine, 3)

	none, err := svc.ListOrders(ctx, "1")
	require.NoError(t, err)
	assert.Empty(t, none)
}
