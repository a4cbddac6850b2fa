package payment

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sunspire/solarmart-backend/internal/store"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	s, err := store.Open("")
	require.NoError(t, err)
	return NewService(NewMemoryRepository(s), NewSandboxGateway())
}

func TestSandboxGateway(t *testing.T) {
	g := NewSandboxGateway()

	txn, err := g.Charge(context.Background(), "2", 15000, "Credit Card")
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^TXN-\d{14}-\d{4}$`), txn)

	_, err = g.Charge(context.Background(), "2", 0, "Credit Card")
	assert.Error(t, err)

	assert.NoError(t, g.Void(context.Background(), txn))
	assert.Error(t, g.Void(context.Background(), ""))
}

func TestRecordPayment(t *testing.T) {
	svc := newTestService(t)

	p, err := svc.RecordPayment(context.Background(), RecordPaymentRequest{
		UserID:      "2",
		Amount:      1200,
		Description: "Monthly maintenance plan - Q2",
		Status:      "completed",
		Method:      "Credit Card",
	})
	require.NoError(t, err)

	assert.Equal(t, store.PaymentCompleted, p.Status)
	assert.NotEmpty(t, p.TransactionID, "completed payments carry a gateway transaction")
	assert.Empty(t, p.OrderID, "standalone records are not tied to an order")
}

func TestRecordPaymentDefaultsPending(t *testing.T) {
	svc := newTestService(t)

	p, err := svc.RecordPayment(context.Background(), RecordPaymentRequest{
		UserID:      "2",
		Amount:      850,
		Description: "System monitoring subscription",
	})
	require.NoError(t, err)

	assert.Equal(t, store.PaymentPending, p.Status)
	assert.Empty(t, p.TransactionID, "pending payments are not charged")
}

func TestRecordPaymentValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.RecordPayment(ctx, RecordPaymentRequest{Amount: 100})
	assert.Error(t, err)

	_, err = svc.RecordPayment(ctx, RecordPaymentRequest{UserID: "2", Amount: -5})
	assert.Error(t, err)

	_, err = svc.RecordPayment(ctx, RecordPaymentRequest{UserID: "2", Amount: 100, Status: "refunded"})
	assert.Error(t, err)
}

func TestListPayments(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	all, err := svc.ListPayments(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	mine, err := svc.ListPayments(ctx, "2")
	require.NoError(t, err)
	assert.Len(t, mine, 3)

	none, err := svc.ListPayments(ctx, "1")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestGetPayment(t *testing.T) {
	svc := newTestService(t)

	p, err := svc.GetPayment(context.Background(), "201")
	require.NoError(t, err)
	assert.Equal(t, int64(12500), p.Amount)

	_, err = svc.GetPayment(context.Background(), "ghost")
	assert.ErrorIs(t, err, store.ErrNotFound)
}
