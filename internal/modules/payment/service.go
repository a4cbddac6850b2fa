package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sunspire/solarmart-backend/internal/store"
)

// Service defines payment record business logic.
type Service interface {
	// RecordPayment creates a standalone payment record (installation
	// invoice, maintenance plan, subscription).
	RecordPayment(ctx context.Context, req RecordPaymentRequest) (*store.Payment, error)
	GetPayment(ctx context.Context, id string) (*store.Payment, error)
	ListPayments(ctx context.Context, userID string) ([]*store.Payment, error)
}

// RecordPaymentRequest is the payload for creating a standalone record.
type RecordPaymentRequest struct {
	UserID      string `json:"user_id"`
	Amount      int64  `json:"amount"`
	Description string `json:"description"`
	Status      string `json:"status,omitempty"`
	Method      string `json:"method,omitempty"`
}

type service struct {
	repo    Repository
	gateway Gateway
}

// NewService creates a new payment service.
func NewService(repo Repository, gateway Gateway) Service {
	return &service{repo: repo, gateway: gateway}
}

func (s *service) RecordPayment(ctx context.Context, req RecordPaymentRequest) (*store.Payment, error) {
	if req.UserID == "" {
		return nil, fmt.Errorf("user_id is required")
	}
	if req.Amount <= 0 {
		return nil, fmt.Errorf("amount must be > 0")
	}

	status := store.PaymentStatus(req.Status)
	if status == "" {
		status = store.PaymentPending
	}
	switch status {
	case store.PaymentPending, store.PaymentCompleted, store.PaymentFailed:
	default:
		return nil, fmt.Errorf("invalid payment status %q", req.Status)
	}

	p := &store.Payment{
		ID:          uuid.NewString(),
		UserID:      req.UserID,
		Amount:      req.Amount,
		Description: req.Description,
		Status:      status,
		Date:        time.Now().UTC(),
		Method:      req.Method,
	}
	if status == store.PaymentCompleted {
		txn, err := s.gateway.Charge(ctx, req.UserID, req.Amount, req.Method)
		if err != nil {
			return nil, fmt.Errorf("charge failed: %w", err)
		}
		p.TransactionID = txn
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) GetPayment(ctx context.Context, id string) (*store.Payment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListPayments(ctx context.Context, userID string) ([]*store.Payment, error) {
	return s.repo.List(ctx, userID)
}
