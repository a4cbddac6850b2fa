package payment

import (
	"context"
	"fmt"
	"math/rand"
	"time"
)

// Gateway is the provider-agnostic interface a payment processor adapter
// must implement. The shop runs entirely against the sandbox adapter below;
// charging a real provider is out of scope.
type Gateway interface {
	// Charge captures the amount and returns a provider transaction id.
	Charge(ctx context.Context, userID string, amount int64, method string) (string, error)

	// Void cancels a captured charge that never made it into a payment
	// record, so a failed checkout leaves no money taken.
	Void(ctx context.Context, transactionID string) error
}

type sandboxGateway struct{}

// NewSandboxGateway creates a Gateway that approves every charge and
// fabricates a transaction id, standing in for a real processor.
func NewSandboxGateway() Gateway { return &sandboxGateway{} }

func (g *sandboxGateway) Charge(_ context.Context, _ string, amount int64, _ string) (string, error) {
	if amount <= 0 {
		return "", fmt.Errorf("amount must be greater than 0")
	}
	return fmt.Sprintf("TXN-%s-%04d", time.Now().UTC().Format("20060102150405"), rand.Intn(10000)), nil
}

func (g *sandboxGateway) Void(_ context.Context, transactionID string) error {
	if transactionID == "" {
		return fmt.Errorf("transaction id is required")
	}
	return nil
}
