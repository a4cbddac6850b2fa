package referral

import (
	"context"

	"github.com/sunspire/solarmart-backend/internal/store"
)

// Repository defines data access for referral records.
type Repository interface {
	Create(ctx context.Context, ref *store.Referral) error
	GetByID(ctx context.Context, id string) (*store.Referral, error)

	// List returns all referrals, or only one referrer's when referrerID
	// is non-empty.
	List(ctx context.Context, referrerID string) ([]*store.Referral, error)

	// Update replaces the stored referral with the same id.
	Update(ctx context.Context, ref *store.Referral) error
}
