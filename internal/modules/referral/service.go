package referral

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sunspire/solarmart-backend/internal/store"
)

// Conversion reward credited when a referred contact becomes a customer,
// in minor currency units.
const conversionReward = 5000

// Service defines referral business logic. Referrals only move forward:
// pending, signed-up, then converted.
type Service interface {
	AddReferral(ctx context.Context, referrerID, email string) (*store.Referral, error)
	ListReferrals(ctx context.Context, referrerID string) ([]*store.Referral, error)

	// AdvanceStatus moves a referral forward; converting stamps the
	// conversion date and credits the reward.
	AdvanceStatus(ctx context.Context, id string, status store.ReferralStatus) (*store.Referral, error)
}

type service struct{ repo Repository }

// NewService creates a new referral service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) AddReferral(ctx context.Context, referrerID, email string) (*store.Referral, error) {
	if email == "" {
		return nil, fmt.Errorf("referred_email is required")
	}
	ref := &store.Referral{
		ID:            uuid.NewString(),
		ReferrerID:    referrerID,
		ReferredEmail: email,
		Status:        store.ReferralPending,
		Date:          time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, ref); err != nil {
		return nil, err
	}
	return ref, nil
}

func (s *service) ListReferrals(ctx context.Context, referrerID string) ([]*store.Referral, error) {
	return s.repo.List(ctx, referrerID)
}

func (s *service) AdvanceStatus(ctx context.Context, id string, status store.ReferralStatus) (*store.Referral, error) {
	ref, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rank(status) <= rank(ref.Status) {
		return nil, fmt.Errorf("cannot move referral from %s to %s", ref.Status, status)
	}

	ref.Status = status
	if status == store.ReferralConverted {
		now := time.Now().UTC()
		ref.ConvertedOn = &now
		ref.Reward = conversionReward
	}

	if err := s.repo.Update(ctx, ref); err != nil {
		return nil, err
	}
	return ref, nil
}

func rank(s store.ReferralStatus) int {
	switch s {
	case store.ReferralPending:
		return 0
	case store.ReferralSignedUp:
		return 1
	case store.ReferralConverted:
		return 2
	}
	return -1
}
