package chat

import (
	"context"

	"github.com/sunspire/solarmart-backend/internal/store"
)

// Repository defines data access for chat histories. Messages are
// append-only; only the read flag ever changes.
type Repository interface {
	// Append stores the messages in order as one atomic write, so a
	// customer message and its reply land together or not at all.
	Append(ctx context.Context, messages ...*store.ChatMessage) error
	History(ctx context.Context, userID string) ([]*store.ChatMessage, error)

	// MarkRead flips the read flag on every message in the user's history.
	MarkRead(ctx context.Context, userID string) error
}
