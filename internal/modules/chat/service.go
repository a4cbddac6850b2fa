package chat

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sunspire/solarmart-backend/internal/store"
)

// Exchange is a stored customer message and the bot's scripted answer.
type Exchange struct {
	Message *store.ChatMessage `json:"message"`
	Reply   *store.ChatMessage `json:"reply"`
}

// Service defines chat business logic.
type Service interface {
	// Post stores the user's message, generates the scripted bot reply
	// and stores that too.
	Post(ctx context.Context, userID, content string) (*Exchange, error)
	History(ctx context.Context, userID string) ([]*store.ChatMessage, error)
	MarkRead(ctx context.Context, userID string) error
}

type service struct{ repo Repository }

// NewService creates a new chat service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) Post(ctx context.Context, userID, content string) (*Exchange, error) {
	if content == "" {
		return nil, fmt.Errorf("content is required")
	}

	now := time.Now().UTC()
	msg := &store.ChatMessage{
		ID:        uuid.NewString(),
		UserID:    userID,
		Content:   content,
		Timestamp: now,
	}
	reply := &store.ChatMessage{
		ID:        uuid.NewString(),
		UserID:    userID,
		Content:   BotReply(content),
		Timestamp: now,
		IsBot:     true,
	}
	if err := s.repo.Append(ctx, msg, reply); err != nil {
		return nil, err
	}

	return &Exchange{Message: msg, Reply: reply}, nil
}

func (s *service) History(ctx context.Context, userID string) ([]*store.ChatMessage, error) {
	return s.repo.History(ctx, userID)
}

func (s *service) MarkRead(ctx context.Context, userID string) error {
	return s.repo.MarkRead(ctx, userID)
}
