package ticket

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sunspire/solarmart-backend/internal/store"
)

// Service defines support ticket business logic. Every mutation refreshes
// the ticket's updated-at timestamp.
type Service interface {
	CreateTicket(ctx context.Context, userID string, req CreateTicketRequest) (*store.Ticket, error)
	GetTicket(ctx context.Context, id string) (*store.Ticket, error)
	ListTickets(ctx context.Context, userID string) ([]*store.Ticket, error)
	UpdateTicket(ctx context.Context, id string, req UpdateTicketRequest) (*store.Ticket, error)
	AddComment(ctx context.Context, ticketID, userID, content string, isAdmin bool) (*store.TicketComment, error)
}

type service struct{ repo Repository }

// NewService creates a new ticket service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) CreateTicket(ctx context.Context, userID string, req CreateTicketRequest) (*store.Ticket, error) {
	if req.Title == "" || req.Description == "" {
		return nil, fmt.Errorf("title and description are required")
	}
	priority, err := parsePriority(req.Priority)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	t := &store.Ticket{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		Status:      store.TicketOpen,
		Priority:    priority,
		CreatedAt:   now,
		UpdatedAt:   now,
		UserID:      userID,
		Category:    req.Category,
		Attachments: req.Attachments,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *service) GetTicket(ctx context.Context, id string) (*store.Ticket, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListTickets(ctx context.Context, userID string) ([]*store.Ticket, error) {
	return s.repo.List(ctx, userID)
}

func (s *service) UpdateTicket(ctx context.Context, id string, req UpdateTicketRequest) (*store.Ticket, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		t.Title = *req.Title
	}
	if req.Description != nil {
		t.Description = *req.Description
	}
	if req.Status != nil {
		status, err := parseStatus(*req.Status)
		if err != nil {
			return nil, err
		}
		t.Status = status
	}
	if req.Priority != nil {
		priority, err := parsePriority(*req.Priority)
		if err != nil {
			return nil, err
		}
		t.Priority = priority
	}
	if req.AssignedTo != nil {
		t.AssignedTo = *req.AssignedTo
	}
	if req.Category != nil {
		t.Category = *req.Category
	}
	t.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *service) AddComment(ctx context.Context, ticketID, userID, content string, isAdmin bool) (*store.TicketComment, error) {
	if content == "" {
		return nil, fmt.Errorf("content is required")
	}
	t, err := s.repo.GetByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	comment := store.TicketComment{
		ID:        uuid.NewString(),
		TicketID:  ticketID,
		UserID:    userID,
		Content:   content,
		CreatedAt: time.Now().UTC(),
		IsAdmin:   isAdmin,
	}
	t.Comments = append(t.Comments, comment)
	t.UpdatedAt = comment.CreatedAt

	if err := s.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	return &comment, nil
}

func parseStatus(raw string) (store.TicketStatus, error) {
	s := store.TicketStatus(raw)
	switch s {
	case store.TicketOpen, store.TicketInProgress, store.TicketResolved, store.TicketClosed:
		return s, nil
	}
	return "", fmt.Errorf("invalid ticket status %q", raw)
}

func parsePriority(raw string) (store.TicketPriority, error) {
	if raw == "" {
		return store.PriorityMedium, nil
	}
	p := store.TicketPriority(raw)
	switch p {
	case store.PriorityLow, store.PriorityMedium, store.PriorityHigh, store.PriorityUrgent:
		return p, nil
	}
	return "", fmt.Errorf("invalid ticket priority %q", raw)
}
