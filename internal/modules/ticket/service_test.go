package ticket

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sunspire/solarmart-backend/internal/store"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	s, err := store.Open("")
	require.NoError(t, err)
	return NewService(NewMemoryRepository(s))
}

func strPtr(s string) *string { return &s }

func TestCreateTicket(t *testing.T) {
	svc := newTestService(t)

	tk, err := svc.CreateTicket(context.Background(), "2", CreateTicketRequest{
		Title:       "Inverter display blank",
		Description: "The inverter screen shows nothing since this morning.",
		Priority:    "high",
		Category:    "Technical",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, tk.ID)
	assert.Equal(t, store.TicketOpen, tk.Status)
	assert.Equal(t, store.PriorityHigh, tk.Priority)
	assert.Equal(t, "2", tk.UserID)
	assert.Equal(t, tk.CreatedAt, tk.UpdatedAt)
}

func TestCreateTicketDefaultsPriority(t *testing.T) {
	svc := newTestService(t)

	tk, err := svc.CreateTicket(context.Background(), "2", CreateTicketRequest{
		Title:       "Question",
		Description: "General question about my plan.",
	})
	require.NoError(t, err)
	assert.Equal(t, store.PriorityMedium, tk.Priority)
}

func TestCreateTicketValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateTicket(ctx, "2", CreateTicketRequest{Description: "no title"})
	assert.Error(t, err)

	_, err = svc.CreateTicket(ctx, "2", CreateTicketRequest{Title: "t", Description: "d", Priority: "extreme"})
	assert.Error(t, err)
}

func TestUpdateTicket(t *testing.T) {
	svc := newTestService(t)

	before, err := svc.GetTicket(context.Background(), "101")
	require.NoError(t, err)

	tk, err := svc.UpdateTicket(context.Background(), "101", UpdateTicketRequest{
		Status:     strPtr("in-progress"),
		AssignedTo: strPtr("1"),
	})
	require.NoError(t, err)

	assert.Equal(t, store.TicketInProgress, tk.Status)
	assert.Equal(t, "1", tk.AssignedTo)
	assert.Equal(t, before.Title, tk.Title, "untouched fields survive a partial update")
	assert.True(t, tk.UpdatedAt.After(before.UpdatedAt))
}

func TestUpdateTicketValidation(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.UpdateTicket(context.Background(), "101", UpdateTicketRequest{Status: strPtr("vanished")})
	assert.Error(t, err)

	_, err = svc.UpdateTicket(context.Background(), "ghost", UpdateTicketRequest{Status: strPtr("closed")})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestAddComment(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	c, err := svc.AddComment(ctx, "102", "1", "A technician is on the way.", true)
	require.NoError(t, err)
	assert.Equal(t, "102", c.TicketID)
	assert.True(t, c.IsAdmin)

	tk, err := svc.GetTicket(ctx, "102")
	require.NoError(t, err)
	require.Len(t, tk.Comments, 1)
	assert.Equal(t, c.ID, tk.Comments[0].ID)
	assert.Equal(t, c.CreatedAt, tk.UpdatedAt)
}

func TestAddCommentValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddComment(ctx, "102", "2", "", false)
	assert.Error(t, err)

	_, err = svc.AddComment(ctx, "ghost", "2", "hello", false)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestListTickets(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	all, err := svc.ListTickets(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 5)

	mine, err := svc.ListTickets(ctx, "2")
	require.NoError(t, err)
	assert.Len(t, mine, 5)

	none, err := svc.ListTickets(ctx, "1")
	require.NoError(t, err)
	assert.Empty(t, none)
}
