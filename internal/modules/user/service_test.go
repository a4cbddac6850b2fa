package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sunspire/solarmart-backend/internal/store"
	"golang.org/x/crypto/bcrypt"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	s, err := store.Open("")
	require.NoError(t, err)
	return NewService(NewMemoryRepository(s))
}

func strPtr(s string) *string { return &s }

func TestRegisterUser(t *testing.T) {
	svc := newTestService(t)

	u, err := svc.RegisterUser(context.Background(), RegisterRequest{
		Name:     "Priya",
		Email:    "priya@example.com",
		Password: "sunshine42",
		Plan:     "Starter Solar",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, u.ID)
	assert.Equal(t, store.RoleCustomer, u.Role)
	assert.NotEqual(t, "sunshine42", u.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("sunshine42")))
}

func TestRegisterUserDuplicateEmail(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.RegisterUser(context.Background(), RegisterRequest{
		Name:     "Impostor",
		Email:    store.SeedCustomerEmail,
		Password: "whatever",
	})
	assert.Error(t, err)
}

func TestRegisterUserValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.RegisterUser(ctx, RegisterRequest{Email: "a@b.com"})
	assert.Error(t, err)

	_, err = svc.RegisterUser(ctx, RegisterRequest{Password: "p"})
	assert.Error(t, err)
}

func TestUpdateUser(t *testing.T) {
	svc := newTestService(t)

	u, err := svc.UpdateUser(context.Background(), "2", UpdateUserRequest{
		Phone: strPtr("+1 (555) 999-0000"),
		Plan:  strPtr("Premium Plus"),
	})
	require.NoError(t, err)

	assert.Equal(t, "+1 (555) 999-0000", u.Phone)
	assert.Equal(t, "Premium Plus", u.Plan)
	assert.Equal(t, "Ishaan", u.Name, "untouched fields survive a partial update")
	assert.Equal(t, "123 Solar St, Sunny City", u.Address)
}

func TestUpdateUserUnknown(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.UpdateUser(context.Background(), "ghost", UpdateUserRequest{Name: strPtr("x")})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestListUsers(t *testing.T) {
	svc := newTestService(t)
	users, err := svc.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 2)
}
