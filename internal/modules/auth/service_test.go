package auth

import (
	"context"
	"testing"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sunspire/solarmart-backend/internal/identity"
	"github.com/sunspire/solarmart-backend/internal/modules/user"
	"github.com/sunspire/solarmart-backend/internal/store"
)

var testSecret = []byte("test-secret")

func newTestService(t *testing.T) Service {
	t.Helper()
	s, err := store.Open("")
	require.NoError(t, err)
	return NewService(user.NewMemoryRepository(s), testSecret)
}

func TestLogin(t *testing.T) {
	svc := newTestService(t)

	session, err := svc.Login(context.Background(), store.SeedCustomerEmail, store.SeedCustomerPassword, store.RoleCustomer)
	require.NoError(t, err)

	assert.NotEmpty(t, session.Token)
	assert.Equal(t, "2", session.User.ID)
	assert.Equal(t, store.RoleCustomer, session.User.Role)
	require.NotNil(t, session.User.LastLogin)
}

func TestLoginTokenClaims(t *testing.T) {
	svc := newTestService(t)

	session, err := svc.Login(context.Background(), store.SeedAdminEmail, store.SeedAdminPassword, store.RoleAdmin)
	require.NoError(t, err)

	var c identity.Claims
	token, err := jwt.ParseWithClaims(session.Token, &c, func(*jwt.Token) (interface{}, error) {
		return testSecret, nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)
	assert.Equal(t, "1", c.Subject)
	assert.Equal(t, string(store.RoleAdmin), c.Role)
	assert.Equal(t, int64(24*60*60), c.ExpiresAt-c.IssuedAt)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Login(context.Background(), store.SeedCustomerEmail, "wrong", store.RoleCustomer)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Login(context.Background(), "nobody@solar.com", "admin123", store.RoleAdmin)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

// Logging into the admin surface with customer credentials fails even
// when the password is right.
func TestLoginRoleMismatch(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Login(context.Background(), store.SeedCustomerEmail, store.SeedCustomerPassword, store.RoleAdmin)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
