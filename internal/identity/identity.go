// Package identity carries the acting user through a request. It sits
// below every module: auth signs tokens with Claims, the middleware
// parses them back, and handlers consult the guards. Keeping it separate
// from the auth module leaves the module dependencies one-way.
package identity

import (
	"context"
	"net/http"
	"strings"

	"github.com/dgrijalva/jwt-go"
	"github.com/sunspire/solarmart-backend/internal/store"
)

// Claims is the session token payload: standard claims plus the role the
// account logged in with.
type Claims struct {
	jwt.StandardClaims
	Role string `json:"role"`
}

// Identity is the acting user extracted from a session token. Everything
// downstream of the data layer treats it as an opaque provided value.
type Identity struct {
	UserID string
	Role   store.UserRole
}

type contextKey struct{}

// FromContext returns the acting user, if a valid token was presented.
func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(contextKey{}).(Identity)
	return id, ok
}

// Authenticate parses a Bearer token and, when valid, attaches the acting
// user to the request context. Requests without a token pass through
// anonymously; route guards decide what requires a session.
func Authenticate(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				next.ServeHTTP(w, r)
				return
			}
			raw := strings.TrimPrefix(header, "Bearer ")

			var c Claims
			token, err := jwt.ParseWithClaims(raw, &c, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return secret, nil
			})
			if err != nil || !token.Valid {
				next.ServeHTTP(w, r)
				return
			}

			id := Identity{UserID: c.Subject, Role: store.UserRole(c.Role)}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), contextKey{}, id)))
		})
	}
}

// RequireUser rejects requests without an authenticated acting user.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := FromContext(r.Context()); !ok {
			deny(w, http.StatusUnauthorized, "authentication required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin rejects requests unless the acting user is an admin.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := FromContext(r.Context())
		if !ok {
			deny(w, http.StatusUnauthorized, "authentication required")
			return
		}
		if id.Role != store.RoleAdmin {
			deny(w, http.StatusForbidden, "admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func deny(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(`{"error":"` + msg + `"}`))
}
