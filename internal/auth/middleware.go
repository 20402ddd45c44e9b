package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/render"
)

type contextKey int

const claimsContextKey contextKey = iota

// ErrNoClaims is returned when a handler asks for the caller's identity on a
// route that never passed through RequireAuth.
var ErrNoClaims = errors.New("no authenticated user in request context")

// Authenticator provides the request middleware that resolves the caller's
// identity and role from the Authorization header.
type Authenticator struct {
	tokens *TokenService
}

func NewAuthenticator(tokens *TokenService) *Authenticator {
	return &Authenticator{tokens: tokens}
}

// RequireAuth is a middleware that rejects requests without a valid bearer
// token. The caller's Claims are added to the request context and can be
// accessed via ClaimsFromRequest.
func (a *Authenticator) RequireAuth() func(handler http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				rejectUnauthenticated(w, r, "Token is missing")
				return
			}

			claims, err := a.tokens.Verify(token)
			if err != nil {
				rejectUnauthenticated(w, r, "Token is invalid or expired")
				return
			}

			ctx := context.WithValue(r.Context(), claimsContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole is a middleware that rejects authenticated callers whose role
// does not match the route's requirement. It must be chained after
// RequireAuth.
func RequireRole(role string) func(handler http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := ClaimsFromRequest(r)
			if err != nil {
				rejectUnauthenticated(w, r, "Token is missing")
				return
			}

			if claims.Role != role {
				rejectForbidden(w, r, role)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// ClaimsFromRequest returns the caller's Claims if present in the request
// context. Only works with routes behind the RequireAuth middleware.
func ClaimsFromRequest(r *http.Request) (*Claims, error) {
	claims, ok := r.Context().Value(claimsContextKey).(*Claims)
	if !ok || claims == nil {
		return nil, ErrNoClaims
	}
	return claims, nil
}

// Helpers

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func rejectUnauthenticated(w http.ResponseWriter, r *http.Request, msg string) {
	render.Status(r, http.StatusUnauthorized)
	render.JSON(w, r, render.M{"error": msg})
}

func rejectForbidden(w http.ResponseWriter, r *http.Request, role string) {
	render.Status(r, http.StatusForbidden)
	render.JSON(w, r, render.M{"error": titleCase(role) + " access required"})
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
