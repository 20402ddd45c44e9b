package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthenticator() (*Authenticator, *TokenService) {
	tokens := NewTokenService("middleware-test-secret", time.Hour)
	return NewAuthenticator(tokens), tokens
}

func decodeErrorBody(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body["error"]
}

func TestRequireAuthMissingToken(t *testing.T) {
	authn, _ := newTestAuthenticator()

	handler := authn.RequireAuth()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run without a token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Token is missing", decodeErrorBody(t, rec))
}

func TestRequireAuthMalformedHeader(t *testing.T) {
	authn, _ := newTestAuthenticator()

	handler := authn.RequireAuth()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "tokenwithoutscheme")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Token is missing", decodeErrorBody(t, rec))
}

func TestRequireAuthInvalidToken(t *testing.T) {
	authn, _ := newTestAuthenticator()

	handler := authn.RequireAuth()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run with a bad token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer bogus")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Token is invalid or expired", decodeErrorBody(t, rec))
}

func TestRequireAuthPutsClaimsInContext(t *testing.T) {
	authn, tokens := newTestAuthenticator()

	token, err := tokens.Issue("user-42", "instructor")
	require.NoError(t, err)

	var got *Claims
	handler := authn.RequireAuth()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, err = ClaimsFromRequest(r)
		require.NoError(t, err)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, got)
	assert.Equal(t, "user-42", got.UserID)
	assert.Equal(t, "instructor", got.Role)
}

func TestRequireRoleRejectsOtherRoles(t *testing.T) {
	authn, tokens := newTestAuthenticator()

	token, err := tokens.Issue("user-1", "student")
	require.NoError(t, err)

	handler := authn.RequireAuth()(RequireRole("admin")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run for the wrong role")
	})))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Admin access required", decodeErrorBody(t, rec))
}

func TestRequireRoleAllowsMatchingRole(t *testing.T) {
	authn, tokens := newTestAuthenticator()

	token, err := tokens.Issue("user-1", "instructor")
	require.NoError(t, err)

	called := false
	handler := authn.RequireAuth()(RequireRole("instructor")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
}

func TestClaimsFromRequestWithoutMiddleware(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, err := ClaimsFromRequest(req)
	assert.ErrorIs(t, err, ErrNoClaims)
}
