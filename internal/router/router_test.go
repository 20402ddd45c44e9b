package router

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learnhub/internal/auth"
	"learnhub/internal/config"
)

func newTestRouter() *Router {
	cfg := config.DefaultConfig()
	tokens := auth.NewTokenService("router-test-secret", time.Hour)
	return New(nil, tokens, nil, cfg)
}

func decodeBodyMap(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRegisterIsDisabled(t *testing.T) {
	ro := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/register", nil)
	rec := httptest.NewRecorder()
	ro.AuthRoutes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	body := decodeBodyMap(t, rec)
	assert.Equal(t,
		"Registration is disabled. Please contact your administrator to create an account.",
		body["error"])
}

func TestLoginMissingFields(t *testing.T) {
	ro := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"email":"a@b.ie"}`))
	rec := httptest.NewRecorder()
	ro.AuthRoutes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBodyMap(t, rec)
	assert.Equal(t, "Missing required fields: password", body["error"])
}

func TestLoginMissingBothFields(t *testing.T) {
	ro := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	ro.AuthRoutes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBodyMap(t, rec)
	assert.Equal(t, "Missing required fields: email, password", body["error"])
}

func TestChangePasswordRequiresToken(t *testing.T) {
	ro := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/change-password",
		strings.NewReader(`{"oldPassword":"Old12345","newPassword":"New12345"}`))
	rec := httptest.NewRecorder()
	ro.AuthRoutes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeBodyMap(t, rec)
	assert.Equal(t, "Token is missing", body["error"])
}

func TestChangePasswordRejectsWeakNewPassword(t *testing.T) {
	ro := newTestRouter()

	token, err := ro.tokens.Issue("user-1", "student")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/change-password",
		strings.NewReader(`{"oldPassword":"Old12345","newPassword":"short"}`))
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	ro.AuthRoutes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBodyMap(t, rec)
	assert.Equal(t, "password must be at least 8 characters long", body["error"])
}

func TestHealthHandler(t *testing.T) {
	ro := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	ro.HealthHandler(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBodyMap(t, rec)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "LMS API is running", body["message"])
}

func TestIndexHandlerListsEndpoints(t *testing.T) {
	ro := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	ro.IndexHandler(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBodyMap(t, rec)
	assert.Equal(t, "LMS API", body["message"])

	endpoints, ok := body["endpoints"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "/api/health", endpoints["health"])
	assert.Equal(t, "/api/courses", endpoints["courses"])
}

func TestProgressRoutesRejectNonStudents(t *testing.T) {
	ro := newTestRouter()

	token, err := ro.tokens.Issue("inst-1", "instructor")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/stats?courseId=c1", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	ro.ProgressRoutes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	body := decodeBodyMap(t, rec)
	assert.Equal(t, "Student access required", body["error"])
}

func TestUploadRoutesRejectStudents(t *testing.T) {
	ro := newTestRouter()

	token, err := ro.tokens.Issue("stu-1", "student")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	ro.UploadRoutes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	body := decodeBodyMap(t, rec)
	assert.Equal(t, "Instructor access required", body["error"])
}

func TestUploadRejectsOversizedBody(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.MaxUploadSize = 1 << 20
	tokens := auth.NewTokenService("router-test-secret", time.Hour)
	ro := New(nil, tokens, nil, cfg)

	token, err := tokens.Issue("inst-1", "instructor")
	require.NoError(t, err)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "notes.pdf")
	require.NoError(t, err)
	_, err = part.Write(bytes.Repeat([]byte("a"), 4<<20))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	ro.UploadRoutes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBodyMap(t, rec)
	assert.Equal(t, "File too large. Maximum size: 1MB", body["error"])
}
