package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordSaltsEachCall(t *testing.T) {
	first, err := HashPassword("Secret123")
	require.NoError(t, err)
	second, err := HashPassword("Secret123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, CheckPassword("Secret123", first))
	assert.True(t, CheckPassword("Secret123", second))
}

func TestCheckPasswordRejectsWrongPassword(t *testing.T) {
	digest, err := HashPassword("Secret123")
	require.NoError(t, err)

	assert.False(t, CheckPassword("secret123", digest))
	assert.False(t, CheckPassword("", digest))
}

func TestTokenRoundTrip(t *testing.T) {
	ts := NewTokenService("test-secret", time.Hour)

	token, err := ts.Issue("user-1", "student")
	require.NoError(t, err)

	claims, err := ts.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "student", claims.Role)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	ts := NewTokenService("test-secret", -time.Minute)

	token, err := ts.Issue("user-1", "student")
	require.NoError(t, err)

	_, err = ts.Verify(token)
	assert.Error(t, err)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-a", time.Hour)
	verifier := NewTokenService("secret-b", time.Hour)

	token, err := issuer.Issue("user-1", "instructor")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.Error(t, err)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	ts := NewTokenService("test-secret", time.Hour)

	_, err := ts.Verify("not-a-token")
	assert.Error(t, err)
}
