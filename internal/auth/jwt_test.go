package auth

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"travel-backend/internal/apperr"
	"travel-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestIssueVerifyRoundTrip(t *testing.T) {
	tm := NewTokenManager(testSecret, 7*24*time.Hour)

	token, err := tm.Issue(42, "a@example.com", models.RoleUser)
	require.NoError(t, err)

	claims, err := tm.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "a@example.com", claims.Email)
	assert.Equal(t, models.RoleUser, claims.Role)
	assert.NotEmpty(t, claims.ID)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestVerifyRejectsFlippedSignature(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour)
	token, err := tm.Issue(1, "a@example.com", models.RoleUser)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	sig, err := base64.RawURLEncoding.DecodeString(parts[2])
	require.NoError(t, err)
	sig[0] ^= 0xff
	parts[2] = base64.RawURLEncoding.EncodeToString(sig)

	_, err = tm.Verify(strings.Join(parts, "."))
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))
}

func TestVerifyRejectsOtherSecret(t *testing.T) {
	token, err := NewTokenManager(testSecret, time.Hour).Issue(1, "a@example.com", models.RoleAdmin)
	require.NoError(t, err)

	_, err = NewTokenManager("another-secret-another-secret-123", time.Hour).Verify(token)
	assert.Error(t, err)
}

func TestVerifyRejectsExpired(t *testing.T) {
	tm := NewTokenManager(testSecret, 7*24*time.Hour)
	tm.now = func() time.Time { return time.Now().Add(-8 * 24 * time.Hour) }
	token, err := tm.Issue(1, "a@example.com", models.RoleUser)
	require.NoError(t, err)

	tm.now = time.Now
	_, err = tm.Verify(token)
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))
}

func TestVerifyRejectsGarbage(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour)
	for _, tok := range []string{"", "abc", "a.b.c"} {
		_, err := tm.Verify(tok)
		assert.Error(t, err, tok)
	}
}
