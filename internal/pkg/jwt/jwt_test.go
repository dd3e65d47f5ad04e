package jwt

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-lite-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAccessToken_Claims(t *testing.T) {
	svc := NewJWTService("test-secret-key-for-jwt", "1h")
	employeeID := "emp-1"

	token, expiresAt, err := svc.GenerateAccessToken("user-1", "a@hris.local", &employeeID, user.RoleManager)
	require.NoError(t, err)
	assert.InDelta(t, time.Now().Add(time.Hour).Unix(), expiresAt, 5)

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)
	claims, err := decoded.AsMap(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims["user_id"])
	assert.Equal(t, "emp-1", claims["employee_id"])
	assert.Equal(t, "manager", claims["role"])
	assert.Equal(t, TokenTypeAccess, claims["type"])
}

func TestGenerateAccessToken_BadDuration(t *testing.T) {
	svc := NewJWTService("test-secret-key-for-jwt", "forever")
	_, _, err := svc.GenerateAccessToken("user-1", "a@hris.local", nil, user.RoleAdmin)
	assert.Error(t, err)
}

func TestSSEToken(t *testing.T) {
	svc := NewJWTService("test-secret-key-for-jwt", "1h")

	token, expiresIn, err := svc.GenerateSSEToken("user-1", nil)
	require.NoError(t, err)
	assert.Equal(t, 300, expiresIn)

	userID, err := svc.ValidateSSEToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)

	access, _, err := svc.GenerateAccessToken("user-1", "a@hris.local", nil, user.RoleAdmin)
	require.NoError(t, err)
	_, err = svc.ValidateSSEToken(access)
	assert.Error(t, err, "access tokens must not open the stream")

	other := NewJWTService("another-secret", "1h")
	_, err = other.ValidateSSEToken(token)
	assert.Error(t, err)
}

func TestSSEToken_Expired(t *testing.T) {
	svc := NewJWTService("test-secret-key-for-jwt", "1h")
	svc.now = func() time.Time { return time.Now().Add(-time.Hour) }

	token, _, err := svc.GenerateSSEToken("user-1", nil)
	require.NoError(t, err)

	_, err = svc.ValidateSSEToken(token)
	assert.Error(t, err)
}

func TestRevokeAndSweep(t *testing.T) {
	svc := NewJWTService("test-secret-key-for-jwt", "1h")
	now := time.Date(2024, 6, 14, 12, 0, 0, 0, time.UTC)

	svc.RevokeToken("expired", now.Add(-time.Minute).Unix())
	svc.RevokeToken("live", now.Add(time.Hour).Unix())
	assert.True(t, svc.IsTokenRevoked("expired"))
	assert.True(t, svc.IsTokenRevoked("live"))
	assert.False(t, svc.IsTokenRevoked("never"))

	assert.Equal(t, 1, svc.SweepRevoked(now))
	assert.False(t, svc.IsTokenRevoked("expired"))
	assert.True(t, svc.IsTokenRevoked("live"))
	assert.Equal(t, 0, svc.SweepRevoked(now))
}
