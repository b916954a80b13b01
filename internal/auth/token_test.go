package auth

import (
	"testing"
	"time"

	"jobtracker_backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour, "jobtracker")

	issued, err := m.GenerateToken("user-1", models.UserRoleEmployer)
	require.NoError(t, err)
	assert.NotEmpty(t, issued.SessionID)

	claims, err := m.ParseToken(issued.Token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, models.UserRoleEmployer, claims.Role)
	assert.Equal(t, issued.SessionID, claims.ID)
}

func TestTokenManager_Expired(t *testing.T) {
	m := NewTokenManager("test-secret", time.Minute, "jobtracker")
	issued, err := m.GenerateToken("user-1", models.UserRoleJobSeeker)
	require.NoError(t, err)

	m.now = func() time.Time { return time.Now().Add(2 * time.Minute) }
	_, err = m.ParseToken(issued.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	issued, err := NewTokenManager("secret-a", time.Hour, "x").GenerateToken("u", models.UserRoleJobSeeker)
	require.NoError(t, err)

	_, err = NewTokenManager("secret-b", time.Hour, "x").ParseToken(issued.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_RejectsNoneAlgorithm(t *testing.T) {
	claims := &Claims{
		UserID: "u",
		Role:   models.UserRoleEmployer,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "sid",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewTokenManager("secret", time.Hour, "x").ParseToken(unsigned)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_Garbage(t *testing.T) {
	_, err := NewTokenManager("secret", time.Hour, "x").ParseToken("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
