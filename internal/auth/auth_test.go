package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret-password")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-password", hash)

	assert.True(t, CheckPasswordHash("s3cret-password", hash))
	assert.False(t, CheckPasswordHash("wrong-password", hash))
}

func TestGenerateOTP(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		code, err := GenerateOTP()
		require.NoError(t, err)
		require.Len(t, code, 6)
		for _, r := range code {
			assert.True(t, r >= '0' && r <= '9', "OTP must be numeric, got %q", code)
		}
		seen[code] = true
	}
	// 20 draws from a million values colliding every time would mean the
	// generator is broken.
	assert.Greater(t, len(seen), 1)
}

func TestGenerateResetToken(t *testing.T) {
	a, err := GenerateResetToken()
	require.NoError(t, err)
	b, err := GenerateResetToken()
	require.NoError(t, err)

	assert.Len(t, a, 64)
	assert.NotEqual(t, a, b)
}

func TestJWTRoundTrip(t *testing.T) {
	Configure("test-secret", time.Hour)

	token, err := GenerateToken("admin-123", "admin")
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin-123", claims.AdminID)
	assert.Equal(t, "admin", claims.Role)
	assert.NotEmpty(t, claims.ID, "token must carry a JTI")
}

func TestJWTRejectsTamperedToken(t *testing.T) {
	Configure("test-secret", time.Hour)

	token, err := GenerateToken("admin-123", "admin")
	require.NoError(t, err)

	_, err = ParseToken(token + "x")
	assert.ErrorIs(t, err, ErrTokenInvalid)

	_, err = ParseToken("not-a-token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestJWTRejectsWrongSecret(t *testing.T) {
	Configure("secret-one", time.Hour)
	token, err := GenerateToken("admin-123", "admin")
	require.NoError(t, err)

	Configure("secret-two", time.Hour)
	_, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestJWTExpiry(t *testing.T) {
	Configure("test-secret", -time.Minute)
	token, err := GenerateToken("admin-123", "admin")
	require.NoError(t, err)

	Configure("test-secret", time.Hour)
	_, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
