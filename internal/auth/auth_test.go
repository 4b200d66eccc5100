// server/internal/auth/auth_test.go
package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, CheckPasswordHash("s3cret-pass", hash))
	assert.False(t, CheckPasswordHash("wrong-pass", hash))
}

func TestGenerateAndParseToken(t *testing.T) {
	JwtSecret = []byte("test-secret")

	tokenString, err := GenerateJWT("ops@alphaline.test", "Ops User", "operations", time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "ops@alphaline.test", claims.Email)
	assert.Equal(t, "Ops User", claims.Name)
	assert.Equal(t, "operations", claims.Role)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	JwtSecret = []byte("test-secret")

	tokenString, err := GenerateJWT("ops@alphaline.test", "Ops User", "operations", -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(tokenString)
	assert.Error(t, err)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	JwtSecret = []byte("test-secret")
	tokenString, err := GenerateJWT("ops@alphaline.test", "Ops User", "operations", time.Hour)
	require.NoError(t, err)

	JwtSecret = []byte("another-secret")
	_, err = ParseToken(tokenString)
	assert.Error(t, err)
}
