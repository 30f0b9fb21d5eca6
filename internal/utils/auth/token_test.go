package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse(t *testing.T) {
	token, err := GenerateJWT("user-1", "secret", time.Hour, "eazybizy")
	require.NoError(t, err)

	claims, err := ParseAndValidateJWT(token, "secret", "eazybizy")
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
}

func TestParseRejects(t *testing.T) {
	token, err := GenerateJWT("user-1", "secret", time.Hour, "eazybizy")
	require.NoError(t, err)

	_, err = ParseAndValidateJWT(token, "other-secret", "eazybizy")
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)

	_, err = ParseAndValidateJWT(token, "secret", "someone-else")
	assert.ErrorIs(t, err, jwt.ErrTokenInvalidIssuer)

	expired, err := GenerateJWT("user-1", "secret", -time.Minute, "eazybizy")
	require.NoError(t, err)
	_, err = ParseAndValidateJWT(expired, "secret", "")
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}
