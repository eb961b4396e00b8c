package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	token, err := NewAccessToken("secret", "issuer", time.Minute, 42)
	require.NoError(t, err)

	claims, err := ParseToken("secret", "issuer", token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "42", claims.Subject)
}

func TestParseTokenExpired(t *testing.T) {
	token, err := NewAccessToken("secret", "issuer", -time.Minute, 42)
	require.NoError(t, err)

	_, err = ParseToken("secret", "issuer", token)
	assert.Error(t, err)
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := NewAccessToken("secret", "issuer", time.Minute, 42)
	require.NoError(t, err)

	_, err = ParseToken("other-secret", "issuer", token)
	assert.Error(t, err)
}

func TestParseTokenWrongIssuer(t *testing.T) {
	token, err := NewAccessToken("secret", "someone-else", time.Minute, 42)
	require.NoError(t, err)

	_, err = ParseToken("secret", "issuer", token)
	assert.Error(t, err)
}

func TestParseTokenTampered(t *testing.T) {
	token, err := NewAccessToken("secret", "issuer", time.Minute, 42)
	require.NoError(t, err)

	_, err = ParseToken("secret", "issuer", token+"x")
	assert.Error(t, err)
}
