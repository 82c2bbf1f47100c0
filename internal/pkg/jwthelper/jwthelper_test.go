package jwthelper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	signingKey := []byte("test-signing-key")

	token, err := GenerateToken(signingKey, 42, "test-agent/1.0")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(signingKey, token)
	require.NoError(t, err)

	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "test-agent/1.0", claims.UserAgent)
	assert.NotNil(t, claims.ExpiresAt)
	assert.True(t, claims.ExpiresAt.After(claims.IssuedAt.Time))
}

func TestParseToken_WrongKey(t *testing.T) {
	token, err := GenerateToken([]byte("key-one"), 1, "agent")
	require.NoError(t, err)

	_, err = ParseToken([]byte("key-two"), token)

	require.Error(t, err)
}

func TestParseToken_Garbage(t *testing.T) {
	_, err := ParseToken([]byte("key"), "not.a.token")

	require.Error(t, err)
}
