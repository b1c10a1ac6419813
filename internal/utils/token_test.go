package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestAdminTokenRoundTrip(t *testing.T) {
	t.Parallel()

	raw, err := NewAdminToken(testSecret, "boss@example.com", time.Minute)
	require.NoError(t, err)

	claims, err := VerifyToken(testSecret, raw)
	require.NoError(t, err)
	assert.True(t, claims.IsAdmin())
	assert.Equal(t, "boss@example.com", claims.Email)
	assert.Empty(t, claims.CustomerID)
}

func TestCustomerTokenRoundTrip(t *testing.T) {
	t.Parallel()

	raw, err := NewCustomerToken(testSecret, "C7", "ada@example.com", time.Minute)
	require.NoError(t, err)

	claims, err := VerifyToken(testSecret, raw)
	require.NoError(t, err)
	assert.False(t, claims.IsAdmin())
	assert.Equal(t, "C7", claims.CustomerID)
	assert.Equal(t, "ada@example.com", claims.Email)
}

func TestVerifyTokenRejectsWrongSecret(t *testing.T) {
	t.Parallel()

	raw, err := NewCustomerToken(testSecret, "C7", "ada@example.com", time.Minute)
	require.NoError(t, err)

	_, err = VerifyToken("other-secret", raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyTokenRejectsExpired(t *testing.T) {
	t.Parallel()

	raw, err := NewCustomerToken(testSecret, "C7", "ada@example.com", -time.Minute)
	require.NoError(t, err)

	_, err = VerifyToken(testSecret, raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"", "not-a-token", "a.b.c"} {
		_, err := VerifyToken(testSecret, raw)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", raw)
	}
}
