package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignParseRoundTrip(t *testing.T) {
	signed, expireAt, err := Sign("secret", time.Hour, "admin@lourini.pt")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expireAt, 2*time.Second)

	claims, err := Parse(signed, "secret")
	require.NoError(t, err)
	assert.Equal(t, "admin@lourini.pt", claims.Email)
	assert.Equal(t, "admin", claims.Role)
}

func TestParseRejections(t *testing.T) {
	signed, _, err := Sign("secret", time.Hour, "admin@lourini.pt")
	require.NoError(t, err)

	_, err = Parse(signed, "other-secret")
	assert.Error(t, err)

	_, err = Parse("", "secret")
	assert.Error(t, err)

	_, err = Parse("not.a.token", "secret")
	assert.Error(t, err)
}

func TestSignValidation(t *testing.T) {
	_, _, err := Sign("", time.Hour, "admin@lourini.pt")
	assert.Error(t, err)

	_, _, err = Sign("secret", 0, "admin@lourini.pt")
	assert.Error(t, err)
}
