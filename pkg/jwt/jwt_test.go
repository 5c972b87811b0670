package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateParse_RoundTrip(t *testing.T) {
	tok, exp, err := Generate("secret", "sess-1", "maria", "console-test", time.Hour)
	require.NoError(t, err)
	assert.True(t, exp.After(time.Now()))

	claims, err := Parse("secret", tok)
	require.NoError(t, err)
	assert.Equal(t, "sess-1", claims.SessionID)
	assert.Equal(t, "maria", claims.Username)
	assert.Equal(t, "console-test", claims.Issuer)
}

func TestParse_WrongSecret(t *testing.T) {
	tok, _, err := Generate("secret", "sess-1", "maria", "console-test", time.Hour)
	require.NoError(t, err)

	_, err = Parse("otro", tok)
	assert.Error(t, err)
}

func TestParse_Expired(t *testing.T) {
	tok, _, err := Generate("secret", "sess-1", "maria", "console-test", -time.Minute)
	require.NoError(t, err)

	_, err = Parse("secret", tok)
	assert.Error(t, err)
}

func TestGenerate_EmptySecret(t *testing.T) {
	_, _, err := Generate("", "sess-1", "maria", "console-test", time.Hour)
	assert.Error(t, err)
}
