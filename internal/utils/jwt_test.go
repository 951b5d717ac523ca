package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateSessionToken(t *testing.T) {
	tok, err := GenerateSessionToken("portero-dev", "USR-001", time.Hour, "clave-secreta")
	require.NoError(t, err)
	require.NotEmpty(t, tok.SignedString)

	idus, err := ValidateSessionToken(tok.SignedString, "clave-secreta", "portero-dev")
	require.NoError(t, err)
	assert.Equal(t, "USR-001", idus)
}

func TestValidateSessionToken_WrongKey(t *testing.T) {
	tok, err := GenerateSessionToken("portero-dev", "USR-001", time.Hour, "clave-secreta")
	require.NoError(t, err)

	_, err = ValidateSessionToken(tok.SignedString, "otra-clave", "portero-dev")
	assert.Error(t, err)
}

func TestGenerateSessionToken_InvalidParams(t *testing.T) {
	_, err := GenerateSessionToken("", "USR-001", time.Hour, "k")
	assert.Error(t, err)

	_, err = GenerateSessionToken("iss", "", time.Hour, "k")
	assert.Error(t, err)

	_, err = GenerateSessionToken("iss", "USR-001", 0, "k")
	assert.Error(t, err)
}

func TestTokenExpiry(t *testing.T) {
	dur := 45 * time.Minute
	tok, err := GenerateSessionToken("portero-dev", "USR-001", dur, "clave")
	require.NoError(t, err)

	exp, err := TokenExpiry(tok.SignedString)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(dur), exp, 5*time.Second)
}

func TestTokenExpiry_NotAToken(t *testing.T) {
	_, err := TokenExpiry("no-es-un-jwt")
	assert.Error(t, err)
}

func TestParseBearerToken(t *testing.T) {
	tok, err := ParseBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", tok)

	_, err = ParseBearerToken("abc.def.ghi")
	assert.Error(t, err)

	_, err = ParseBearerToken("Bearer ")
	assert.Error(t, err)
}
