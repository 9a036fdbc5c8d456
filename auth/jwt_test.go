package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlbertTesco/Horns-and-hooves/auth"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := auth.GenerateToken(42, "secret")
	require.NoError(t, err)

	userID, err := auth.ParseToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	token, err := auth.GenerateToken(42, "secret")
	require.NoError(t, err)

	_, err = auth.ParseToken(token, "other-secret")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := auth.ParseToken("not-a-token", "secret")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
