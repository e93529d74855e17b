package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGerarEValidarToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")

	token, err := GerarToken(7, true)
	require.NoError(t, err)

	claims, err := ValidarToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.True(t, claims.IsAdmin)
}

func TestValidarTokenComSegredoErrado(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-a")
	token, err := GerarToken(7, false)
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "segredo-b")
	_, err = ValidarToken(token)
	assert.Error(t, err)
}
