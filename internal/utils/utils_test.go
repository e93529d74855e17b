package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashEVerificarSenha(t *testing.T) {
	hash, err := HashSenha("segredo123")
	require.NoError(t, err)
	assert.NotEqual(t, "segredo123", hash)

	assert.True(t, VerificarSenha(hash, "segredo123"))
	assert.False(t, VerificarSenha(hash, "outra"))
}

func TestGerarSenhaTemporaria(t *testing.T) {
	senha, err := GerarSenhaTemporaria()
	require.NoError(t, err)
	assert.Len(t, senha, 12)
	for _, r := range senha {
		assert.True(t, strings.ContainsRune(senhaTemporariaChars, r), "caractere %q fora do alfabeto", r)
	}

	outra, err := GerarSenhaTemporaria()
	require.NoError(t, err)
	assert.NotEqual(t, senha, outra)
}
