package carteira

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPorTipoOperacao(t *testing.T) {
	casos := map[string]Classificacao{
		"financiamento imobiliario":    C1,
		"credito rural":                C2,
		"capital de giro":              C3,
		"cheque especial":              C4,
		"cartao de credito":            C5,
		"credito pessoal sem garantia": C5,
	}
	for tipo, esperada := range casos {
		c, err := PorTipoOperacao(tipo)
		require.NoError(t, err)
		assert.Equal(t, esperada, c)
	}
}

func TestPorTipoOperacaoDesconhecido(t *testing.T) {
	_, err := PorTipoOperacao("leasing de aeronaves")
	assert.Error(t, err)

	_, err = PorTipoOperacao("")
	assert.Error(t, err)
}

func TestValida(t *testing.T) {
	for _, c := range Todas() {
		assert.NoError(t, c.Valida())
	}
	assert.Error(t, Classificacao("C6").Valida())
	assert.Error(t, Classificacao("").Valida())
}
