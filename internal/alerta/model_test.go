package alerta

import (
	"testing"

	"github.com/MoraisCastro/api-provisionamento/internal/momento"
	"github.com/stretchr/testify/assert"
)

func TestNovoAlerta(t *testing.T) {
	a := NovoAlerta(42, momento.Transicao{De: momento.Favoravel, Para: momento.MuitoFavoravel}, 30, 55.5)

	assert.Equal(t, uint(42), a.ContratoID)
	assert.Equal(t, momento.Favoravel, a.MomentoAnterior)
	assert.Equal(t, momento.MuitoFavoravel, a.MomentoNovo)
	assert.Equal(t, 30.0, a.PercentualAnterior)
	assert.Equal(t, 55.5, a.PercentualNovo)
	assert.False(t, a.Lida)
	assert.Equal(t,
		"Contrato 42 avançou de momento 'favoravel' para 'muito_favoravel': provisão passou de 30.00% para 55.50%",
		a.Mensagem)
}
