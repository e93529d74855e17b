package momento

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTabelaPadraoValida(t *testing.T) {
	require.NoError(t, TabelaPadrao().Validar())
}

func TestValidarTabelaInvalida(t *testing.T) {
	assert.Error(t, Tabela{}.Validar())

	// Primeira faixa precisa começar em 0.
	assert.Error(t, Tabela{
		{PercentualMinimo: 10, Momento: Inicial},
	}.Validar())

	// Percentuais devem ser estritamente crescentes.
	assert.Error(t, Tabela{
		{PercentualMinimo: 0, Momento: Inicial},
		{PercentualMinimo: 30, Momento: Favoravel},
		{PercentualMinimo: 30, Momento: MuitoFavoravel},
	}.Validar())

	// Momentos fora de ordem.
	assert.Error(t, Tabela{
		{PercentualMinimo: 0, Momento: Inicial},
		{PercentualMinimo: 30, Momento: Otimo},
		{PercentualMinimo: 50, Momento: Favoravel},
	}.Validar())

	// Momento desconhecido.
	assert.Error(t, Tabela{
		{PercentualMinimo: 0, Momento: Momento("especial")},
	}.Validar())
}

func TestDeterminar(t *testing.T) {
	tab := TabelaPadrao()

	casos := []struct {
		percentual float64
		esperado   Momento
	}{
		{0, Inicial},
		{15, Inicial},
		{29.9, Inicial},
		{30, Favoravel},
		{49.9, Favoravel},
		{50, MuitoFavoravel},
		{70, Otimo},
		{89.9, Otimo},
		{90, Premium},
		{99.9, Premium},
		{100, Total},
	}
	for _, c := range casos {
		assert.Equal(t, c.esperado, tab.Determinar(c.percentual), "percentual=%v", c.percentual)
	}
}

func TestRankOrdenado(t *testing.T) {
	seq := []Momento{Inicial, Favoravel, MuitoFavoravel, Otimo, Premium, Total}
	for i := 1; i < len(seq); i++ {
		assert.Greater(t, seq[i].Rank(), seq[i-1].Rank())
	}
}

func TestValidaMomento(t *testing.T) {
	for _, m := range []Momento{Inicial, Favoravel, MuitoFavoravel, Otimo, Premium, Total} {
		assert.NoError(t, m.Valida())
	}
	assert.Error(t, Momento("").Valida())
	assert.Error(t, Momento("pessimo").Valida())
}
