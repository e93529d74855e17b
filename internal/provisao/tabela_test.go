package provisao

import (
	"testing"

	"github.com/MoraisCastro/api-provisionamento/internal/carteira"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTabelaPadraoValida(t *testing.T) {
	require.NoError(t, TabelaPadrao().Validar())
}

func TestValidarTabelaVazia(t *testing.T) {
	assert.Error(t, TabelaProvisao{}.Validar())
	assert.Error(t, TabelaProvisao{Dias: TabelaPadrao().Dias}.Validar())
	assert.Error(t, TabelaProvisao{Meses: TabelaPadrao().Meses}.Validar())
}

func TestValidarCarteiraFaltando(t *testing.T) {
	tab := TabelaPadrao()
	delete(tab.Dias[1].Percentuais, carteira.C3)
	assert.Error(t, tab.Validar())
}

func TestValidarFaixasNaoContiguas(t *testing.T) {
	tab := TabelaPadrao()
	tab.Dias[2].Min = 40
	assert.Error(t, tab.Validar())

	tab = TabelaPadrao()
	tab.Meses[1].Min = 7
	assert.Error(t, tab.Validar())
}

func TestValidarUltimaFaixaDeMesesDeveSerAberta(t *testing.T) {
	tab := TabelaPadrao()
	tab.Meses[len(tab.Meses)-1].Max = 24
	assert.Error(t, tab.Validar())
}

func TestValidarPercentualForaDoIntervalo(t *testing.T) {
	tab := TabelaPadrao()
	tab.Dias[0].Percentuais[carteira.C1] = -1
	assert.Error(t, tab.Validar())

	tab = TabelaPadrao()
	tab.Meses[0].Percentuais[carteira.C5] = 101
	assert.Error(t, tab.Validar())
}

func TestValidarMonotonicidadePorCarteira(t *testing.T) {
	// Percentual que cai entre faixas viola a regra regulatória.
	tab := TabelaPadrao()
	tab.Dias[3].Percentuais[carteira.C2] = 0.5
	assert.Error(t, tab.Validar())

	// Queda na passagem de regime também é violação.
	tab = TabelaPadrao()
	tab.Meses[0].Percentuais[carteira.C5] = 1
	assert.Error(t, tab.Validar())
}
