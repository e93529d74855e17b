package provisao

import (
	"testing"

	"github.com/MoraisCastro/api-provisionamento/internal/carteira"
	"github.com/MoraisCastro/api-provisionamento/internal/inadimplencia"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func atraso(dias int) inadimplencia.Atraso {
	return inadimplencia.Atraso{DiasAtraso: dias, MesesAtraso: dias / 30}
}

func TestResolverPerdaEsperada(t *testing.T) {
	// C1 com 45 dias de atraso cai na faixa [31, 61) da tabela de dias.
	res, err := Resolver(TabelaPadrao(), carteira.C1, atraso(45), 0)
	require.NoError(t, err)

	assert.Equal(t, RegimePerdaEsperada, res.Regime)
	assert.Equal(t, EstagioC, res.Estagio)
	assert.Equal(t, 3.0, res.PercentualBase)
	assert.Equal(t, 3.0, res.PercentualAjustado)
	assert.False(t, res.FallbackTabela)
}

func TestResolverCorteDeRegime(t *testing.T) {
	tab := TabelaPadrao()

	// 90 dias ainda é perda esperada (tabela por dias).
	res, err := Resolver(tab, carteira.C1, atraso(90), 0)
	require.NoError(t, err)
	assert.Equal(t, RegimePerdaEsperada, res.Regime)
	assert.Equal(t, EstagioD, res.Estagio)
	assert.Equal(t, 5.0, res.PercentualBase)

	// 91 dias vira perda incorrida, com 3 meses de atraso.
	res, err = Resolver(tab, carteira.C1, atraso(91), 0)
	require.NoError(t, err)
	assert.Equal(t, RegimePerdaIncorrida, res.Regime)
	assert.Equal(t, EstagioE, res.Estagio)
	assert.Equal(t, 10.0, res.PercentualBase)
}

func TestResolverUltimaFaixaAbertaAcima(t *testing.T) {
	// 5 anos de atraso: faixa terminal, perda total.
	res, err := Resolver(TabelaPadrao(), carteira.C3, atraso(1825), 0)
	require.NoError(t, err)
	assert.Equal(t, EstagioH, res.Estagio)
	assert.Equal(t, 100.0, res.PercentualBase)
	assert.False(t, res.FallbackTabela)
}

func TestResolverMonotonoNoAtraso(t *testing.T) {
	tab := TabelaPadrao()
	for _, c := range carteira.Todas() {
		anterior := -1.0
		for dias := 0; dias <= 720; dias++ {
			res, err := Resolver(tab, c, atraso(dias), 0)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, res.PercentualBase, anterior,
				"carteira %s, dias %d", c, dias)
			anterior = res.PercentualBase
		}
	}
}

func TestResolverEstagiosCrescentes(t *testing.T) {
	tab := TabelaPadrao()
	esperados := []struct {
		dias    int
		estagio Estagio
	}{
		{0, EstagioA},
		{14, EstagioA},
		{15, EstagioB},
		{30, EstagioB},
		{31, EstagioC},
		{60, EstagioC},
		{61, EstagioD},
		{90, EstagioD},
		{91, EstagioE},
		{179, EstagioE},
		{180, EstagioF},
		{359, EstagioF},
		{360, EstagioG},
		{539, EstagioG},
		{540, EstagioH},
	}
	for _, e := range esperados {
		res, err := Resolver(tab, carteira.C2, atraso(e.dias), 0)
		require.NoError(t, err)
		assert.Equal(t, e.estagio, res.Estagio, "dias=%d", e.dias)
	}
}

func TestResolverAjusteDeGarantia(t *testing.T) {
	tab := TabelaPadrao()
	// C5 com 7 meses de atraso tem base 70.
	base := 70.0

	casos := []struct {
		cobertura float64
		esperado  float64
	}{
		{0, base},
		{50, 35},
		{100, 0},
		{-10, base}, // saturado em 0
		{150, 0},    // saturado em 100
	}
	for _, c := range casos {
		res, err := Resolver(tab, carteira.C5, atraso(210), c.cobertura)
		require.NoError(t, err)
		assert.Equal(t, base, res.PercentualBase)
		assert.InDelta(t, c.esperado, res.PercentualAjustado, 1e-9, "cobertura=%v", c.cobertura)
		assert.GreaterOrEqual(t, res.PercentualAjustado, 0.0)
		assert.LessOrEqual(t, res.PercentualAjustado, res.PercentualBase)
	}
}

func TestResolverCenarioDesconto(t *testing.T) {
	// Base 30 com cobertura de 50% resulta em 15.
	tab := TabelaPadrao()
	res, err := Resolver(tab, carteira.C5, atraso(120), 50)
	require.NoError(t, err)
	assert.Equal(t, 30.0, res.PercentualBase)
	assert.Equal(t, 15.0, res.PercentualAjustado)
}

func TestResolverCarteiraDesconhecida(t *testing.T) {
	_, err := Resolver(TabelaPadrao(), carteira.Classificacao("C9"), atraso(45), 0)
	assert.Error(t, err)
}

func TestResolverFallbackPorLacunaNaTabela(t *testing.T) {
	// Tabela de dias sem a faixa [61, 91): lacuna de configuração.
	tab := TabelaPadrao()
	tab.Dias = tab.Dias[:3]

	res, err := Resolver(tab, carteira.C1, atraso(75), 0)
	require.NoError(t, err)
	assert.True(t, res.FallbackTabela)
	assert.Equal(t, RegimePerdaEsperada, res.Regime)
	assert.Equal(t, 10.0, res.PercentualBase)

	// Tabela de meses começando em 6: atraso de 4 meses fica sem faixa.
	tab = TabelaPadrao()
	tab.Meses = tab.Meses[1:]

	res, err = Resolver(tab, carteira.C1, atraso(120), 0)
	require.NoError(t, err)
	assert.True(t, res.FallbackTabela)
	assert.Equal(t, RegimePerdaIncorrida, res.Regime)
	assert.Equal(t, 100.0, res.PercentualBase)
}
