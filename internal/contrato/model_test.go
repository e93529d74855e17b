package contrato

import (
	"testing"

	"github.com/MoraisCastro/api-provisionamento/internal/garantia"
	"github.com/stretchr/testify/assert"
)

func TestCoberturaGarantiaValorAgregado(t *testing.T) {
	c := Contrato{SaldoDevedor: 100000, PossuiGarantia: true, ValorGarantia: 50000}
	assert.Equal(t, 50.0, c.CoberturaGarantia())
}

func TestCoberturaGarantiaSaturadaEm100(t *testing.T) {
	c := Contrato{SaldoDevedor: 100000, PossuiGarantia: true, ValorGarantia: 250000}
	assert.Equal(t, 100.0, c.CoberturaGarantia())
}

func TestCoberturaGarantiaSemGarantia(t *testing.T) {
	c := Contrato{SaldoDevedor: 100000}
	assert.Equal(t, 0.0, c.CoberturaGarantia())
}

func TestCoberturaGarantiaSaldoZerado(t *testing.T) {
	c := Contrato{SaldoDevedor: 0, PossuiGarantia: true, ValorGarantia: 50000}
	assert.Equal(t, 0.0, c.CoberturaGarantia())
}

func TestCoberturaGarantiaDetalhadasSobrepoemAgregado(t *testing.T) {
	c := Contrato{
		SaldoDevedor:   200000,
		PossuiGarantia: true,
		ValorGarantia:  999999, // ignorado: há garantias detalhadas
		Garantias: []garantia.Garantia{
			{Valor: 60000, Ativa: true},
			{Valor: 40000, Ativa: true},
			{Valor: 500000, Ativa: false}, // inativa não conta
		},
	}
	assert.Equal(t, 50.0, c.CoberturaGarantia())
}
