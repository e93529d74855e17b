package inadimplencia

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func data(ano int, mes time.Month, dia int) time.Time {
	return time.Date(ano, mes, dia, 0, 0, 0, 0, time.UTC)
}

func TestCalcularAtrasoDataAusente(t *testing.T) {
	ref := data(2024, time.April, 15)

	res := CalcularAtraso(nil, ref)
	assert.Equal(t, 0, res.DiasAtraso)
	assert.Equal(t, 0, res.MesesAtraso)
	assert.True(t, res.DataAusente)

	zero := time.Time{}
	res = CalcularAtraso(&zero, ref)
	assert.Equal(t, 0, res.DiasAtraso)
	assert.True(t, res.DataAusente)
}

func TestCalcularAtrasoCenarioRegulatorio(t *testing.T) {
	// 2024-01-01 → 2024-04-15: 105 dias corridos, 3 meses de atraso.
	inad := data(2024, time.January, 1)
	ref := data(2024, time.April, 15)

	res := CalcularAtraso(&inad, ref)
	assert.Equal(t, 105, res.DiasAtraso)
	assert.Equal(t, 3, res.MesesAtraso)
	assert.False(t, res.DataAusente)
}

func TestCalcularAtrasoDataFutura(t *testing.T) {
	inad := data(2024, time.June, 1)
	ref := data(2024, time.April, 15)

	res := CalcularAtraso(&inad, ref)
	assert.Equal(t, 0, res.DiasAtraso)
	assert.Equal(t, 0, res.MesesAtraso)
	assert.False(t, res.DataAusente)
}

func TestCalcularAtrasoMesmoDia(t *testing.T) {
	inad := data(2024, time.April, 15)

	res := CalcularAtraso(&inad, inad)
	assert.Equal(t, 0, res.DiasAtraso)
	assert.Equal(t, 0, res.MesesAtraso)
}

func TestCalcularAtrasoMesesDerivadosDosDias(t *testing.T) {
	inad := data(2024, time.January, 1)

	casos := []struct {
		dias  int
		meses int
	}{
		{29, 0},
		{30, 1},
		{59, 1},
		{60, 2},
		{90, 3},
		{91, 3},
		{365, 12},
	}
	for _, c := range casos {
		ref := inad.AddDate(0, 0, c.dias)
		res := CalcularAtraso(&inad, ref)
		assert.Equal(t, c.dias, res.DiasAtraso)
		assert.Equal(t, c.meses, res.MesesAtraso, "dias=%d", c.dias)
	}
}

func TestCalcularAtrasoMonotonoComReferencia(t *testing.T) {
	inad := data(2023, time.July, 10)

	anterior := -1
	for d := 0; d <= 400; d += 7 {
		ref := inad.AddDate(0, 0, d)
		res := CalcularAtraso(&inad, ref)
		assert.GreaterOrEqual(t, res.DiasAtraso, anterior)
		anterior = res.DiasAtraso
	}
}
