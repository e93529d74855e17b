// internal/provisao/tabela.go
package provisao

import (
	"fmt"

	"github.com/MoraisCastro/api-provisionamento/internal/carteira"
)

// Regime identifica qual tabela regulatória foi usada no cálculo.
type Regime string

const (
	// RegimePerdaEsperada é o regime por dias de atraso, aplicado até 90 dias.
	RegimePerdaEsperada Regime = "perda_esperada"
	// RegimePerdaIncorrida é o regime por meses de atraso, aplicado acima de 90 dias.
	RegimePerdaIncorrida Regime = "perda_incorrida"
)

// Estagio é o rótulo de severidade do atraso (A a H), alinhado uma a uma com
// as faixas das tabelas: o estágio não é um cálculo próprio, é o nome da faixa.
type Estagio string

const (
	EstagioA Estagio = "A"
	EstagioB Estagio = "B"
	EstagioC Estagio = "C"
	EstagioD Estagio = "D"
	EstagioE Estagio = "E"
	EstagioF Estagio = "F"
	EstagioG Estagio = "G"
	EstagioH Estagio = "H"
)

// FaixaDias é uma faixa da tabela de perda esperada. Intervalo fechado-aberto
// [Min, Max) em dias de atraso.
type FaixaDias struct {
	Min         int
	Max         int
	Estagio     Estagio
	Percentuais map[carteira.Classificacao]float64
}

// FaixaMeses é uma faixa da tabela de perda incorrida. Intervalo
// fechado-aberto [Min, Max) em meses de atraso; Max = 0 na última faixa
// indica intervalo aberto acima ("mais de N meses").
type FaixaMeses struct {
	Min         int
	Max         int
	Estagio     Estagio
	Percentuais map[carteira.Classificacao]float64
}

// TabelaProvisao agrupa as duas tabelas regulatórias de referência. É dado de
// configuração: carregada uma vez, validada e nunca alterada pelo motor.
type TabelaProvisao struct {
	Dias  []FaixaDias
	Meses []FaixaMeses
}

// TabelaPadrao retorna as faixas regulatórias embutidas. A tabela de dias
// cobre a janela de perda esperada (0 a 90 dias); a de meses começa em 3
// meses, que é onde cai quem acabou de sair da janela de 90 dias.
func TabelaPadrao() TabelaProvisao {
	return TabelaProvisao{
		Dias: []FaixaDias{
			{Min: 0, Max: 15, Estagio: EstagioA, Percentuais: map[carteira.Classificacao]float64{
				carteira.C1: 0.5, carteira.C2: 1, carteira.C3: 1.5, carteira.C4: 2, carteira.C5: 3,
			}},
			{Min: 15, Max: 31, Estagio: EstagioB, Percentuais: map[carteira.Classificacao]float64{
				carteira.C1: 1, carteira.C2: 2, carteira.C3: 3, carteira.C4: 4, carteira.C5: 5,
			}},
			{Min: 31, Max: 61, Estagio: EstagioC, Percentuais: map[carteira.Classificacao]float64{
				carteira.C1: 3, carteira.C2: 4, carteira.C3: 5, carteira.C4: 6, carteira.C5: 8,
			}},
			{Min: 61, Max: 91, Estagio: EstagioD, Percentuais: map[carteira.Classificacao]float64{
				carteira.C1: 5, carteira.C2: 7, carteira.C3: 8, carteira.C4: 9, carteira.C5: 10,
			}},
		},
		Meses: []FaixaMeses{
			{Min: 3, Max: 6, Estagio: EstagioE, Percentuais: map[carteira.Classificacao]float64{
				carteira.C1: 10, carteira.C2: 15, carteira.C3: 20, carteira.C4: 25, carteira.C5: 30,
			}},
			{Min: 6, Max: 12, Estagio: EstagioF, Percentuais: map[carteira.Classificacao]float64{
				carteira.C1: 30, carteira.C2: 40, carteira.C3: 50, carteira.C4: 60, carteira.C5: 70,
			}},
			{Min: 12, Max: 18, Estagio: EstagioG, Percentuais: map[carteira.Classificacao]float64{
				carteira.C1: 50, carteira.C2: 60, carteira.C3: 70, carteira.C4: 80, carteira.C5: 90,
			}},
			{Min: 18, Max: 0, Estagio: EstagioH, Percentuais: map[carteira.Classificacao]float64{
				carteira.C1: 100, carteira.C2: 100, carteira.C3: 100, carteira.C4: 100, carteira.C5: 100,
			}},
		},
	}
}

// Validar verifica a integridade da tabela na carga da configuração:
// faixas ordenadas e contíguas, última faixa de meses aberta acima, todas as
// carteiras presentes em todas as faixas, percentuais em [0,100] e
// não-decrescentes por carteira conforme o atraso cresce.
func (t TabelaProvisao) Validar() error {
	if len(t.Dias) == 0 {
		return fmt.Errorf("tabela de dias vazia")
	}
	if len(t.Meses) == 0 {
		return fmt.Errorf("tabela de meses vazia")
	}

	if t.Dias[0].Min != 0 {
		return fmt.Errorf("tabela de dias deve começar em 0, começa em %d", t.Dias[0].Min)
	}
	for i, f := range t.Dias {
		if f.Max <= f.Min {
			return fmt.Errorf("faixa de dias %d com intervalo inválido [%d, %d)", i, f.Min, f.Max)
		}
		if i > 0 && f.Min != t.Dias[i-1].Max {
			return fmt.Errorf("faixa de dias %d não é contígua à anterior", i)
		}
		if err := validarPercentuais(f.Percentuais); err != nil {
			return fmt.Errorf("faixa de dias %d: %w", i, err)
		}
	}

	for i, f := range t.Meses {
		ultima := i == len(t.Meses)-1
		if ultima {
			if f.Max != 0 {
				return fmt.Errorf("última faixa de meses deve ser aberta acima (Max = 0)")
			}
		} else if f.Max <= f.Min {
			return fmt.Errorf("faixa de meses %d com intervalo inválido [%d, %d)", i, f.Min, f.Max)
		}
		if i > 0 && f.Min != t.Meses[i-1].Max {
			return fmt.Errorf("faixa de meses %d não é contígua à anterior", i)
		}
		if err := validarPercentuais(f.Percentuais); err != nil {
			return fmt.Errorf("faixa de meses %d: %w", i, err)
		}
	}

	// Monotonicidade por carteira, atravessando as duas tabelas na ordem
	// em que o atraso as percorre (dias primeiro, meses depois).
	for _, c := range carteira.Todas() {
		anterior := -1.0
		for i, f := range t.Dias {
			p := f.Percentuais[c]
			if p < anterior {
				return fmt.Errorf("percentual da carteira %s decresce na faixa de dias %d", c, i)
			}
			anterior = p
		}
		for i, f := range t.Meses {
			p := f.Percentuais[c]
			if p < anterior {
				return fmt.Errorf("percentual da carteira %s decresce na faixa de meses %d", c, i)
			}
			anterior = p
		}
	}

	return nil
}

func validarPercentuais(p map[carteira.Classificacao]float64) error {
	for _, c := range carteira.Todas() {
		v, ok := p[c]
		if !ok {
			return fmt.Errorf("carteira %s sem percentual", c)
		}
		if v < 0 || v > 100 {
			return fmt.Errorf("percentual da carteira %s fora de [0,100]: %v", c, v)
		}
	}
	return nil
}
