// internal/momento/momento.go
package momento

import "fmt"

// Momento é o momento de negociação do contrato, derivado do percentual de
// provisão. Quanto maior a provisão já constituída pelo banco, melhor a
// posição do devedor na mesa: a enumeração é estritamente ordenada.
type Momento string

const (
	Inicial        Momento = "inicial"
	Favoravel      Momento = "favoravel"
	MuitoFavoravel Momento = "muito_favoravel"
	Otimo          Momento = "otimo"
	Premium        Momento = "premium"
	Total          Momento = "total"
)

// ordem dá o posto de cada momento para comparação.
var ordem = map[Momento]int{
	Inicial:        0,
	Favoravel:      1,
	MuitoFavoravel: 2,
	Otimo:          3,
	Premium:        4,
	Total:          5,
}

// Rank retorna o posto do momento na ordenação (0 = inicial).
func (m Momento) Rank() int {
	return ordem[m]
}

// Valida retorna erro se o momento não for um dos seis conhecidos.
func (m Momento) Valida() error {
	if _, ok := ordem[m]; !ok {
		return fmt.Errorf("momento de negociação desconhecido: %q", string(m))
	}
	return nil
}

// Faixa associa o percentual mínimo de provisão a um momento.
type Faixa struct {
	PercentualMinimo float64 `json:"percentualMinimo"`
	Momento          Momento `json:"momento"`
}

// Tabela é a configuração de limiares dos momentos, ordenada por percentual
// crescente. Os cortes exatos são parâmetro de negócio, não constante do
// motor; o motor só exige a ordenação.
type Tabela []Faixa

// TabelaPadrao retorna os limiares usados pelo escritório.
func TabelaPadrao() Tabela {
	return Tabela{
		{PercentualMinimo: 0, Momento: Inicial},
		{PercentualMinimo: 30, Momento: Favoravel},
		{PercentualMinimo: 50, Momento: MuitoFavoravel},
		{PercentualMinimo: 70, Momento: Otimo},
		{PercentualMinimo: 90, Momento: Premium},
		{PercentualMinimo: 100, Momento: Total},
	}
}

// Validar confere a tabela na carga: não vazia, começando em 0, percentuais
// estritamente crescentes e momentos em ordem estritamente crescente de posto.
func (t Tabela) Validar() error {
	if len(t) == 0 {
		return fmt.Errorf("tabela de momentos vazia")
	}
	if t[0].PercentualMinimo != 0 {
		return fmt.Errorf("primeira faixa deve começar em 0%%")
	}
	for i, f := range t {
		if err := f.Momento.Valida(); err != nil {
			return fmt.Errorf("faixa %d: %w", i, err)
		}
		if i == 0 {
			continue
		}
		if f.PercentualMinimo <= t[i-1].PercentualMinimo {
			return fmt.Errorf("faixa %d: percentuais devem ser estritamente crescentes", i)
		}
		if f.Momento.Rank() <= t[i-1].Momento.Rank() {
			return fmt.Errorf("faixa %d: momentos fora de ordem", i)
		}
	}
	return nil
}

// Determinar devolve o momento mais alto cujo limiar é menor ou igual ao
// percentual informado.
func (t Tabela) Determinar(percentual float64) Momento {
	m := t[0].Momento
	for _, f := range t {
		if percentual >= f.PercentualMinimo {
			m = f.Momento
		}
	}
	return m
}
