// internal/carteira/carteira.go
package carteira

import (
	"fmt"
	"sort"
)

// Classificacao é a carteira regulatória de uma operação de crédito (C1 a C5).
// A classificação é fixada pelo tipo de operação do contrato, nunca pelo
// atraso. Quem varia com o atraso é o estágio, não a carteira.
type Classificacao string

const (
	C1 Classificacao = "C1"
	C2 Classificacao = "C2"
	C3 Classificacao = "C3"
	C4 Classificacao = "C4"
	C5 Classificacao = "C5"
)

// Todas retorna as classificações na ordem regulatória.
func Todas() []Classificacao {
	return []Classificacao{C1, C2, C3, C4, C5}
}

// Valida retorna erro se a classificação não for uma das cinco carteiras.
func (c Classificacao) Valida() error {
	switch c {
	case C1, C2, C3, C4, C5:
		return nil
	}
	return fmt.Errorf("classificação de carteira desconhecida: %q", string(c))
}

// tiposOperacao mapeia o tipo de operação do contrato para a carteira.
// Tabela fixa de negócio: operações com garantia real ficam nas carteiras
// baixas, crédito rotativo sem garantia nas altas.
var tiposOperacao = map[string]Classificacao{
	"financiamento imobiliario":    C1,
	"credito consignado":           C1,
	"financiamento de veiculos":    C2,
	"credito rural":                C2,
	"capital de giro com garantia": C2,
	"capital de giro":              C3,
	"desconto de duplicatas":       C3,
	"conta garantida":              C4,
	"cheque especial":              C4,
	"credito pessoal sem garantia": C5,
	"cartao de credito":            C5,
}

// PorTipoOperacao devolve a carteira fixa para o tipo de operação informado.
// Tipo desconhecido é erro fatal para o cálculo: a carteira escolhe a coluna
// de percentual da tabela e não pode ser chutada.
func PorTipoOperacao(tipo string) (Classificacao, error) {
	c, ok := tiposOperacao[tipo]
	if !ok {
		return "", fmt.Errorf("tipo de operação sem carteira definida: %q", tipo)
	}
	return c, nil
}

// TiposOperacao lista os tipos de operação reconhecidos, em ordem alfabética.
func TiposOperacao() []string {
	tipos := make([]string, 0, len(tiposOperacao))
	for t := range tiposOperacao {
		tipos = append(tipos, t)
	}
	sort.Strings(tipos)
	return tipos
}
