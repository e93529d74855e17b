package momento

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAvaliarTransicaoPrimeiroCalculo(t *testing.T) {
	tab := TabelaPadrao()
	assert.Nil(t, tab.AvaliarTransicao(nil, Otimo, ModoPorFaixa))
	assert.Nil(t, tab.AvaliarTransicao(nil, Inicial, ModoDireto))
}

func TestAvaliarTransicaoSemAvanco(t *testing.T) {
	tab := TabelaPadrao()
	de := Otimo

	// Empate e regressão não geram transição.
	assert.Nil(t, tab.AvaliarTransicao(&de, Otimo, ModoPorFaixa))
	assert.Nil(t, tab.AvaliarTransicao(&de, Favoravel, ModoPorFaixa))
	assert.Nil(t, tab.AvaliarTransicao(&de, Inicial, ModoDireto))
}

func TestAvaliarTransicaoAvancoSimples(t *testing.T) {
	tab := TabelaPadrao()
	de := Favoravel

	transicoes := tab.AvaliarTransicao(&de, MuitoFavoravel, ModoPorFaixa)
	assert.Equal(t, []Transicao{{De: Favoravel, Para: MuitoFavoravel}}, transicoes)
}

func TestAvaliarTransicaoSaltoPorFaixa(t *testing.T) {
	// Salto de inicial para otimo cruza três limiares: uma transição por faixa.
	tab := TabelaPadrao()
	de := Inicial

	transicoes := tab.AvaliarTransicao(&de, Otimo, ModoPorFaixa)
	assert.Equal(t, []Transicao{
		{De: Inicial, Para: Favoravel},
		{De: Favoravel, Para: MuitoFavoravel},
		{De: MuitoFavoravel, Para: Otimo},
	}, transicoes)
}

func TestAvaliarTransicaoSaltoDireto(t *testing.T) {
	tab := TabelaPadrao()
	de := Inicial

	transicoes := tab.AvaliarTransicao(&de, Otimo, ModoDireto)
	assert.Equal(t, []Transicao{{De: Inicial, Para: Otimo}}, transicoes)
}

func TestAvaliarTransicaoSequenciaCompleta(t *testing.T) {
	// Avançando um momento por vez, cada limiar gera exatamente um alerta.
	tab := TabelaPadrao()
	seq := []Momento{Inicial, Favoravel, MuitoFavoravel, Otimo, Premium, Total}

	total := 0
	for i := 1; i < len(seq); i++ {
		anterior := seq[i-1]
		transicoes := tab.AvaliarTransicao(&anterior, seq[i], ModoPorFaixa)
		assert.Len(t, transicoes, 1)
		total += len(transicoes)
	}
	assert.Equal(t, len(seq)-1, total)
}
