// internal/momento/transicao.go
package momento

// ModoAlerta define como transições que pulam momentos intermediários são
// reportadas.
type ModoAlerta string

const (
	// ModoPorFaixa emite uma transição por limiar cruzado, preservando a
	// trilha de auditoria mesmo quando o percentual salta vários momentos.
	ModoPorFaixa ModoAlerta = "por_faixa"
	// ModoDireto emite uma única transição do momento anterior direto ao novo.
	ModoDireto ModoAlerta = "direto"
)

// Transicao é um avanço de momento detectado entre dois cálculos.
type Transicao struct {
	De   Momento
	Para Momento
}

// AvaliarTransicao compara o momento recém-calculado com o registrado e
// devolve as transições a reportar, em ordem.
//
// Primeiro cálculo (anterior nil) nunca gera transição. Empate não gera
// transição. Momento calculado abaixo do registrado também não: o momento
// persistido nunca regride automaticamente, a redução de percentual fica
// visível apenas na análise.
func (t Tabela) AvaliarTransicao(anterior *Momento, atual Momento, modo ModoAlerta) []Transicao {
	if anterior == nil {
		return nil
	}
	if atual.Rank() <= anterior.Rank() {
		return nil
	}

	if modo == ModoDireto {
		return []Transicao{{De: *anterior, Para: atual}}
	}

	// Uma transição por faixa cruzada, passando por cada momento
	// intermediário da tabela.
	var transicoes []Transicao
	de := *anterior
	for _, f := range t {
		if f.Momento.Rank() <= de.Rank() {
			continue
		}
		if f.Momento.Rank() > atual.Rank() {
			break
		}
		transicoes = append(transicoes, Transicao{De: de, Para: f.Momento})
		de = f.Momento
	}
	return transicoes
}
