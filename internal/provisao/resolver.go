// internal/provisao/resolver.go
package provisao

import (
	"github.com/MoraisCastro/api-provisionamento/internal/carteira"
	"github.com/MoraisCastro/api-provisionamento/internal/inadimplencia"
)

// Percentuais de teto usados quando nenhuma faixa cobre o atraso. Isso só
// acontece com tabela de configuração incompleta; o resultado carrega a
// marca de fallback para o chamador registrar o aviso.
const (
	tetoFallbackMeses = 100.0
	tetoFallbackDias  = 10.0
)

// Resultado é a saída do resolvedor de percentual de provisão.
type Resultado struct {
	Regime             Regime
	Estagio            Estagio
	PercentualBase     float64
	PercentualAjustado float64
	// FallbackTabela indica que nenhuma faixa cobriu o atraso e o teto
	// conservador foi aplicado. Dado de configuração incompleto, não um
	// desfecho de negócio válido.
	FallbackTabela bool
}

// Resolver calcula o percentual de provisão para um contrato.
//
// Regra de corte de regime: até 90 dias de atraso vale a tabela de perda
// esperada (por dias); acima, a de perda incorrida (por meses). O corte é
// regulatório e abrupto, sem transição suave.
//
// A cobertura de garantia desconta proporcionalmente o percentual base:
// ajustado = base − base × (cobertura/100), com a cobertura saturada em
// [0, 100] antes do uso.
//
// Carteira desconhecida é erro: ela escolhe a coluna da tabela e não pode
// ser presumida.
func Resolver(t TabelaProvisao, c carteira.Classificacao, atraso inadimplencia.Atraso, coberturaGarantia float64) (Resultado, error) {
	if err := c.Valida(); err != nil {
		return Resultado{}, err
	}

	var res Resultado
	if atraso.DiasAtraso <= 90 {
		res = resolverDias(t.Dias, c, atraso.DiasAtraso)
	} else {
		res = resolverMeses(t.Meses, c, atraso.MesesAtraso)
	}

	res.PercentualAjustado = ajustarPorGarantia(res.PercentualBase, coberturaGarantia)
	return res, nil
}

func resolverDias(faixas []FaixaDias, c carteira.Classificacao, dias int) Resultado {
	for _, f := range faixas {
		if dias >= f.Min && dias < f.Max {
			return Resultado{
				Regime:         RegimePerdaEsperada,
				Estagio:        f.Estagio,
				PercentualBase: f.Percentuais[c],
			}
		}
	}
	return Resultado{
		Regime:         RegimePerdaEsperada,
		Estagio:        ultimoEstagioDias(faixas),
		PercentualBase: tetoFallbackDias,
		FallbackTabela: true,
	}
}

func resolverMeses(faixas []FaixaMeses, c carteira.Classificacao, meses int) Resultado {
	for i, f := range faixas {
		ultima := i == len(faixas)-1
		// A última faixa é aberta acima: "mais de N meses".
		if meses >= f.Min && (ultima || meses < f.Max) {
			return Resultado{
				Regime:         RegimePerdaIncorrida,
				Estagio:        f.Estagio,
				PercentualBase: f.Percentuais[c],
			}
		}
	}
	return Resultado{
		Regime:         RegimePerdaIncorrida,
		Estagio:        EstagioH,
		PercentualBase: tetoFallbackMeses,
		FallbackTabela: true,
	}
}

func ultimoEstagioDias(faixas []FaixaDias) Estagio {
	if len(faixas) == 0 {
		return EstagioD
	}
	return faixas[len(faixas)-1].Estagio
}

func ajustarPorGarantia(base, cobertura float64) float64 {
	if cobertura < 0 {
		cobertura = 0
	}
	if cobertura > 100 {
		cobertura = 100
	}
	ajustado := base - base*(cobertura/100)
	if ajustado < 0 {
		ajustado = 0
	}
	return ajustado
}
