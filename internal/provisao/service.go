// internal/provisao/service.go
package provisao

import (
	"fmt"
	"log"
	"time"

	"github.com/MoraisCastro/api-provisionamento/internal/alerta"
	"github.com/MoraisCastro/api-provisionamento/internal/carteira"
	"github.com/MoraisCastro/api-provisionamento/internal/contrato"
	"github.com/MoraisCastro/api-provisionamento/internal/inadimplencia"
	"github.com/MoraisCastro/api-provisionamento/internal/momento"
	"gorm.io/gorm"
)

// Service orquestra a cadeia completa de cálculo de um contrato: atraso →
// percentual/estágio → análise persistida → momento de negociação → alertas.
// As tabelas são configuração validada na construção e tratadas como
// somente leitura daí em diante.
type Service struct {
	DB         *gorm.DB
	Tabela     TabelaProvisao
	Momentos   momento.Tabela
	ModoAlerta momento.ModoAlerta

	ContratoRepo contrato.Repository
	AlertaRepo   alerta.Repository
}

// NewService valida as tabelas e monta o serviço de cálculo.
func NewService(db *gorm.DB, t TabelaProvisao, m momento.Tabela, modo momento.ModoAlerta) (*Service, error) {
	if err := t.Validar(); err != nil {
		return nil, fmt.Errorf("tabela de provisão inválida: %w", err)
	}
	if err := m.Validar(); err != nil {
		return nil, fmt.Errorf("tabela de momentos inválida: %w", err)
	}
	if modo == "" {
		modo = momento.ModoPorFaixa
	}
	return &Service{
		DB:           db,
		Tabela:       t,
		Momentos:     m,
		ModoAlerta:   modo,
		ContratoRepo: contrato.NewRepository(),
		AlertaRepo:   alerta.NewRepository(),
	}, nil
}

// ResultadoCalculo agrupa o que um cálculo produziu para um contrato.
type ResultadoCalculo struct {
	Analise AnaliseProvisao `json:"analise"`
	Momento momento.Momento `json:"momento"`
	Alertas []alerta.Alerta `json:"alertas"`
}

// CalcularParaContrato executa a cadeia de cálculo e persiste o resultado
// em uma transação: insere a análise, avança o momento do contrato e cria
// um alerta por transição detectada. A análise anterior nunca é tocada.
func (s *Service) CalcularParaContrato(c *contrato.Contrato, dataReferencia time.Time) (*ResultadoCalculo, error) {
	classificacao, err := carteira.PorTipoOperacao(c.TipoOperacao)
	if err != nil {
		return nil, err
	}

	atraso := inadimplencia.CalcularAtraso(c.DataInadimplencia, dataReferencia)
	cobertura := c.CoberturaGarantia()

	res, err := Resolver(s.Tabela, classificacao, atraso, cobertura)
	if err != nil {
		return nil, err
	}
	if res.FallbackTabela {
		log.Printf("aviso: contrato %d sem faixa de provisão para atraso de %d dias / %d meses; teto conservador aplicado",
			c.ID, atraso.DiasAtraso, atraso.MesesAtraso)
	}

	analise := AnaliseProvisao{
		ContratoID:         c.ID,
		DiasAtraso:         atraso.DiasAtraso,
		MesesAtraso:        atraso.MesesAtraso,
		DataAusente:        atraso.DataAusente,
		Classificacao:      classificacao,
		Regime:             res.Regime,
		Estagio:            res.Estagio,
		PercentualBase:     res.PercentualBase,
		CoberturaGarantia:  cobertura,
		PercentualAjustado: res.PercentualAjustado,
		ValorProvisao:      c.SaldoDevedor * res.PercentualAjustado / 100,
		FallbackTabela:     res.FallbackTabela,
		DataReferencia:     dataReferencia,
		Metodo:             descreverMetodo(res, atraso),
	}

	momentoAtual := s.Momentos.Determinar(res.PercentualAjustado)

	var alertas []alerta.Alerta
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := NewRepository(tx).Create(&analise); err != nil {
			return fmt.Errorf("erro ao gravar análise: %w", err)
		}

		momentoRepo := momento.NewRepository(tx)
		estado, err := momentoRepo.FindByContrato(c.ID)
		if err != nil {
			return fmt.Errorf("erro ao buscar momento do contrato: %w", err)
		}

		var anterior *momento.Momento
		percentualAnterior := 0.0
		if estado != nil {
			anterior = &estado.MomentoAtual
			percentualAnterior = estado.PercentualAtual
		}

		transicoes := s.Momentos.AvaliarTransicao(anterior, momentoAtual, s.ModoAlerta)
		for _, tr := range transicoes {
			a := alerta.NovoAlerta(c.ID, tr, percentualAnterior, res.PercentualAjustado)
			if err := s.AlertaRepo.Criar(tx, &a); err != nil {
				return fmt.Errorf("erro ao gravar alerta: %w", err)
			}
			alertas = append(alertas, a)
		}

		// O momento persistido só anda para frente; em queda de
		// percentual o estado registrado permanece.
		if estado == nil || momentoAtual.Rank() >= estado.MomentoAtual.Rank() {
			if err := momentoRepo.Avancar(c.ID, momentoAtual, res.PercentualAjustado); err != nil {
				return fmt.Errorf("erro ao gravar momento do contrato: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &ResultadoCalculo{
		Analise: analise,
		Momento: momentoAtual,
		Alertas: alertas,
	}, nil
}

// FalhaRecalculo descreve um contrato que falhou dentro de um recálculo em
// lote.
type FalhaRecalculo struct {
	ContratoID uint   `json:"contratoId"`
	Numero     string `json:"numero"`
	Erro       string `json:"erro"`
}

// ResultadoLote resume um recálculo em lote.
type ResultadoLote struct {
	Total    int              `json:"total"`
	Sucessos int              `json:"sucessos"`
	Alertas  []alerta.Alerta  `json:"alertas"`
	Falhas   []FalhaRecalculo `json:"falhas"`
}

// RecalcularTodos recalcula a provisão de todos os contratos na data de
// referência informada. Cada contrato é uma unidade de trabalho isolada:
// falha em um é registrada e não interrompe os demais.
func (s *Service) RecalcularTodos(dataReferencia time.Time) (*ResultadoLote, error) {
	contratos, err := s.ContratoRepo.ListarTodos(s.DB)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar contratos: %w", err)
	}

	lote := &ResultadoLote{Total: len(contratos)}
	for i := range contratos {
		c := &contratos[i]
		res, err := s.CalcularParaContrato(c, dataReferencia)
		if err != nil {
			log.Printf("recálculo: contrato %d (%s) falhou: %v", c.ID, c.Numero, err)
			lote.Falhas = append(lote.Falhas, FalhaRecalculo{
				ContratoID: c.ID,
				Numero:     c.Numero,
				Erro:       err.Error(),
			})
			continue
		}
		lote.Sucessos++
		lote.Alertas = append(lote.Alertas, res.Alertas...)
	}
	return lote, nil
}

func descreverMetodo(res Resultado, atraso inadimplencia.Atraso) string {
	regime := "perda esperada (faixas por dias de atraso)"
	if res.Regime == RegimePerdaIncorrida {
		regime = "perda incorrida (faixas por meses de atraso)"
	}
	texto := fmt.Sprintf("Regime de %s; %d dias / %d meses de atraso; estágio %s.",
		regime, atraso.DiasAtraso, atraso.MesesAtraso, res.Estagio)
	if atraso.DataAusente {
		texto += " Data de inadimplência ausente: contrato tratado como adimplente."
	}
	if res.FallbackTabela {
		texto += " Teto conservador aplicado por lacuna na tabela de faixas."
	}
	return texto
}
