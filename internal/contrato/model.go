package contrato

import (
	"time"

	"github.com/MoraisCastro/api-provisionamento/internal/garantia"
	"gorm.io/gorm"
)

// Contrato representa uma dívida bancária sob análise do escritório.
// É o retrato de entrada do cálculo de provisão: valores, datas, garantias
// e o tipo de operação que fixa a carteira (C1 a C5).
type Contrato struct {
	gorm.Model

	Numero     string `gorm:"size:50;not null;uniqueIndex" json:"numero"` // número do contrato junto ao banco
	BancoID    uint   `gorm:"not null;index" json:"bancoId"`
	AdvogadoID uint   `gorm:"not null;index" json:"advogadoId"` // advogado responsável

	TipoOperacao  string  `gorm:"size:100;not null" json:"tipoOperacao"` // ex: "capital de giro", "cheque especial"
	ValorOriginal float64 `gorm:"not null" json:"valorOriginal"`
	SaldoDevedor  float64 `gorm:"not null" json:"saldoDevedor"`

	DataContratacao   time.Time  `json:"dataContratacao"`
	DataInadimplencia *time.Time `json:"dataInadimplencia"` // nulo enquanto adimplente

	PossuiGarantia bool    `json:"possuiGarantia"`
	ValorGarantia  float64 `gorm:"not null;default:0" json:"valorGarantia"` // informado quando não há garantias detalhadas

	Reestruturado      bool       `json:"reestruturado"`
	DataReestruturacao *time.Time `json:"dataReestruturacao"`

	Status string `gorm:"size:50;default:'Em Análise'" json:"status"` // ex: "Em Análise", "Em Negociação", "Encerrado"

	// Garantias detalhadas do contrato (imóveis, veículos, recebíveis...)
	Garantias []garantia.Garantia `gorm:"foreignKey:ContratoID;constraint:OnDelete:CASCADE" json:"garantias"`
}

// CoberturaGarantia calcula o percentual do saldo devedor coberto por
// garantia, saturado em 100. Usa as garantias ativas detalhadas quando
// existem; senão, o valor agregado informado no contrato.
func (c *Contrato) CoberturaGarantia() float64 {
	if c.SaldoDevedor <= 0 {
		return 0
	}

	valor := c.ValorGarantia
	if len(c.Garantias) > 0 {
		valor = 0
		for _, g := range c.Garantias {
			if g.Ativa {
				valor += g.Valor
			}
		}
	}
	if !c.PossuiGarantia && valor == 0 {
		return 0
	}

	cobertura := valor / c.SaldoDevedor * 100
	if cobertura > 100 {
		cobertura = 100
	}
	if cobertura < 0 {
		cobertura = 0
	}
	return cobertura
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Contrato{})
}
