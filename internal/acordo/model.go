package acordo

import (
	"time"

	"github.com/MoraisCastro/api-provisionamento/internal/momento"
	"github.com/MoraisCastro/api-provisionamento/internal/parcelaacordo"
	"gorm.io/gorm"
)

// Acordo representa uma proposta de acordo com o banco credor para um
// contrato em análise. Guarda o momento de negociação vigente na data da
// proposta para a avaliação posterior da estratégia.
type Acordo struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	ContratoID uint `gorm:"not null;index" json:"contratoId"`
	AdvogadoID uint `gorm:"not null;index" json:"advogadoId"`

	Status            string          `gorm:"size:50;not null;default:'Proposto';index" json:"status"` // ex: "Proposto", "Aceito", "Recusado", "Quitado"
	ValorProposto     float64         `gorm:"not null;default:0" json:"valorProposto"`
	ValorTotal        float64         `gorm:"not null;default:0" json:"valorTotal"` // somado das parcelas
	DescontoPercent   float64         `gorm:"not null;default:0" json:"descontoPercent"`
	MomentoNaProposta momento.Momento `gorm:"size:30" json:"momentoNaProposta"`

	ModoPagamento string    `json:"modoPagamento"`
	QtdParcelas   int       `gorm:"not null;default:0" json:"qtdParcelas"`
	DataProposta  time.Time `gorm:"not null" json:"dataProposta"`

	// Associação com as parcelas geradas
	Parcelas []parcelaacordo.ParcelaAcordo `gorm:"foreignKey:AcordoID;constraint:OnDelete:CASCADE" json:"parcelas"`
}

// Migrate cria a tabela no banco de dados e aplica relacionamentos
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Acordo{})
}
