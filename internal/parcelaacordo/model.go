// internal/parcelaacordo/model.go
package parcelaacordo

import (
	"time"

	"gorm.io/gorm"
)

// ParcelaAcordo representa uma única parcela de pagamento de um acordo.
type ParcelaAcordo struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	AcordoID       uint       `gorm:"not null;index" json:"acordoId"`
	Valor          float64    `gorm:"not null;default:0" json:"valor"`
	Comprovante    string     `gorm:"size:255" json:"comprovante"`
	DataVencimento time.Time  `gorm:"not null" json:"dataVencimento"`
	Status         string     `gorm:"size:50;not null;default:'Pendente';index" json:"status"`
	DataPagamento  *time.Time `json:"dataPagamento"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&ParcelaAcordo{})
}
