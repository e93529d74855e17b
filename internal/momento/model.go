// internal/momento/model.go
package momento

import (
	"time"

	"gorm.io/gorm"
)

// MomentoContrato é o estado explícito do momento de negociação de um
// contrato. Uma linha por contrato, atualizada apenas para frente; o
// histórico fino fica nas análises de provisão, que são imutáveis.
type MomentoContrato struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	ContratoID      uint      `gorm:"not null;uniqueIndex" json:"contratoId"`
	MomentoAtual    Momento   `gorm:"size:30;not null;default:'inicial'" json:"momentoAtual"`
	PercentualAtual float64   `gorm:"not null;default:0" json:"percentualAtual"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&MomentoContrato{})
}
