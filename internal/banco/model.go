// internal/banco/model.go
package banco

import (
	"time"

	"gorm.io/gorm"
)

// Banco é a instituição financeira credora dos contratos.
type Banco struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Nome        string    `gorm:"size:100;not null" json:"nome"`
	CodigoCompe string    `gorm:"size:10;uniqueIndex" json:"codigoCompe"` // código COMPE/BCB, ex: "001", "237"
	CNPJ        string    `gorm:"size:20" json:"cnpj"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Banco{})
}
