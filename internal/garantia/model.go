// internal/garantia/model.go
package garantia

import "gorm.io/gorm"

// Garantia é uma garantia vinculada a um contrato (imóvel, veículo,
// recebíveis, aval). A soma das garantias ativas abate o percentual de
// provisão do contrato.
type Garantia struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	ContratoID uint    `gorm:"not null;index" json:"contratoId"`
	Tipo       string  `gorm:"size:100;not null" json:"tipo"`
	Descricao  string  `gorm:"size:255" json:"descricao"`
	Valor      float64 `gorm:"not null;default:0" json:"valor"`
	Ativa      bool    `gorm:"not null;default:true" json:"ativa"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Garantia{})
}
