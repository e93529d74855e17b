package comentario

import "gorm.io/gorm"

// Comentario é uma anotação de negociação em um contrato. Comentários de
// sistema (System = true) são gerados por rotinas internas e não têm autor.
type Comentario struct {
	gorm.Model
	Texto      string `json:"texto"`
	ContratoID uint   `gorm:"not null;index" json:"contratoId"`
	AdvogadoID uint   `json:"advogadoId"` // 0 quando comentário de sistema
	System     bool   `gorm:"not null;default:false" json:"system"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Comentario{})
}
