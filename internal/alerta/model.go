// internal/alerta/model.go
package alerta

import (
	"fmt"
	"time"

	"github.com/MoraisCastro/api-provisionamento/internal/momento"
	"gorm.io/gorm"
)

// Alerta registra um avanço de momento de negociação detectado em um
// cálculo de provisão. Criado uma vez por transição, marcado como lido pelo
// usuário, nunca apagado pelo motor.
type Alerta struct {
	ID                 uint            `gorm:"primaryKey" json:"id"`
	ContratoID         uint            `gorm:"not null;index" json:"contratoId"`
	MomentoAnterior    momento.Momento `gorm:"size:30;not null" json:"momentoAnterior"`
	MomentoNovo        momento.Momento `gorm:"size:30;not null" json:"momentoNovo"`
	PercentualAnterior float64         `gorm:"not null;default:0" json:"percentualAnterior"`
	PercentualNovo     float64         `gorm:"not null;default:0" json:"percentualNovo"`
	Mensagem           string          `gorm:"size:500;not null" json:"mensagem"`
	Lida               bool            `gorm:"not null;default:false;index" json:"lida"`
	CreatedAt          time.Time       `json:"createdAt"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Alerta{})
}

// NovoAlerta monta o registro de alerta com a mensagem determinística usada
// nas telas de revisão e no webhook.
func NovoAlerta(contratoID uint, tr momento.Transicao, percentualAnterior, percentualNovo float64) Alerta {
	return Alerta{
		ContratoID:         contratoID,
		MomentoAnterior:    tr.De,
		MomentoNovo:        tr.Para,
		PercentualAnterior: percentualAnterior,
		PercentualNovo:     percentualNovo,
		Mensagem: fmt.Sprintf(
			"Contrato %d avançou de momento '%s' para '%s': provisão passou de %.2f%% para %.2f%%",
			contratoID, tr.De, tr.Para, percentualAnterior, percentualNovo,
		),
	}
}
