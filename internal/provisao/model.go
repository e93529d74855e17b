package provisao

import (
	"time"

	"github.com/MoraisCastro/api-provisionamento/internal/carteira"
	"gorm.io/gorm"
)

// AnaliseProvisao é o resultado persistido de um cálculo de provisão.
// Registro imutável e versionado pela data de criação: cada recálculo cria
// uma linha nova, nenhuma linha é alterada depois de gravada.
type AnaliseProvisao struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	ContratoID uint `gorm:"not null;index" json:"contratoId"`

	DiasAtraso  int  `gorm:"not null;default:0" json:"diasAtraso"`
	MesesAtraso int  `gorm:"not null;default:0" json:"mesesAtraso"`
	DataAusente bool `gorm:"not null;default:false" json:"dataAusente"`

	Classificacao carteira.Classificacao `gorm:"size:5;not null" json:"classificacao"`
	Regime        Regime                 `gorm:"size:30;not null" json:"regime"`
	Estagio       Estagio                `gorm:"size:2;not null" json:"estagio"`

	PercentualBase     float64 `gorm:"not null;default:0" json:"percentualBase"`
	CoberturaGarantia  float64 `gorm:"not null;default:0" json:"coberturaGarantia"`
	PercentualAjustado float64 `gorm:"not null;default:0" json:"percentualAjustado"`
	ValorProvisao      float64 `gorm:"not null;default:0" json:"valorProvisao"`

	// FallbackTabela marca cálculo resolvido pelo teto conservador por
	// lacuna na tabela de faixas. Aviso de integridade de dado, não
	// resultado de negócio.
	FallbackTabela bool `gorm:"not null;default:false" json:"fallbackTabela"`

	DataReferencia time.Time `gorm:"not null" json:"dataReferencia"`
	Metodo         string    `gorm:"size:500" json:"metodo"`

	CreatedAt time.Time `json:"createdAt"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&AnaliseProvisao{})
}
