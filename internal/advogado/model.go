package advogado

import (
	"github.com/MoraisCastro/api-provisionamento/internal/contrato"
	"gorm.io/gorm"
)

// Advogado é um usuário do escritório (advogado ou negociador).
type Advogado struct {
	gorm.Model
	Nome                  string              `json:"nome"`
	Sobrenome             string              `json:"sobrenome"`
	OAB                   string              `json:"oab" gorm:"unique"`
	Email                 string              `json:"email" gorm:"unique"`
	Telefone              string              `json:"telefone"`
	Foto                  string              `json:"foto"`
	Senha                 string              `json:"-"`
	PrecisaRedefinirSenha bool                `json:"-"`
	IsAdmin               bool                `json:"isAdmin"`
	Contratos             []contrato.Contrato `gorm:"foreignKey:AdvogadoID" json:"contratos,omitempty"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Advogado{})
}
