// internal/momento/repository.go
package momento

import (
	"errors"

	"gorm.io/gorm"
)

// Repository encapsula operações de banco para o estado de momento.
type Repository struct {
	DB *gorm.DB
}

// NewRepository cria um novo repositório.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// FindByContrato retorna o estado de momento de um contrato, ou nil se o
// contrato ainda não teve cálculo.
func (r *Repository) FindByContrato(contratoID uint) (*MomentoContrato, error) {
	var mc MomentoContrato
	err := r.DB.Where("contrato_id = ?", contratoID).First(&mc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &mc, nil
}

// Avancar grava o novo momento e percentual do contrato, criando a linha no
// primeiro cálculo. Nunca é chamado para regredir o momento.
func (r *Repository) Avancar(contratoID uint, m Momento, percentual float64) error {
	var mc MomentoContrato
	err := r.DB.Where("contrato_id = ?", contratoID).First(&mc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		mc = MomentoContrato{
			ContratoID:      contratoID,
			MomentoAtual:    m,
			PercentualAtual: percentual,
		}
		return r.DB.Create(&mc).Error
	}
	if err != nil {
		return err
	}

	return r.DB.Model(&mc).Updates(map[string]interface{}{
		"momento_atual":    m,
		"percentual_atual": percentual,
	}).Error
}
