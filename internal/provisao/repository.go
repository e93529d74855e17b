// internal/provisao/repository.go
package provisao

import (
	"gorm.io/gorm"
)

// Repository encapsula operações de banco para AnaliseProvisao. As análises
// são imutáveis: o repositório só cria e consulta, nunca atualiza ou apaga.
type Repository struct {
	DB *gorm.DB
}

// NewRepository cria um novo repositório
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Create insere uma nova análise
func (r *Repository) Create(a *AnaliseProvisao) error {
	return r.DB.Create(a).Error
}

// FindByID retorna uma análise pelo ID
func (r *Repository) FindByID(id uint) (*AnaliseProvisao, error) {
	var a AnaliseProvisao
	if err := r.DB.First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// FindByContrato retorna todas as análises de um contrato, da mais recente
// para a mais antiga.
func (r *Repository) FindByContrato(contratoID uint) ([]AnaliseProvisao, error) {
	var list []AnaliseProvisao
	err := r.DB.
		Where("contrato_id = ?", contratoID).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

// FindUltimaPorContrato retorna a análise mais recente de um contrato, ou
// nil se nunca houve cálculo.
func (r *Repository) FindUltimaPorContrato(contratoID uint) (*AnaliseProvisao, error) {
	var a AnaliseProvisao
	err := r.DB.
		Where("contrato_id = ?", contratoID).
		Order("created_at DESC").
		First(&a).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}
