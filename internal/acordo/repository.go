// internal/acordo/repository.go
package acordo

import (
	"gorm.io/gorm"
)

// Repository encapsula operações de banco para Acordo
type Repository struct {
	DB *gorm.DB
}

// NewRepository cria um novo repositório
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Create insere um novo acordo
func (r *Repository) Create(a *Acordo) error {
	return r.DB.Create(a).Error
}

// FindByContrato retorna todos os acordos de um contrato
func (r *Repository) FindByContrato(contratoID uint) ([]Acordo, error) {
	var list []Acordo
	err := r.DB.Where("contrato_id = ?", contratoID).Find(&list).Error
	return list, err
}

// FindByContratoAndStatus retorna os acordos de um contrato com um status específico.
func (r *Repository) FindByContratoAndStatus(contratoID uint, status string) ([]Acordo, error) {
	var list []Acordo
	err := r.DB.Where("contrato_id = ? AND status = ?", contratoID, status).Find(&list).Error
	return list, err
}

// FindByID retorna um acordo pelo ID
func (r *Repository) FindByID(id uint) (*Acordo, error) {
	var a Acordo
	if err := r.DB.First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// Update salva alterações em um acordo existente (atualiza todos os campos)
func (r *Repository) Update(a *Acordo) error {
	return r.DB.Save(a).Error
}

// UpdateStatus atualiza apenas o status de um acordo.
func (r *Repository) UpdateStatus(id uint, status string) error {
	return r.DB.Model(&Acordo{}).Where("id = ?", id).Update("status", status).Error
}

// Delete remove um acordo do banco (soft delete)
func (r *Repository) Delete(a *Acordo) error {
	return r.DB.Delete(a).Error
}

// ListByAdvogadoID busca todos os acordos dos contratos de um advogado,
// pré-carregando as parcelas de cada um.
func (r *Repository) ListByAdvogadoID(advogadoID uint) ([]Acordo, error) {
	var acordos []Acordo
	err := r.DB.
		Preload("Parcelas").
		Joins("JOIN contratos ON contratos.id = acordos.contrato_id").
		Where("contratos.advogado_id = ?", advogadoID).
		Find(&acordos).Error
	return acordos, err
}
