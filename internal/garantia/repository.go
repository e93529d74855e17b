// internal/garantia/repository.go
package garantia

import "gorm.io/gorm"

// Repository encapsula operações de banco para Garantia
type Repository struct {
	DB *gorm.DB
}

// NewRepository cria um novo repositório
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Create insere uma nova garantia
func (r *Repository) Create(g *Garantia) error {
	return r.DB.Create(g).Error
}

// FindByContrato retorna todas as garantias de um contrato
func (r *Repository) FindByContrato(contratoID uint) ([]Garantia, error) {
	var list []Garantia
	err := r.DB.Where("contrato_id = ?", contratoID).Find(&list).Error
	return list, err
}

// FindByID retorna uma garantia pelo ID
func (r *Repository) FindByID(id uint) (*Garantia, error) {
	var g Garantia
	if err := r.DB.First(&g, id).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

// Update salva alterações em uma garantia existente
func (r *Repository) Update(g *Garantia) error {
	return r.DB.Save(g).Error
}

// Delete remove uma garantia do banco
func (r *Repository) Delete(g *Garantia) error {
	return r.DB.Delete(g).Error
}

// SomarAtivasPorContrato retorna a soma dos valores das garantias ativas de
// um contrato.
func (r *Repository) SomarAtivasPorContrato(contratoID uint) (float64, error) {
	var total float64
	err := r.DB.
		Model(&Garantia{}).
		Where("contrato_id = ? AND ativa = ?", contratoID, true).
		Select("COALESCE(SUM(valor), 0)").
		Scan(&total).Error
	return total, err
}
