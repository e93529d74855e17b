// internal/alerta/repository.go
package alerta

import "gorm.io/gorm"

type Repository interface {
	Criar(db *gorm.DB, a *Alerta) error
	ListarTodos(db *gorm.DB) ([]Alerta, error)
	ListarPorLida(db *gorm.DB, lida bool) ([]Alerta, error)
	ListarPorContrato(db *gorm.DB, contratoID uint) ([]Alerta, error)
	BuscarPorID(db *gorm.DB, id uint) (*Alerta, error)
	MarcarComoLida(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, a *Alerta) error {
	return db.Create(a).Error
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Alerta, error) {
	var alertas []Alerta
	err := db.Order("created_at DESC").Find(&alertas).Error
	return alertas, err
}

func (r *repositoryImpl) ListarPorLida(db *gorm.DB, lida bool) ([]Alerta, error) {
	var alertas []Alerta
	err := db.Where("lida = ?", lida).Order("created_at DESC").Find(&alertas).Error
	return alertas, err
}

func (r *repositoryImpl) ListarPorContrato(db *gorm.DB, contratoID uint) ([]Alerta, error) {
	var alertas []Alerta
	err := db.Where("contrato_id = ?", contratoID).Order("created_at DESC").Find(&alertas).Error
	return alertas, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Alerta, error) {
	var a Alerta
	if err := db.First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repositoryImpl) MarcarComoLida(db *gorm.DB, id uint) error {
	return db.Model(&Alerta{}).Where("id = ?", id).Update("lida", true).Error
}
