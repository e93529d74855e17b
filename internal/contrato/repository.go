package contrato

import "gorm.io/gorm"

type Repository interface {
	Criar(db *gorm.DB, c *Contrato) error
	BuscarPorID(db *gorm.DB, id uint) (*Contrato, error)
	BuscarPorNumero(db *gorm.DB, numero string) (*Contrato, error)
	ListarTodos(db *gorm.DB) ([]Contrato, error)
	ListarPorAdvogado(db *gorm.DB, advogadoID uint) ([]Contrato, error)
	ListarPorBanco(db *gorm.DB, bancoID uint) ([]Contrato, error)
	Atualizar(db *gorm.DB, c *Contrato) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, c *Contrato) error {
	return db.Create(c).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Contrato, error) {
	var c Contrato
	err := db.Preload("Garantias").First(&c, id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repositoryImpl) BuscarPorNumero(db *gorm.DB, numero string) (*Contrato, error) {
	var c Contrato
	err := db.Preload("Garantias").Where("numero = ?", numero).First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Contrato, error) {
	var contratos []Contrato
	err := db.Preload("Garantias").Find(&contratos).Error
	return contratos, err
}

func (r *repositoryImpl) ListarPorAdvogado(db *gorm.DB, advogadoID uint) ([]Contrato, error) {
	var contratos []Contrato
	err := db.Preload("Garantias").Where("advogado_id = ?", advogadoID).Find(&contratos).Error
	return contratos, err
}

func (r *repositoryImpl) ListarPorBanco(db *gorm.DB, bancoID uint) ([]Contrato, error) {
	var contratos []Contrato
	err := db.Preload("Garantias").Where("banco_id = ?", bancoID).Find(&contratos).Error
	return contratos, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, c *Contrato) error {
	return db.Save(c).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Contrato{}, id).Error
}
