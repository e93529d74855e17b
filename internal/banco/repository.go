package banco

import "gorm.io/gorm"

type Repository interface {
	Criar(db *gorm.DB, b *Banco) error
	BuscarPorID(db *gorm.DB, id uint) (*Banco, error)
	BuscarPorCodigo(db *gorm.DB, codigo string) (*Banco, error)
	ListarTodos(db *gorm.DB) ([]Banco, error)
	Atualizar(db *gorm.DB, b *Banco) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, b *Banco) error {
	return db.Create(b).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Banco, error) {
	var b Banco
	err := db.First(&b, id).Error
	return &b, err
}

func (r *repositoryImpl) BuscarPorCodigo(db *gorm.DB, codigo string) (*Banco, error) {
	var b Banco
	err := db.Where("codigo_compe = ?", codigo).First(&b).Error
	return &b, err
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Banco, error) {
	var bancos []Banco
	err := db.Order("nome ASC").Find(&bancos).Error
	return bancos, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, b *Banco) error {
	return db.Save(b).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Banco{}, id).Error
}
