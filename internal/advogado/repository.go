package advogado

import (
	"strings"

	"github.com/MoraisCastro/api-provisionamento/internal/alerta"
	"github.com/MoraisCastro/api-provisionamento/internal/contrato"
	"gorm.io/gorm"
)

type Repository interface {
	BuscarPorEmailOuOAB(db *gorm.DB, valor string) (*Advogado, error)
	Salvar(db *gorm.DB, a *Advogado) error
	BuscarPorID(db *gorm.DB, id uint) (*Advogado, error)
	ListarTodos(db *gorm.DB) ([]Advogado, error)
	Atualizar(db *gorm.DB, id uint, novosDados *Advogado) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

// Busca primeiro por e-mail, depois por número de OAB, para evitar ambiguidade
func (r *repositoryImpl) BuscarPorEmailOuOAB(db *gorm.DB, valor string) (*Advogado, error) {
	var a Advogado

	if err := db.Where("email = ?", valor).First(&a).Error; err == nil {
		return &a, nil
	}
	if err := db.Where("oab = ?", valor).First(&a).Error; err == nil {
		return &a, nil
	}

	return nil, gorm.ErrRecordNotFound
}

func (r *repositoryImpl) Salvar(db *gorm.DB, a *Advogado) error {
	return db.Save(a).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Advogado, error) {
	var a Advogado
	err := db.Preload("Contratos").First(&a, id).Error
	return &a, err
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Advogado, error) {
	var advogados []Advogado
	err := db.Preload("Contratos").Find(&advogados).Error
	return advogados, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, id uint, novosDados *Advogado) error {
	var existente Advogado
	if err := db.First(&existente, id).Error; err != nil {
		return err
	}

	existente.Nome = novosDados.Nome
	existente.Sobrenome = novosDados.Sobrenome
	existente.OAB = novosDados.OAB
	existente.Email = novosDados.Email
	existente.Telefone = novosDados.Telefone
	existente.Foto = novosDados.Foto

	return db.Save(&existente).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Advogado{}, id).Error
}

// Monta um DTO com os principais dados e métricas da carteira do advogado
func MontarResumoAdvogadoDTO(
	a Advogado,
	contratos []contrato.Contrato,
	alertas []alerta.Alerta,
) ResumoAdvogadoDTO {
	var saldoTotal float64
	ativos := 0
	for _, c := range contratos {
		saldoTotal += c.SaldoDevedor
		status := strings.ToLower(strings.TrimSpace(c.Status))
		if status != "encerrado" {
			ativos++
		}
	}

	naoLidos := 0
	for _, al := range alertas {
		if !al.Lida {
			naoLidos++
		}
	}

	return ResumoAdvogadoDTO{
		ID:                a.ID,
		Nome:              a.Nome,
		Sobrenome:         a.Sobrenome,
		Email:             a.Email,
		OAB:               a.OAB,
		Telefone:          a.Telefone,
		Foto:              a.Foto,
		ContratosAtivos:   ativos,
		ContratosTotal:    len(contratos),
		SaldoDevedorTotal: saldoTotal,
		AlertasNaoLidos:   naoLidos,
	}
}
