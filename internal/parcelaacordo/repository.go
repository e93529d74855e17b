// internal/parcelaacordo/repository.go
package parcelaacordo

import (
	"time"

	"gorm.io/gorm"
)

// Repository encapsula o acesso a dados de Parcelas de Acordo.
type Repository struct {
	DB *gorm.DB
}

// NewRepository instancia um novo repositório.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// CreateInBatch cria múltiplas parcelas de uma vez (ignora se vazio).
func (r *Repository) CreateInBatch(parcelas []*ParcelaAcordo) error {
	if len(parcelas) == 0 {
		return nil
	}
	return r.DB.Create(parcelas).Error
}

// FindByID busca uma única parcela pelo seu ID.
func (r *Repository) FindByID(id uint) (*ParcelaAcordo, error) {
	var parcela ParcelaAcordo
	if err := r.DB.First(&parcela, id).Error; err != nil {
		return nil, err
	}
	return &parcela, nil
}

// ListByAcordoID busca todas as parcelas de um acordo, por vencimento.
func (r *Repository) ListByAcordoID(acordoID uint) ([]ParcelaAcordo, error) {
	var parcelas []ParcelaAcordo
	err := r.DB.
		Where("acordo_id = ?", acordoID).
		Order("data_vencimento ASC").
		Find(&parcelas).Error
	return parcelas, err
}

// Update atualiza todos os campos de uma parcela existente (Save exige PK).
func (r *Repository) Update(parcela *ParcelaAcordo) error {
	return r.DB.Save(parcela).Error
}

// DeleteByID apaga a parcela; retorna gorm.ErrRecordNotFound se nada foi deletado.
func (r *Repository) DeleteByID(id uint) error {
	res := r.DB.Delete(&ParcelaAcordo{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpdateStatus atualiza o status e ajusta data_pagamento.
// - Se status == "Paga", define data_pagamento = data informada.
// - Caso contrário, zera data_pagamento (NULL).
func (r *Repository) UpdateStatus(id uint, status string, dataPagamento time.Time) error {
	updates := map[string]interface{}{"status": status}
	if status == "Paga" {
		updates["data_pagamento"] = &dataPagamento
	} else {
		updates["data_pagamento"] = nil
	}
	return r.DB.Model(&ParcelaAcordo{}).
		Where("id = ?", id).
		Updates(updates).Error
}

// SumValorByAcordoID soma os valores das parcelas de um acordo.
// Se db == nil, usa o r.DB. Permite usar dentro de transação.
func (r *Repository) SumValorByAcordoID(db *gorm.DB, acordoID uint) (float64, error) {
	if db == nil {
		db = r.DB
	}
	var total float64
	err := db.Model(&ParcelaAcordo{}).
		Where("acordo_id = ?", acordoID).
		Select("COALESCE(SUM(valor), 0)").
		Scan(&total).Error
	return total, err
}

// RecalcTotalForAcordo calcula a soma e atualiza acordos.valor_total.
// Se db == nil, usa o r.DB. Permite usar dentro de transação.
func (r *Repository) RecalcTotalForAcordo(db *gorm.DB, acordoID uint) error {
	if db == nil {
		db = r.DB
	}
	total, err := r.SumValorByAcordoID(db, acordoID)
	if err != nil {
		return err
	}
	return db.Table("acordos").
		Where("id = ?", acordoID).
		Update("valor_total", total).Error
}
