// internal/pagamento/repository.go
package pagamento

import (
	"gorm.io/gorm"
)

// Repository encapsula operações de banco para Pagamento
type Repository struct {
	DB *gorm.DB
}

// NewRepository cria um novo repositório
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Create insere um novo pagamento
func (r *Repository) Create(p *Pagamento) error {
	return r.DB.Create(p).Error
}

// ListAll retorna todos os pagamentos, mais recentes primeiro
func (r *Repository) ListAll() ([]Pagamento, error) {
	var list []Pagamento
	err := r.DB.Order("data_pagamento DESC").Find(&list).Error
	return list, err
}

// ListByParceiro retorna os pagamentos de um parceiro
func (r *Repository) ListByParceiro(parceiroID uint) ([]Pagamento, error) {
	var list []Pagamento
	err := r.DB.Where("parceiro_id = ?", parceiroID).Order("data_pagamento DESC").Find(&list).Error
	return list, err
}

// Delete remove um pagamento (soft delete)
func (r *Repository) Delete(id uint) error {
	return r.DB.Delete(&Pagamento{}, id).Error
}

// DeleteEmMassa remove vários pagamentos numa única transação.
func (r *Repository) DeleteEmMassa(ids []uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Delete(&Pagamento{}, ids).Error
	})
}

// CreateInBatch insere o lote importado dentro da transação recebida.
func CreateInBatch(tx *gorm.DB, lote []Pagamento) error {
	if len(lote) == 0 {
		return nil
	}
	return tx.Create(&lote).Error
}
