// internal/oportunidade/repository.go
package oportunidade

import (
	"gorm.io/gorm"
)

// Repository encapsula operações de banco para Oportunidade
type Repository struct {
	DB *gorm.DB
}

// NewRepository cria um novo repositório
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Create insere uma nova oportunidade
func (r *Repository) Create(o *Oportunidade) error {
	return r.DB.Create(o).Error
}

// FindByID retorna uma oportunidade pelo ID
func (r *Repository) FindByID(id uint) (*Oportunidade, error) {
	var o Oportunidade
	if err := r.DB.First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// ListAll retorna todas as oportunidades, mais recentes primeiro
func (r *Repository) ListAll() ([]Oportunidade, error) {
	var list []Oportunidade
	err := r.DB.Order("data_indicacao DESC").Find(&list).Error
	return list, err
}

// ListByParceiro retorna as oportunidades de um parceiro
func (r *Repository) ListByParceiro(parceiroID uint) ([]Oportunidade, error) {
	var list []Oportunidade
	err := r.DB.Where("parceiro_id = ?", parceiroID).Order("data_indicacao DESC").Find(&list).Error
	return list, err
}

// Update salva alterações em uma oportunidade existente
func (r *Repository) Update(o *Oportunidade) error {
	return r.DB.Save(o).Error
}

// Delete remove uma oportunidade (soft delete)
func (r *Repository) Delete(id uint) error {
	return r.DB.Delete(&Oportunidade{}, id).Error
}

// DeleteEmMassa remove várias oportunidades numa única transação:
// ou todas saem, ou nenhuma.
func (r *Repository) DeleteEmMassa(ids []uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Delete(&Oportunidade{}, ids).Error
	})
}

// CreateInBatch insere o lote importado dentro da transação recebida.
func CreateInBatch(tx *gorm.DB, lote []Oportunidade) error {
	if len(lote) == 0 {
		return nil
	}
	return tx.Create(&lote).Error
}
