// internal/atividade/repository.go
package atividade

import (
	"gorm.io/gorm"
)

// Repository encapsula operações de banco para Atividade
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(a *Atividade) error {
	return r.DB.Create(a).Error
}

func (r *Repository) FindByID(id uint) (*Atividade, error) {
	var a Atividade
	if err := r.DB.First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// ListRecentes retorna as últimas atividades para o feed do dashboard.
func (r *Repository) ListRecentes(limite int) ([]Atividade, error) {
	var list []Atividade
	err := r.DB.Order("created_at DESC").Limit(limite).Find(&list).Error
	return list, err
}

func (r *Repository) ListByParceiro(parceiroID uint) ([]Atividade, error) {
	var list []Atividade
	err := r.DB.Where("parceiro_id = ?", parceiroID).Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *Repository) Update(a *Atividade) error {
	return r.DB.Save(a).Error
}

func (r *Repository) Delete(id uint) error {
	return r.DB.Delete(&Atividade{}, id).Error
}
