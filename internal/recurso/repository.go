// internal/recurso/repository.go
package recurso

import (
	"gorm.io/gorm"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(rec *Recurso) error {
	return r.DB.Create(rec).Error
}

func (r *Repository) FindByID(id uint) (*Recurso, error) {
	var rec Recurso
	if err := r.DB.First(&rec, id).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *Repository) ListAll() ([]Recurso, error) {
	var list []Recurso
	err := r.DB.Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *Repository) Update(rec *Recurso) error {
	return r.DB.Save(rec).Error
}

func (r *Repository) Delete(id uint) error {
	return r.DB.Delete(&Recurso{}, id).Error
}
