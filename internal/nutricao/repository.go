// internal/nutricao/repository.go
package nutricao

import (
	"gorm.io/gorm"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(c *Conteudo) error {
	return r.DB.Create(c).Error
}

func (r *Repository) FindByID(id uint) (*Conteudo, error) {
	var c Conteudo
	if err := r.DB.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repository) ListAll() ([]Conteudo, error) {
	var list []Conteudo
	err := r.DB.Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *Repository) Update(c *Conteudo) error {
	return r.DB.Save(c).Error
}

func (r *Repository) Delete(id uint) error {
	return r.DB.Delete(&Conteudo{}, id).Error
}
