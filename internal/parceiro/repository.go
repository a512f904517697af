package parceiro

import (
	"strings"

	"gorm.io/gorm"
)

type Repository interface {
	Salvar(db *gorm.DB, p *Parceiro) error
	BuscarPorID(db *gorm.DB, id uint) (*Parceiro, error)
	ListarTodos(db *gorm.DB) ([]Parceiro, error)
	Atualizar(db *gorm.DB, id uint, novosDados *Parceiro) error
	Deletar(db *gorm.DB, id uint) error
	Diretorio(db *gorm.DB) (map[string]uint, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, p *Parceiro) error {
	return db.Save(p).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Parceiro, error) {
	var p Parceiro
	err := db.First(&p, id).Error
	return &p, err
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Parceiro, error) {
	var parceiros []Parceiro
	err := db.Order("nome").Find(&parceiros).Error
	return parceiros, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, id uint, novosDados *Parceiro) error {
	var existente Parceiro
	if err := db.First(&existente, id).Error; err != nil {
		return err
	}

	existente.Nome = novosDados.Nome
	existente.Tipo = novosDados.Tipo
	existente.NomeContato = novosDados.NomeContato
	existente.EmailContato = novosDados.EmailContato

	return db.Save(&existente).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Parceiro{}, id).Error
}

// Diretorio monta o mapa nome (minúsculo, sem espaços nas pontas) → ID,
// usado na resolução de parceiros durante importações.
func (r *repositoryImpl) Diretorio(db *gorm.DB) (map[string]uint, error) {
	var parceiros []Parceiro
	if err := db.Find(&parceiros).Error; err != nil {
		return nil, err
	}

	diretorio := make(map[string]uint, len(parceiros))
	for _, p := range parceiros {
		diretorio[strings.ToLower(strings.TrimSpace(p.Nome))] = p.ID
	}
	return diretorio, nil
}
