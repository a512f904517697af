package usuario

import (
	"gorm.io/gorm"
)

// Usuario é uma conta de acesso ao painel.
type Usuario struct {
	gorm.Model
	Nome    string `json:"nome"`
	Email   string `json:"email" gorm:"unique"`
	Senha   string `json:"-"`
	IsAdmin bool   `json:"isAdmin"`
}

// Migrate cria a tabela no banco de dados
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Usuario{})
}
