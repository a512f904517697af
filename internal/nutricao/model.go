package nutricao

import (
	"time"

	"gorm.io/gorm"
)

// Conteudo é uma publicação de nutrição de parceiros (direcionamentos,
// novidades do programa, treinamentos).
type Conteudo struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	Titulo string `gorm:"not null" json:"titulo"`
	Texto  string `gorm:"type:text;not null" json:"texto"`
}

// Migrate cria a tabela no banco de dados
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Conteudo{})
}
