package recurso

import (
	"time"

	"gorm.io/gorm"
)

// Recurso é um material de apoio disponível na central de recursos
// (playbooks, apresentações, contratos-modelo).
type Recurso struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	Titulo    string `gorm:"not null" json:"titulo"`
	Descricao string `json:"descricao"`
	URL       string `gorm:"not null" json:"url"`
	Categoria string `gorm:"size:50;not null;default:'Marketing'" json:"categoria"`
}

// Migrate cria a tabela no banco de dados
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Recurso{})
}
