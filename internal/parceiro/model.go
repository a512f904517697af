package parceiro

import (
	"time"

	"gorm.io/gorm"
)

// Parceiro representa um canal de vendas do programa de parceria.
// O nível (Prata/Ouro/Diamante) nunca é persistido: é sempre derivado dos
// pagamentos do período consultado.
type Parceiro struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	Nome         string `gorm:"uniqueIndex;not null" json:"nome"`
	Tipo         string `gorm:"size:20;not null;default:'FINDER'" json:"tipo"`
	NomeContato  string `json:"nomeContato"`
	EmailContato string `json:"emailContato"`
}

// Migrate cria a tabela no banco de dados
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Parceiro{})
}
