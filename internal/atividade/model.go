package atividade

import (
	"time"

	"gorm.io/gorm"
)

// Atividade registra uma interação com o parceiro (reunião, ligação,
// email, marco). Puramente informativa: nenhum cálculo depende dela.
type Atividade struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	ParceiroID   uint   `gorm:"not null;index" json:"parceiroId"`
	NomeParceiro string `json:"nomeParceiro"`
	Tipo         string `gorm:"size:50;not null;default:'Reunião'" json:"tipo"`
	Descricao    string `gorm:"not null" json:"descricao"`
}

// Migrate cria a tabela no banco de dados
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Atividade{})
}
