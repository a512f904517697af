package oportunidade

import (
	"time"

	"gorm.io/gorm"
)

// Status possíveis de uma oportunidade. Apenas "Ganho" conta para a
// receita gerada do parceiro.
const (
	StatusPendente = "Pendente"
	StatusAprovado = "Aprovado"
	StatusGanho    = "Ganho"
	StatusPerdido  = "Perdido"
)

// Oportunidade representa uma indicação ou venda atribuída a um parceiro.
type Oportunidade struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	ParceiroID    uint      `gorm:"not null;index" json:"parceiroId"`
	NomeParceiro  string    `json:"nomeParceiro"`
	Cliente       string    `gorm:"not null" json:"cliente"`
	Valor         float64   `gorm:"not null;default:0" json:"valor"`
	Status        string    `gorm:"size:20;not null;default:'Pendente'" json:"status"`
	DataIndicacao time.Time `gorm:"not null;index" json:"dataIndicacao"`
}

// StatusValido confere se o status pertence ao conjunto aceito.
func StatusValido(s string) bool {
	switch s {
	case StatusPendente, StatusAprovado, StatusGanho, StatusPerdido:
		return true
	}
	return false
}

// Migrate cria a tabela no banco de dados
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Oportunidade{})
}
