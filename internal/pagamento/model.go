package pagamento

import (
	"time"

	"gorm.io/gorm"
)

// Pagamento registra dinheiro efetivamente recebido via um parceiro.
// É a soma destes valores, e não o valor das oportunidades, que define o
// nível de comissionamento do parceiro no período.
type Pagamento struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	ParceiroID    uint      `gorm:"not null;index" json:"parceiroId"`
	NomeParceiro  string    `json:"nomeParceiro"`
	Cliente       string    `gorm:"not null" json:"cliente"`
	Valor         float64   `gorm:"not null;default:0" json:"valor"`
	DataPagamento time.Time `gorm:"not null;index" json:"dataPagamento"`
}

// Migrate cria a tabela no banco de dados
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Pagamento{})
}
