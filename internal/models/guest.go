package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Hóspede cadastrado pelo operador do flat
type Guest struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	PropertyID uint      `gorm:"index;not null" json:"property_id"`

	Name string `gorm:"size:100;not null" json:"name"`
	// CPF armazenado sempre limpo (11 dígitos, sem pontuação)
	CPF       string    `gorm:"size:11;not null" json:"cpf"`
	BirthDate time.Time `gorm:"type:date" json:"birth_date"`
	Phone     string    `gorm:"size:20" json:"phone"`

	Street     string `gorm:"size:100" json:"street"`
	Number     string `gorm:"size:10" json:"number"`
	PostalCode string `gorm:"size:9" json:"postal_code"`
	District   string `gorm:"size:100" json:"district"`
	City       string `gorm:"size:100" json:"city"`
	State      string `gorm:"size:2" json:"state"`

	CheckIn  *time.Time `gorm:"type:date" json:"check_in"`
	CheckOut *time.Time `gorm:"type:date" json:"check_out"`

	Nights      int             `json:"nights"`
	NightlyRate decimal.Decimal `gorm:"type:decimal(12,2)" json:"nightly_rate"`

	// Receita é um valor derivado, mantido desnormalizado na linha:
	// sempre recalculada como Nights * NightlyRate antes de salvar,
	// nunca aceita como entrada.
	Revenue decimal.Decimal `gorm:"type:decimal(12,2)" json:"revenue"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (g *Guest) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}
