package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type GuestListDTO struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	CPF         string          `json:"cpf"`
	CheckIn     *time.Time      `json:"check_in"`
	CheckOut    *time.Time      `json:"check_out"`
	Nights      int             `json:"nights"`
	NightlyRate decimal.Decimal `json:"nightly_rate"`
	Revenue     decimal.Decimal `json:"revenue"`
}
