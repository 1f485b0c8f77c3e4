package guest

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/okabeach/flat-manager/internal/dates"
)

// ===============================
// Cálculo de cobrança
// ===============================

// DeriveNights conta as diárias entre check-in e check-out. Só calcula
// quando as duas datas são conhecidas; intervalos negativos ou nulos
// resultam em zero (o campo também aceita digitação manual).
func DeriveNights(checkIn, checkOut *time.Time) int {
	if checkIn == nil || checkOut == nil {
		return 0
	}

	nights := dates.DaysBetween(*checkIn, *checkOut)
	if nights < 0 {
		return 0
	}
	return nights
}

// ComputeRevenue é sempre diárias × valor da diária, exato.
func ComputeRevenue(nights int, nightlyRate decimal.Decimal) decimal.Decimal {
	return nightlyRate.Mul(decimal.NewFromInt(int64(nights)))
}
