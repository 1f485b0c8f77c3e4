package ledger

import (
	"context"

	"github.com/okabeach/flat-manager/internal/models"
)

type Repository interface {
	ListGuests(
		ctx context.Context,
		propertyID uint,
	) ([]models.Guest, error)

	ListExpenses(
		ctx context.Context,
		propertyID uint,
	) ([]models.Expense, error)
}
