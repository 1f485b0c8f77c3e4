package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/okabeach/flat-manager/internal/domain/ledger"
	"github.com/okabeach/flat-manager/internal/models"
)

type LedgerGormRepository struct {
	db *gorm.DB
}

func NewLedgerGormRepository(db *gorm.DB) *LedgerGormRepository {
	return &LedgerGormRepository{db: db}
}

func (r *LedgerGormRepository) ListGuests(
	ctx context.Context,
	propertyID uint,
) ([]models.Guest, error) {

	var guests []models.Guest
	if err := r.db.WithContext(ctx).
		Where("property_id = ?", propertyID).
		Order("created_at ASC").
		Find(&guests).Error; err != nil {
		return nil, err
	}

	return guests, nil
}

func (r *LedgerGormRepository) ListExpenses(
	ctx context.Context,
	propertyID uint,
) ([]models.Expense, error) {

	var expenses []models.Expense
	if err := r.db.WithContext(ctx).
		Where("property_id = ?", propertyID).
		Order("date ASC").
		Find(&expenses).Error; err != nil {
		return nil, err
	}

	return expenses, nil
}

// Compile-time check
var _ domain.Repository = (*LedgerGormRepository)(nil)
