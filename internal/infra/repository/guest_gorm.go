package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/okabeach/flat-manager/internal/domain/guest"
	"github.com/okabeach/flat-manager/internal/models"
)

type GuestGormRepository struct {
	db *gorm.DB
}

func NewGuestGormRepository(db *gorm.DB) *GuestGormRepository {
	return &GuestGormRepository{db: db}
}

// --------------------------------------------------
// Property
// --------------------------------------------------

func (r *GuestGormRepository) GetPropertyByID(
	ctx context.Context,
	id uint,
) (*models.Property, error) {

	var property models.Property
	if err := r.db.WithContext(ctx).First(&property, id).Error; err != nil {
		return nil, err
	}
	return &property, nil
}

// --------------------------------------------------
// Guest
// --------------------------------------------------

func (r *GuestGormRepository) CreateGuest(
	ctx context.Context,
	g *models.Guest,
) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *GuestGormRepository) GetGuest(
	ctx context.Context,
	propertyID uint,
	guestID uuid.UUID,
) (*models.Guest, error) {

	var g models.Guest
	if err := r.db.WithContext(ctx).
		Where("id = ? AND property_id = ?", guestID, propertyID).
		First(&g).Error; err != nil {
		return nil, err
	}

	return &g, nil
}

func (r *GuestGormRepository) UpdateGuest(
	ctx context.Context,
	g *models.Guest,
) error {
	return r.db.WithContext(ctx).Save(g).Error
}

// Compile-time check
var _ domain.Repository = (*GuestGormRepository)(nil)
