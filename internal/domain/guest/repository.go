package guest

import (
	"context"

	"github.com/google/uuid"

	"github.com/okabeach/flat-manager/internal/models"
)

type Repository interface {
	// -------- Property --------
	GetPropertyByID(
		ctx context.Context,
		id uint,
	) (*models.Property, error)

	// -------- Guest --------
	CreateGuest(
		ctx context.Context,
		g *models.Guest,
	) error

	GetGuest(
		ctx context.Context,
		propertyID uint,
		guestID uuid.UUID,
	) (*models.Guest, error)

	UpdateGuest(
		ctx context.Context,
		g *models.Guest,
	) error
}
