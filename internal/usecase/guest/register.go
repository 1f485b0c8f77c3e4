package guest

import (
	"context"

	"github.com/okabeach/flat-manager/internal/audit"
	"github.com/okabeach/flat-manager/internal/dates"
	domain "github.com/okabeach/flat-manager/internal/domain/guest"
	"github.com/okabeach/flat-manager/internal/models"
)

// ======================================================
// USE CASE
// ======================================================

type RegisterGuest struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRegisterGuest(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *RegisterGuest {
	return &RegisterGuest{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *RegisterGuest) Execute(
	ctx context.Context,
	propertyID uint,
	userID uint,
	in GuestInput,
) (*models.Guest, error) {

	if _, err := uc.repo.GetPropertyByID(ctx, propertyID); err != nil {
		return nil, err
	}

	g := &models.Guest{PropertyID: propertyID}

	// Validação vem antes de qualquer escrita: hóspede inválido
	// nunca chega ao banco.
	if err := apply(g, in, dates.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.CreateGuest(ctx, g); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		PropertyID: propertyID,
		UserID:     &userID,
		Action:     "guest_created",
		Entity:     "guest",
		EntityID:   g.ID.String(),
	})

	return g, nil
}
