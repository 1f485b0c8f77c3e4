package guest

import (
	"context"

	"github.com/google/uuid"

	"github.com/okabeach/flat-manager/internal/audit"
	"github.com/okabeach/flat-manager/internal/dates"
	domain "github.com/okabeach/flat-manager/internal/domain/guest"
	"github.com/okabeach/flat-manager/internal/models"
)

type UpdateGuest struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateGuest(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateGuest {
	return &UpdateGuest{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateGuest) Execute(
	ctx context.Context,
	propertyID uint,
	userID uint,
	guestID uuid.UUID,
	in GuestInput,
) (*models.Guest, error) {

	g, err := uc.repo.GetGuest(ctx, propertyID, guestID)
	if err != nil {
		return nil, err
	}

	// Edição repassa pelo mesmo funil do cadastro: revalida tudo e
	// recalcula a receita a partir das diárias e do valor atuais.
	if err := apply(g, in, dates.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateGuest(ctx, g); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		PropertyID: propertyID,
		UserID:     &userID,
		Action:     "guest_updated",
		Entity:     "guest",
		EntityID:   g.ID.String(),
	})

	return g, nil
}
