package guest_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/okabeach/flat-manager/internal/audit"
	domain "github.com/okabeach/flat-manager/internal/domain/guest"
	"github.com/okabeach/flat-manager/internal/httperr"
	"github.com/okabeach/flat-manager/internal/models"
	ucGuest "github.com/okabeach/flat-manager/internal/usecase/guest"
)

// =============================================================================
// TEST SETUP
// =============================================================================

type fakeRepo struct {
	property *models.Property
	guests   map[uuid.UUID]*models.Guest
	created  int
	updated  int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		property: &models.Property{ID: 1, Name: "Oka Beach"},
		guests:   map[uuid.UUID]*models.Guest{},
	}
}

func (r *fakeRepo) GetPropertyByID(ctx context.Context, id uint) (*models.Property, error) {
	if r.property == nil || r.property.ID != id {
		return nil, gorm.ErrRecordNotFound
	}
	return r.property, nil
}

func (r *fakeRepo) CreateGuest(ctx context.Context, g *models.Guest) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	copied := *g
	r.guests[g.ID] = &copied
	r.created++
	return nil
}

func (r *fakeRepo) GetGuest(ctx context.Context, propertyID uint, guestID uuid.UUID) (*models.Guest, error) {
	g, ok := r.guests[guestID]
	if !ok || g.PropertyID != propertyID {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *g
	return &copied, nil
}

func (r *fakeRepo) UpdateGuest(ctx context.Context, g *models.Guest) error {
	copied := *g
	r.guests[g.ID] = &copied
	r.updated++
	return nil
}

var _ domain.Repository = (*fakeRepo)(nil)

type noopSink struct{}

func (noopSink) Log(propertyID uint, userID *uint, action, entity, entityID string, metadata any) error {
	return nil
}

func validInput() ucGuest.GuestInput {
	return ucGuest.GuestInput{
		Name:        "Maria Souza",
		CPF:         "529.982.247-25",
		BirthDate:   "1990-04-12",
		Nights:      3,
		NightlyRate: decimal.RequireFromString("100.00"),
	}
}

// =============================================================================
// REGISTER
// =============================================================================

func TestRegisterGuest_OK(t *testing.T) {
	repo := newFakeRepo()
	uc := ucGuest.NewRegisterGuest(repo, audit.NewDispatcher(noopSink{}))

	g, err := uc.Execute(context.Background(), 1, 7, validInput())
	require.NoError(t, err)

	assert.Equal(t, 1, repo.created)
	assert.Equal(t, "52998224725", g.CPF, "CPF é armazenado limpo")
	assert.Equal(t, 3, g.Nights)
	assert.Equal(t, "300.00", g.Revenue.StringFixed(2))
}

func TestRegisterGuest_NightsDerivedFromDates(t *testing.T) {
	repo := newFakeRepo()
	uc := ucGuest.NewRegisterGuest(repo, audit.NewDispatcher(noopSink{}))

	in := validInput()
	in.CheckIn = "2024-01-10"
	in.CheckOut = "2024-01-13"
	in.Nights = 99 // entrada manual é ignorada quando as duas datas existem

	g, err := uc.Execute(context.Background(), 1, 7, in)
	require.NoError(t, err)

	assert.Equal(t, 3, g.Nights)
	assert.Equal(t, "300.00", g.Revenue.StringFixed(2))
}

func TestRegisterGuest_ManualNightsWithoutDates(t *testing.T) {
	repo := newFakeRepo()
	uc := ucGuest.NewRegisterGuest(repo, audit.NewDispatcher(noopSink{}))

	in := validInput()
	in.Nights = 5

	g, err := uc.Execute(context.Background(), 1, 7, in)
	require.NoError(t, err)

	assert.Equal(t, 5, g.Nights)
	assert.Equal(t, "500.00", g.Revenue.StringFixed(2))
}

func TestRegisterGuest_ValidationNeverReachesStore(t *testing.T) {
	repo := newFakeRepo()
	uc := ucGuest.NewRegisterGuest(repo, audit.NewDispatcher(noopSink{}))

	in := validInput()
	in.CPF = "11111111111"

	_, err := uc.Execute(context.Background(), 1, 7, in)

	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidCPF))
	assert.Equal(t, 0, repo.created, "hóspede inválido nunca chega ao banco")
}

func TestRegisterGuest_UnparseableBirthDate(t *testing.T) {
	repo := newFakeRepo()
	uc := ucGuest.NewRegisterGuest(repo, audit.NewDispatcher(noopSink{}))

	in := validInput()
	in.BirthDate = "12 de abril de 1990"

	_, err := uc.Execute(context.Background(), 1, 7, in)

	assert.True(t, httperr.IsBusiness(err, httperr.CodeMissingRequiredField))
	assert.Equal(t, 0, repo.created)
}

func TestRegisterGuest_UnparseableCheckIn(t *testing.T) {
	repo := newFakeRepo()
	uc := ucGuest.NewRegisterGuest(repo, audit.NewDispatcher(noopSink{}))

	in := validInput()
	in.CheckIn = "día extraño"

	_, err := uc.Execute(context.Background(), 1, 7, in)

	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidDate))
}

// =============================================================================
// UPDATE
// =============================================================================

func TestUpdateGuest_RecomputesRevenue(t *testing.T) {
	repo := newFakeRepo()
	register := ucGuest.NewRegisterGuest(repo, audit.NewDispatcher(noopSink{}))
	update := ucGuest.NewUpdateGuest(repo, audit.NewDispatcher(noopSink{}))

	g, err := register.Execute(context.Background(), 1, 7, validInput())
	require.NoError(t, err)

	in := validInput()
	in.Nights = 4
	in.NightlyRate = decimal.RequireFromString("150.00")

	updated, err := update.Execute(context.Background(), 1, 7, g.ID, in)
	require.NoError(t, err)

	assert.Equal(t, 1, repo.updated)
	assert.Equal(t, "600.00", updated.Revenue.StringFixed(2),
		"receita é recalculada na edição, nunca herdada do save anterior")
}

func TestUpdateGuest_NotFound(t *testing.T) {
	repo := newFakeRepo()
	update := ucGuest.NewUpdateGuest(repo, audit.NewDispatcher(noopSink{}))

	_, err := update.Execute(context.Background(), 1, 7, uuid.New(), validInput())

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUpdateGuest_RevalidatesInput(t *testing.T) {
	repo := newFakeRepo()
	register := ucGuest.NewRegisterGuest(repo, audit.NewDispatcher(noopSink{}))
	update := ucGuest.NewUpdateGuest(repo, audit.NewDispatcher(noopSink{}))

	g, err := register.Execute(context.Background(), 1, 7, validInput())
	require.NoError(t, err)

	in := validInput()
	in.Name = ""

	_, err = update.Execute(context.Background(), 1, 7, g.ID, in)

	assert.True(t, httperr.IsBusiness(err, httperr.CodeMissingRequiredField))
	assert.Equal(t, 0, repo.updated)

	stored, err := repo.GetGuest(context.Background(), 1, g.ID)
	require.NoError(t, err)
	assert.Equal(t, "Maria Souza", stored.Name, "edição rejeitada não altera o registro")
}

func TestRegisterGuest_PropertyMustExist(t *testing.T) {
	repo := newFakeRepo()
	uc := ucGuest.NewRegisterGuest(repo, audit.NewDispatcher(noopSink{}))

	_, err := uc.Execute(context.Background(), 42, 7, validInput())

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Equal(t, 0, repo.created)
}
