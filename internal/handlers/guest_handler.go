package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/okabeach/flat-manager/internal/dto"
	"github.com/okabeach/flat-manager/internal/httperr"
	"github.com/okabeach/flat-manager/internal/httpresp"
	"github.com/okabeach/flat-manager/internal/middleware"
	"github.com/okabeach/flat-manager/internal/models"
	"github.com/okabeach/flat-manager/internal/validators"

	ucGuest "github.com/okabeach/flat-manager/internal/usecase/guest"
)

// ======================================================
// HANDLER
// ======================================================

type GuestHandler struct {
	db       *gorm.DB
	register *ucGuest.RegisterGuest
	update   *ucGuest.UpdateGuest
}

func NewGuestHandler(
	db *gorm.DB,
	register *ucGuest.RegisterGuest,
	update *ucGuest.UpdateGuest,
) *GuestHandler {
	return &GuestHandler{
		db:       db,
		register: register,
		update:   update,
	}
}

// ======================================================
// REQUESTS
// ======================================================

// Sem binding:required aqui de propósito: campos obrigatórios são
// responsabilidade das regras de cadastro, que reportam na ordem do
// formulário original.
type GuestRequest struct {
	Name  string `json:"name"`
	CPF   string `json:"cpf"`
	Phone string `json:"phone"`

	BirthDate string `json:"birth_date"`

	Street     string `json:"street"`
	Number     string `json:"number"`
	PostalCode string `json:"postal_code"`
	District   string `json:"district"`
	City       string `json:"city"`
	State      string `json:"state"`

	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`

	Nights      int             `json:"nights"`
	NightlyRate decimal.Decimal `json:"nightly_rate"`
}

func (r GuestRequest) toInput() ucGuest.GuestInput {
	return ucGuest.GuestInput{
		Name:        r.Name,
		CPF:         r.CPF,
		Phone:       r.Phone,
		BirthDate:   r.BirthDate,
		Street:      r.Street,
		Number:      r.Number,
		PostalCode:  r.PostalCode,
		District:    r.District,
		City:        r.City,
		State:       r.State,
		CheckIn:     r.CheckIn,
		CheckOut:    r.CheckOut,
		Nights:      r.Nights,
		NightlyRate: r.NightlyRate,
	}
}

// ======================================================
// HELPERS
// ======================================================

func writeGuestError(c *gin.Context, err error) {
	if code, ok := httperr.BusinessCode(err); ok {
		switch code {
		case httperr.CodeMissingRequiredField:
			httperr.BadRequest(c, code, "Campos obrigatórios devem ser preenchidos!")
		case httperr.CodeInvalidCPF:
			httperr.BadRequest(c, code, "CPF inválido! Por favor, digite novamente.")
		case httperr.CodeUnderageGuest:
			httperr.BadRequest(c, code, "O hóspede precisa ter pelo menos 18 anos para se cadastrar.")
		case httperr.CodeInvalidDate:
			httperr.BadRequest(c, code, "Data inválida.")
		default:
			httperr.BadRequest(c, code, "Dados inválidos.")
		}
		return
	}

	if err == gorm.ErrRecordNotFound {
		httperr.NotFound(c, "guest_not_found", "Hóspede não encontrado.")
		return
	}

	httperr.Internal(c, "guest_store_error", "Erro ao salvar o hóspede.")
}

// ======================================================
// CREATE
// ======================================================

func (h *GuestHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	propertyID := c.MustGet(middleware.ContextPropertyID).(uint)

	var req GuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	g, err := h.register.Execute(c.Request.Context(), propertyID, userID, req.toInput())
	if err != nil {
		writeGuestError(c, err)
		return
	}

	c.JSON(http.StatusCreated, g)
}

// ======================================================
// LIST
// ======================================================

func (h *GuestHandler) List(c *gin.Context) {
	propertyID := c.MustGet(middleware.ContextPropertyID).(uint)

	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Where("property_id = ?", propertyID)

	if query != "" {
		like := "%" + query + "%"
		if digits := validators.CleanCPF(query); digits != "" {
			q = q.Where("LOWER(name) LIKE ? OR cpf LIKE ?", like, "%"+digits+"%")
		} else {
			q = q.Where("LOWER(name) LIKE ?", like)
		}
	}

	var guests []models.Guest
	if err := q.
		Order("created_at DESC").
		Find(&guests).Error; err != nil {

		httperr.Internal(c, "failed_to_list_guests", "Erro ao listar hóspedes.")
		return
	}

	out := make([]dto.GuestListDTO, 0, len(guests))
	for _, g := range guests {
		out = append(out, dto.GuestListDTO{
			ID:          g.ID,
			Name:        g.Name,
			CPF:         g.CPF,
			CheckIn:     g.CheckIn,
			CheckOut:    g.CheckOut,
			Nights:      g.Nights,
			NightlyRate: g.NightlyRate,
			Revenue:     g.Revenue,
		})
	}

	httpresp.List(c, out)
}

// ======================================================
// GET BY ID
// ======================================================

func (h *GuestHandler) Get(c *gin.Context) {
	propertyID := c.MustGet(middleware.ContextPropertyID).(uint)

	guestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_guest_id", "Identificador de hóspede inválido.")
		return
	}

	var g models.Guest
	if err := h.db.
		Where("id = ? AND property_id = ?", guestID, propertyID).
		First(&g).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "guest_not_found", "Hóspede não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_guest", "Erro ao buscar o hóspede.")
		return
	}

	c.JSON(http.StatusOK, g)
}

// ======================================================
// UPDATE
// ======================================================

func (h *GuestHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	propertyID := c.MustGet(middleware.ContextPropertyID).(uint)

	guestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_guest_id", "Identificador de hóspede inválido.")
		return
	}

	var req GuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	g, err := h.update.Execute(c.Request.Context(), propertyID, userID, guestID, req.toInput())
	if err != nil {
		writeGuestError(c, err)
		return
	}

	c.JSON(http.StatusOK, g)
}

// ======================================================
// DELETE
// ======================================================

func (h *GuestHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	propertyID := c.MustGet(middleware.ContextPropertyID).(uint)

	guestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_guest_id", "Identificador de hóspede inválido.")
		return
	}

	res := h.db.
		Where("id = ? AND property_id = ?", guestID, propertyID).
		Delete(&models.Guest{})

	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_guest", "Erro ao deletar o hóspede.")
		return
	}

	if res.RowsAffected == 0 {
		httperr.NotFound(c, "guest_not_found", "Hóspede não encontrado.")
		return
	}

	writeAudit(h.db, propertyID, &userID, "guest_deleted", "guest", guestID.String(), nil)

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
