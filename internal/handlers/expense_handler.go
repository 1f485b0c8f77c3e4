package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/okabeach/flat-manager/internal/dates"
	"github.com/okabeach/flat-manager/internal/httperr"
	"github.com/okabeach/flat-manager/internal/httpresp"
	"github.com/okabeach/flat-manager/internal/middleware"
	"github.com/okabeach/flat-manager/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type ExpenseHandler struct {
	db *gorm.DB
}

func NewExpenseHandler(db *gorm.DB) *ExpenseHandler {
	return &ExpenseHandler{db: db}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateExpenseRequest struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
}

// ======================================================
// CREATE
// ======================================================

func (h *ExpenseHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	propertyID := c.MustGet(middleware.ContextPropertyID).(uint)

	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if strings.TrimSpace(req.Description) == "" || !req.Amount.IsPositive() {
		httperr.BadRequest(c, httperr.CodeMissingRequiredField,
			"Por favor, preencha todos os campos de despesa.")
		return
	}

	// Data ausente assume o dia do lançamento; data ilegível é erro
	date := dates.Today()
	if strings.TrimSpace(req.Date) != "" {
		parsed, err := dates.Parse(req.Date)
		if err != nil {
			httperr.BadRequest(c, httperr.CodeInvalidDate, "Data inválida.")
			return
		}
		date = parsed
	}

	expense := models.Expense{
		PropertyID:  propertyID,
		Description: strings.TrimSpace(req.Description),
		Amount:      req.Amount,
		Date:        date,
	}

	if err := h.db.Create(&expense).Error; err != nil {
		httperr.Internal(c, "failed_to_create_expense", "Erro ao adicionar despesa.")
		return
	}

	writeAudit(h.db, propertyID, &userID, "expense_created", "expense", expense.ID.String(), nil)

	c.JSON(http.StatusCreated, expense)
}

// ======================================================
// LIST
// ======================================================

func (h *ExpenseHandler) List(c *gin.Context) {
	propertyID := c.MustGet(middleware.ContextPropertyID).(uint)

	var expenses []models.Expense
	if err := h.db.
		Where("property_id = ?", propertyID).
		Order("date DESC").
		Find(&expenses).Error; err != nil {

		httperr.Internal(c, "failed_to_list_expenses", "Erro ao listar despesas.")
		return
	}

	httpresp.List(c, expenses)
}

// ======================================================
// DELETE
// ======================================================

func (h *ExpenseHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	propertyID := c.MustGet(middleware.ContextPropertyID).(uint)

	expenseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_expense_id", "Identificador de despesa inválido.")
		return
	}

	res := h.db.
		Where("id = ? AND property_id = ?", expenseID, propertyID).
		Delete(&models.Expense{})

	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_expense", "Erro ao deletar despesa.")
		return
	}

	if res.RowsAffected == 0 {
		httperr.NotFound(c, "expense_not_found", "Despesa não encontrada.")
		return
	}

	writeAudit(h.db, propertyID, &userID, "expense_deleted", "expense", expenseID.String(), nil)

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
