package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/okabeach/flat-manager/internal/httperr"
	"github.com/okabeach/flat-manager/internal/middleware"
	ucAccounting "github.com/okabeach/flat-manager/internal/usecase/accounting"
)

// ======================================================
// HANDLER
// ======================================================

type AccountingHandler struct {
	summary *ucAccounting.BuildSummary
}

func NewAccountingHandler(summary *ucAccounting.BuildSummary) *AccountingHandler {
	return &AccountingHandler{summary: summary}
}

// GET /api/me/accounting?start=2024-01-01&end=2024-01-31
func (h *AccountingHandler) Summary(c *gin.Context) {
	propertyID := c.MustGet(middleware.ContextPropertyID).(uint)

	start, err := parseOptionalQueryDate(c, "start")
	if err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidDate, "Data inicial inválida.")
		return
	}

	end, err := parseOptionalQueryDate(c, "end")
	if err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidDate, "Data final inválida.")
		return
	}

	summary, err := h.summary.Execute(c.Request.Context(), propertyID, start, end)
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeInvalidDateRange) {
			httperr.BadRequest(c, httperr.CodeInvalidDateRange,
				"Por favor, selecione um intervalo de datas.")
			return
		}
		httperr.Internal(c, "failed_to_build_summary", "Erro ao montar o resumo contábil.")
		return
	}

	c.JSON(http.StatusOK, summary)
}
