package guest

import (
	"strings"
	"time"

	"github.com/okabeach/flat-manager/internal/dates"
	"github.com/okabeach/flat-manager/internal/httperr"
	"github.com/okabeach/flat-manager/internal/models"
	"github.com/okabeach/flat-manager/internal/validators"
)

const MinimumAge = 18

// ===============================
// Validação de cadastro
// ===============================

// Validate aplica as regras de cadastro sobre o hóspede já preenchido,
// na ordem fixa do formulário original: a primeira regra que falhar
// determina o erro reportado.
func Validate(g *models.Guest, now time.Time) error {
	if strings.TrimSpace(g.Name) == "" || strings.TrimSpace(g.CPF) == "" {
		return httperr.ErrBusiness(httperr.CodeMissingRequiredField)
	}

	if g.Nights <= 0 || !g.NightlyRate.IsPositive() {
		return httperr.ErrBusiness(httperr.CodeMissingRequiredField)
	}

	if g.BirthDate.IsZero() {
		return httperr.ErrBusiness(httperr.CodeMissingRequiredField)
	}

	if !validators.IsValidCPF(g.CPF) {
		return httperr.ErrBusiness(httperr.CodeInvalidCPF)
	}

	// No dia exato do 18º aniversário o hóspede já é elegível
	if dates.Age(g.BirthDate, now) < MinimumAge {
		return httperr.ErrBusiness(httperr.CodeUnderageGuest)
	}

	return nil
}
