package guest

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/okabeach/flat-manager/internal/dates"
	domain "github.com/okabeach/flat-manager/internal/domain/guest"
	"github.com/okabeach/flat-manager/internal/httperr"
	"github.com/okabeach/flat-manager/internal/models"
	"github.com/okabeach/flat-manager/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

// GuestInput é o formulário completo de cadastro/edição. Datas chegam
// como texto e são normalizadas aqui, na borda; o restante do sistema
// só vê datas civis.
type GuestInput struct {
	Name  string
	CPF   string
	Phone string

	BirthDate string

	Street     string
	Number     string
	PostalCode string
	District   string
	City       string
	State      string

	CheckIn  string
	CheckOut string

	Nights      int
	NightlyRate decimal.Decimal
}

// apply preenche o hóspede a partir do formulário, deriva as diárias
// quando check-in e check-out são conhecidos, valida e recalcula a
// receita. Usado tanto no cadastro quanto na edição: a receita nunca
// sobrevive de um save anterior sem ser recalculada.
func apply(g *models.Guest, in GuestInput, now time.Time) error {
	g.Name = strings.TrimSpace(in.Name)
	g.CPF = validators.CleanCPF(in.CPF)
	g.Phone = strings.TrimSpace(in.Phone)

	g.Street = in.Street
	g.Number = in.Number
	g.PostalCode = in.PostalCode
	g.District = in.District
	g.City = in.City
	g.State = in.State

	birth, err := parseRequiredDate(in.BirthDate)
	if err != nil {
		return err
	}
	g.BirthDate = birth

	g.CheckIn, err = parseOptionalDate(in.CheckIn)
	if err != nil {
		return err
	}
	g.CheckOut, err = parseOptionalDate(in.CheckOut)
	if err != nil {
		return err
	}

	g.Nights = in.Nights
	if g.CheckIn != nil && g.CheckOut != nil {
		g.Nights = domain.DeriveNights(g.CheckIn, g.CheckOut)
	}
	g.NightlyRate = in.NightlyRate

	if err := domain.Validate(g, now); err != nil {
		return err
	}

	g.Revenue = domain.ComputeRevenue(g.Nights, g.NightlyRate)
	return nil
}

// Data obrigatória ilegível conta como campo não preenchido;
// nunca substituímos silenciosamente pela data atual.
func parseRequiredDate(s string) (time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return time.Time{}, nil // Validate acusa o campo ausente
	}

	d, err := dates.Parse(s)
	if err != nil {
		return time.Time{}, httperr.ErrBusiness(httperr.CodeMissingRequiredField)
	}
	return d, nil
}

func parseOptionalDate(s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	d, err := dates.Parse(s)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidDate)
	}
	return &d, nil
}
