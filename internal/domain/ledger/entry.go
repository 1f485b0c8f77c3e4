package ledger

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/okabeach/flat-manager/internal/dates"
	"github.com/okabeach/flat-manager/internal/models"
)

// ===============================
// Lançamentos do resumo contábil
// ===============================

type Kind string

const (
	KindRevenue Kind = "revenue"
	KindExpense Kind = "expense"
)

// Entry é a visão uniforme sobre receitas de hóspedes e despesas,
// usada só para exibição e agregação; nunca é persistida.
type Entry struct {
	Kind        Kind            `json:"kind"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
}

// BuildEntries converte hóspedes e despesas em lançamentos. Hóspede
// sem receita não gera lançamento. A data da receita é o check-in
// quando informado, senão a data do cadastro.
func BuildEntries(guests []models.Guest, expenses []models.Expense) []Entry {
	entries := make([]Entry, 0, len(guests)+len(expenses))

	for _, g := range guests {
		if !g.Revenue.IsPositive() {
			continue
		}

		date := dates.Truncate(g.CreatedAt)
		if g.CheckIn != nil {
			date = dates.Truncate(*g.CheckIn)
		}

		entries = append(entries, Entry{
			Kind:        KindRevenue,
			Description: fmt.Sprintf("Locatário: %s", g.Name),
			Amount:      g.Revenue,
			Date:        date,
		})
	}

	for _, e := range expenses {
		entries = append(entries, Entry{
			Kind:        KindExpense,
			Description: e.Description,
			Amount:      e.Amount,
			Date:        dates.Truncate(e.Date),
		})
	}

	return entries
}

// FilterByRange mantém os lançamentos com data dentro de [start, end],
// inclusivo nas duas pontas. Filtrar exige as duas datas: com qualquer
// uma ausente a lista passa inteira.
func FilterByRange(entries []Entry, start, end *time.Time) []Entry {
	if start == nil || end == nil {
		return entries
	}

	from := dates.Truncate(*start)
	to := dates.Truncate(*end)

	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		d := dates.Truncate(e.Date)
		if d.Before(from) || d.After(to) {
			continue
		}
		out = append(out, e)
	}
	return out
}

type Totals struct {
	Revenue decimal.Decimal `json:"revenue"`
	Expense decimal.Decimal `json:"expense"`
	Balance decimal.Decimal `json:"balance"`
}

// ComputeTotals soma receitas e despesas da lista recebida (a visão
// ativa, filtrada ou não) e fecha o balanço.
func ComputeTotals(entries []Entry) Totals {
	revenue := decimal.Zero
	expense := decimal.Zero

	for _, e := range entries {
		switch e.Kind {
		case KindRevenue:
			revenue = revenue.Add(e.Amount)
		case KindExpense:
			expense = expense.Add(e.Amount)
		}
	}

	return Totals{
		Revenue: revenue,
		Expense: expense,
		Balance: revenue.Sub(expense),
	}
}
