package ledger_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okabeach/flat-manager/internal/domain/ledger"
	"github.com/okabeach/flat-manager/internal/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func revenueEntry(amount string, date time.Time) ledger.Entry {
	return ledger.Entry{
		Kind:        ledger.KindRevenue,
		Description: "Locatário: Maria Souza",
		Amount:      money(amount),
		Date:        date,
	}
}

func expenseEntry(amount string, date time.Time) ledger.Entry {
	return ledger.Entry{
		Kind:        ledger.KindExpense,
		Description: "Conta de luz",
		Amount:      money(amount),
		Date:        date,
	}
}

// =============================================================================
// BUILD ENTRIES
// =============================================================================

func TestBuildEntries(t *testing.T) {
	checkIn := day(2024, time.January, 20)

	guests := []models.Guest{
		{
			Name:    "Maria Souza",
			Revenue: money("300.00"),
			CheckIn: &checkIn,
		},
		{
			// sem receita: não gera lançamento
			Name:    "João Lima",
			Revenue: decimal.Zero,
		},
	}

	expenses := []models.Expense{
		{Description: "Conta de luz", Amount: money("10.00"), Date: day(2024, time.January, 5)},
	}

	entries := ledger.BuildEntries(guests, expenses)
	require.Len(t, entries, 2)

	assert.Equal(t, ledger.KindRevenue, entries[0].Kind)
	assert.Equal(t, "Locatário: Maria Souza", entries[0].Description)
	assert.Equal(t, day(2024, time.January, 20), entries[0].Date)

	assert.Equal(t, ledger.KindExpense, entries[1].Kind)
	assert.Equal(t, "Conta de luz", entries[1].Description)
}

func TestBuildEntries_GuestDateFallsBackToCreatedAt(t *testing.T) {
	guests := []models.Guest{
		{
			Name:      "Maria Souza",
			Revenue:   money("300.00"),
			CreatedAt: time.Date(2024, time.February, 2, 15, 30, 0, 0, time.UTC),
		},
	}

	entries := ledger.BuildEntries(guests, nil)
	require.Len(t, entries, 1)
	assert.Equal(t, day(2024, time.February, 2), entries[0].Date)
}

// =============================================================================
// FILTER
// =============================================================================

func TestFilterByRange_MissingBoundIsIdentity(t *testing.T) {
	entries := []ledger.Entry{
		revenueEntry("300.00", day(2024, time.January, 20)),
		expenseEntry("10.00", day(2024, time.February, 5)),
	}

	start := day(2024, time.January, 1)

	assert.Equal(t, entries, ledger.FilterByRange(entries, nil, nil))
	assert.Equal(t, entries, ledger.FilterByRange(entries, &start, nil))
	assert.Equal(t, entries, ledger.FilterByRange(entries, nil, &start))
}

func TestFilterByRange_InclusiveBounds(t *testing.T) {
	entries := []ledger.Entry{
		revenueEntry("100.00", day(2024, time.January, 1)),
		revenueEntry("200.00", day(2024, time.January, 31)),
		expenseEntry("10.00", day(2024, time.February, 1)),
	}

	start := day(2024, time.January, 1)
	end := day(2024, time.January, 31)

	out := ledger.FilterByRange(entries, &start, &end)
	require.Len(t, out, 2)
	assert.Equal(t, money("100.00"), out[0].Amount)
	assert.Equal(t, money("200.00"), out[1].Amount)
}

// =============================================================================
// TOTALS
// =============================================================================

func TestComputeTotals(t *testing.T) {
	entries := []ledger.Entry{
		revenueEntry("300.00", day(2024, time.January, 20)),
		expenseEntry("10.00", day(2024, time.January, 5)),
		expenseEntry("20.00", day(2024, time.February, 10)),
	}

	totals := ledger.ComputeTotals(entries)

	assert.Equal(t, "300.00", totals.Revenue.StringFixed(2))
	assert.Equal(t, "30.00", totals.Expense.StringFixed(2))
	assert.Equal(t, "270.00", totals.Balance.StringFixed(2))
}

func TestComputeTotals_Additive(t *testing.T) {
	a := []ledger.Entry{
		revenueEntry("100.00", day(2024, time.January, 1)),
		revenueEntry("50.00", day(2024, time.January, 2)),
	}
	b := []ledger.Entry{
		revenueEntry("25.00", day(2024, time.January, 3)),
	}

	union := append(append([]ledger.Entry{}, a...), b...)

	sum := ledger.ComputeTotals(a).Revenue.Add(ledger.ComputeTotals(b).Revenue)
	assert.True(t, ledger.ComputeTotals(union).Revenue.Equal(sum))
}

func TestComputeTotals_Empty(t *testing.T) {
	totals := ledger.ComputeTotals(nil)

	assert.True(t, totals.Revenue.IsZero())
	assert.True(t, totals.Expense.IsZero())
	assert.True(t, totals.Balance.IsZero())
}

// =============================================================================
// VIEW (filtro aplicado / resetado)
// =============================================================================

func TestView_FilterScenario(t *testing.T) {
	// GIVEN: duas despesas (jan e fev) e uma receita de hóspede em jan
	entries := []ledger.Entry{
		expenseEntry("10.00", day(2024, time.January, 5)),
		expenseEntry("20.00", day(2024, time.February, 10)),
		revenueEntry("300.00", day(2024, time.January, 20)),
	}

	view := ledger.NewView(entries)
	assert.Equal(t, ledger.StateUnfiltered, view.State())

	// WHEN: filtro por janeiro
	found := view.ApplyFilter(day(2024, time.January, 1), day(2024, time.January, 31))

	// THEN: totais saem só da visão filtrada
	require.True(t, found)
	assert.Equal(t, ledger.StateFiltered, view.State())

	totals := view.Totals()
	assert.Equal(t, "300.00", totals.Revenue.StringFixed(2))
	assert.Equal(t, "10.00", totals.Expense.StringFixed(2))
	assert.Equal(t, "290.00", totals.Balance.StringFixed(2))
}

func TestView_EmptyPeriodIsSignaled(t *testing.T) {
	entries := []ledger.Entry{
		revenueEntry("300.00", day(2024, time.January, 20)),
	}

	view := ledger.NewView(entries)
	found := view.ApplyFilter(day(2023, time.June, 1), day(2023, time.June, 30))

	assert.False(t, found, "período vazio precisa ser sinalizado, não sucesso silencioso")
	assert.Empty(t, view.Entries())
}

func TestView_ResetRestoresFullDataset(t *testing.T) {
	entries := []ledger.Entry{
		revenueEntry("300.00", day(2024, time.January, 20)),
		expenseEntry("20.00", day(2024, time.February, 10)),
	}

	view := ledger.NewView(entries)
	view.ApplyFilter(day(2024, time.January, 1), day(2024, time.January, 31))
	require.Len(t, view.Entries(), 1)

	view.Reset()

	assert.Equal(t, ledger.StateUnfiltered, view.State())
	assert.Len(t, view.Entries(), 2)
	assert.Equal(t, "280.00", view.Totals().Balance.StringFixed(2))
}
