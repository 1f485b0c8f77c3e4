package accounting

import (
	"context"
	"time"

	domain "github.com/okabeach/flat-manager/internal/domain/ledger"
	"github.com/okabeach/flat-manager/internal/httperr"
)

// Mensagem exibida quando o filtro não encontra nada no período
const NoticeEmptyPeriod = "Nenhuma despesa ou receita encontrada no período selecionado."

// ======================================================
// OUTPUT
// ======================================================

type Summary struct {
	Entries []domain.Entry   `json:"entries"`
	Totals  domain.Totals    `json:"totals"`
	State   domain.ViewState `json:"state"`
	Notice  string           `json:"notice,omitempty"`
}

// ======================================================
// USE CASE
// ======================================================

type BuildSummary struct {
	repo domain.Repository
}

func NewBuildSummary(repo domain.Repository) *BuildSummary {
	return &BuildSummary{repo: repo}
}

// Execute monta o resumo contábil da propriedade. Sem intervalo o
// resumo cobre o conjunto completo; com as duas datas a visão passa a
// filtrada e os totais saem só do que está visível. Período sem nenhum
// lançamento nunca é sucesso silencioso: o aviso vai junto na resposta.
func (uc *BuildSummary) Execute(
	ctx context.Context,
	propertyID uint,
	start *time.Time,
	end *time.Time,
) (*Summary, error) {

	// Filtrar exige o intervalo completo (mesma regra do botão
	// Confirmar da tela original)
	if (start == nil) != (end == nil) {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidDateRange)
	}

	guests, err := uc.repo.ListGuests(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	expenses, err := uc.repo.ListExpenses(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	view := domain.NewView(domain.BuildEntries(guests, expenses))

	notice := ""
	if start != nil && end != nil {
		if found := view.ApplyFilter(*start, *end); !found {
			notice = NoticeEmptyPeriod
		}
	}

	return &Summary{
		Entries: view.Entries(),
		Totals:  view.Totals(),
		State:   view.State(),
		Notice:  notice,
	}, nil
}
