package ledger

import "time"

// ===============================
// Estado da visão contábil
// ===============================

type ViewState string

const (
	StateUnfiltered ViewState = "unfiltered"
	StateFiltered   ViewState = "filtered"
)

// View é o modelo da tela de contabilidade: nasce sem filtro sobre o
// conjunto completo, passa a Filtered ao aplicar um intervalo de datas
// e volta a Unfiltered no reset explícito. Os totais saem sempre da
// visão ativa.
type View struct {
	all     []Entry
	visible []Entry
	state   ViewState
}

func NewView(entries []Entry) *View {
	return &View{
		all:     entries,
		visible: entries,
		state:   StateUnfiltered,
	}
}

// ApplyFilter restringe a visão ao intervalo [start, end] e informa se
// algum lançamento sobrou (a tela precisa avisar quando nada é
// encontrado no período).
func (v *View) ApplyFilter(start, end time.Time) bool {
	v.visible = FilterByRange(v.all, &start, &end)
	v.state = StateFiltered
	return len(v.visible) > 0
}

func (v *View) Reset() {
	v.visible = v.all
	v.state = StateUnfiltered
}

func (v *View) Entries() []Entry {
	return v.visible
}

func (v *View) Totals() Totals {
	return ComputeTotals(v.visible)
}

func (v *View) State() ViewState {
	return v.state
}
