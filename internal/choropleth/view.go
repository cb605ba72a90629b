package choropleth

import (
	"fmt"
	"math"

	"github.com/cellmap-service/internal/domain"
)

const PopupMaxWidth = 320

// State - всё, от чего зависит рендер. Dataset и Index после построения не меняются
type State struct {
	Dataset   *domain.Dataset
	Index     Index
	Selection domain.Selection
}

// NewState - построить индекс для ds, выбор по умолчанию
func NewState(ds *domain.Dataset) State {
	return State{
		Dataset:   ds,
		Index:     BuildIndex(ds),
		Selection: domain.DefaultSelection(),
	}
}

// WithSelection - копия состояния с выбором sel
func (s State) WithSelection(sel domain.Selection) State {
	s.Selection = sel
	return s
}

type PopupRow struct {
	Metric domain.Metric `json:"metric"`
	Label  string        `json:"label"`
	Value  string        `json:"value"`
}

type Popup struct {
	Title    string     `json:"title"`
	Token    string     `json:"token"`
	Level    int        `json:"level,omitempty"`
	Rows     []PopupRow `json:"rows"`
	MaxWidth int        `json:"max_width"`
}

type CellView struct {
	Token          string          `json:"token"`
	Vertices       []domain.LatLng `json:"vertices"`
	Value          float64         `json:"value"`
	HasValue       bool            `json:"has_value"`
	Intensity      float64         `json:"intensity"`
	Style          PolygonStyle    `json:"style"`
	HighlightStyle PolygonStyle    `json:"highlight_style"`
	Popup          Popup           `json:"popup"`
}

type Legend struct {
	Min string `json:"min"`
	Mid string `json:"mid"`
	Max string `json:"max"`
}

// View - полное содержимое карты для одного выбора
type View struct {
	Selection domain.Selection `json:"selection"`
	MaxValue  float64          `json:"max_value"`
	Cells     []CellView       `json:"cells"`
	Legend    Legend           `json:"legend"`
	Summary   string           `json:"summary"`
	// nil, если подгонка не запрошена или у локации нет вершин
	Viewport *Viewport `json:"viewport,omitempty"`
}

// Compute - вид для state.Selection, nil если локации нет в датасете
func Compute(state State, fitView bool) *View {
	sel := state.Selection
	payload, ok := state.Dataset.Payload(sel.Location)
	if !ok {
		return nil
	}

	maxValue := state.Index.Max(sel.Location, sel.Metric)

	cells := make([]CellView, 0, len(payload.Cells))
	for i := range payload.Cells {
		cell := &payload.Cells[i]
		if len(cell.Vertices) == 0 {
			continue
		}

		value, hasValue := Resolve(cell, sel.Metric)
		intensity := 0.0
		if maxValue > 0 {
			intensity = value / maxValue
		}

		style := StyleFor(intensity)
		cells = append(cells, CellView{
			Token:          cell.Token,
			Vertices:       cell.Vertices,
			Value:          value,
			HasValue:       hasValue,
			Intensity:      intensity,
			Style:          style,
			HighlightStyle: Highlight(style),
			Popup:          PopupFor(cell),
		})
	}

	view := &View{
		Selection: sel,
		MaxValue:  maxValue,
		Cells:     cells,
		Legend:    LegendFor(maxValue),
		Summary:   Summary(sel),
	}

	if fitView {
		if bounds, ok := BoundsOf(payload); ok {
			view.Viewport = &Viewport{
				Bounds:  bounds,
				Corners: bounds.Corners(),
				Padding: DefaultFitPadding,
			}
		}
	}

	return view
}

// PopupFor - все метрики ячейки независимо от выбранной
func PopupFor(cell *domain.Cell) Popup {
	metrics := domain.AllMetrics()
	rows := make([]PopupRow, 0, len(metrics))
	for _, m := range metrics {
		rows = append(rows, PopupRow{
			Metric: m,
			Label:  m.Label(),
			Value:  FormatValue(Resolve(cell, m)),
		})
	}
	return Popup{
		Title:    fmt.Sprintf("S2 Cell %s", cell.Token),
		Token:    cell.Token,
		Level:    CellLevel(cell.Token),
		Rows:     rows,
		MaxWidth: PopupMaxWidth,
	}
}

// LegendFor - подписи легенды: min, середина, max. Без положительного max известна только нижняя граница
func LegendFor(maxValue float64) Legend {
	if math.IsNaN(maxValue) || math.IsInf(maxValue, 0) || maxValue <= 0 {
		return Legend{Min: "0", Mid: domain.NoDataPlaceholder, Max: domain.NoDataPlaceholder}
	}
	return Legend{
		Min: FormatNumber(0),
		Mid: FormatNumber(maxValue / 2),
		Max: FormatNumber(maxValue),
	}
}

// Summary - строка заголовка, например "Waymo: San Francisco - Police reported"
func Summary(sel domain.Selection) string {
	return fmt.Sprintf("Waymo: %s - %s", sel.Location.Label(), sel.Metric.Label())
}
