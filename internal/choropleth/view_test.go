package choropleth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cellmap-service/internal/domain"
)

func TestCompute_TwoCellScenario(t *testing.T) {
	state := NewState(twoCellDataset())
	state.Selection = domain.Selection{Location: domain.LocationSanFrancisco, Metric: domain.MetricPoliceReported}

	view := Compute(state, true)
	require.NotNil(t, view)

	assert.Equal(t, 20.0, view.MaxValue)
	require.Len(t, view.Cells, 2)
	assert.Equal(t, 0.5, view.Cells[0].Intensity)
	assert.Equal(t, 1.0, view.Cells[1].Intensity)
	assert.Equal(t, "rgb(251, 146, 60)", view.Cells[0].Style.FillColor)
	assert.Equal(t, "rgb(127, 29, 29)", view.Cells[1].Style.FillColor)

	assert.Equal(t, Legend{Min: "0", Mid: "10", Max: "20"}, view.Legend)
	assert.Equal(t, "Waymo: San Francisco - Police reported", view.Summary)

	require.NotNil(t, view.Viewport)
	assert.Equal(t, DefaultFitPadding, view.Viewport.Padding)
	assert.InDelta(t, 37.70, view.Viewport.Bounds.MinLat, 1e-9)
	assert.InDelta(t, 37.81, view.Viewport.Bounds.MaxLat, 1e-9)
	assert.InDelta(t, -122.50, view.Viewport.Bounds.MinLon, 1e-9)
	assert.InDelta(t, -122.39, view.Viewport.Bounds.MaxLon, 1e-9)
}

func TestCompute_NoDataCells(t *testing.T) {
	state := NewState(twoCellDataset())
	state.Selection = domain.Selection{Location: domain.LocationSanFrancisco, Metric: domain.MetricAirbag}

	view := Compute(state, false)
	require.NotNil(t, view)

	// cell A has no airbag value: outline only
	a := view.Cells[0]
	assert.False(t, a.HasValue)
	assert.Equal(t, 0.0, a.Intensity)
	assert.Equal(t, 0.0, a.Style.FillOpacity)
	assert.Equal(t, NeutralColor.String(), a.Style.FillColor)
	assert.Equal(t, StrokeColor, a.Style.Color)

	b := view.Cells[1]
	assert.True(t, b.HasValue)
	assert.Equal(t, 1.0, b.Intensity)
	assert.Equal(t, DefaultFillOpacity, b.Style.FillOpacity)
}

func TestCompute_ZeroMaxLegend(t *testing.T) {
	state := NewState(twoCellDataset())
	state.Selection = domain.Selection{Location: domain.LocationSanFrancisco, Metric: domain.MetricKA}

	view := Compute(state, false)
	require.NotNil(t, view)

	assert.Equal(t, 0.0, view.MaxValue)
	assert.Equal(t, Legend{Min: "0", Mid: "—", Max: "—"}, view.Legend)
	for _, c := range view.Cells {
		assert.Equal(t, 0.0, c.Intensity)
		assert.Equal(t, 0.0, c.Style.FillOpacity)
	}
}

func TestCompute_MissingLocationIsNoop(t *testing.T) {
	state := NewState(twoCellDataset())
	state.Selection = domain.Selection{Location: domain.LocationAustin, Metric: domain.MetricPoliceReported}

	assert.Nil(t, Compute(state, true))
}

func TestCompute_NoViewportWithoutFit(t *testing.T) {
	state := NewState(twoCellDataset())
	view := Compute(state, false)
	require.NotNil(t, view)
	assert.Nil(t, view.Viewport)
}

func TestCompute_SkipsCellsWithoutVertices(t *testing.T) {
	ds := twoCellDataset()
	payload := ds.Locations[domain.LocationSanFrancisco]
	payload.Cells = append(payload.Cells, domain.Cell{
		Token:   "808f7f",
		Metrics: map[string]*float64{"police_reported": f64(40)},
	})

	view := Compute(NewState(ds), true)
	require.NotNil(t, view)

	// the vertex-less cell still counts towards the max
	assert.Equal(t, 40.0, view.MaxValue)
	assert.Len(t, view.Cells, 2)
}

func TestCompute_Idempotent(t *testing.T) {
	state := NewState(twoCellDataset())
	state.Selection = domain.Selection{Location: domain.LocationSanFrancisco, Metric: domain.MetricHumanToWaymoRatio}

	first := Compute(state, true)
	second := Compute(state, true)
	assert.Equal(t, first, second)
}

func TestCompute_MetricSwitchKeepsCellsUpdatesColors(t *testing.T) {
	state := NewState(twoCellDataset())

	police := Compute(state.WithSelection(domain.Selection{Location: domain.LocationSanFrancisco, Metric: domain.MetricPoliceReported}), false)
	miles := Compute(state.WithSelection(domain.Selection{Location: domain.LocationSanFrancisco, Metric: domain.MetricHumanMiles}), false)

	require.Len(t, miles.Cells, len(police.Cells))
	assert.NotEqual(t, police.Legend, miles.Legend)
	assert.Equal(t, Legend{Min: "0", Mid: "1.3M", Max: "2.5M"}, miles.Legend)
	assert.NotEqual(t, police.Cells[0].Style.FillColor, miles.Cells[0].Style.FillColor)
}

func TestHighlight(t *testing.T) {
	base := StyleFor(0.5)
	hl := Highlight(base)

	assert.Equal(t, HighlightWeight, hl.Weight)
	assert.Equal(t, HighlightStrokeColor, hl.Color)
	assert.InDelta(t, 0.85, hl.FillOpacity, 1e-9)
	assert.Equal(t, base.FillColor, hl.FillColor)

	empty := Highlight(StyleFor(0))
	assert.InDelta(t, 0.2, empty.FillOpacity, 1e-9)

	capped := Highlight(PolygonStyle{FillOpacity: 0.95})
	assert.Equal(t, 1.0, capped.FillOpacity)
}

func TestPopupFor(t *testing.T) {
	ds := twoCellDataset()
	cell := &ds.Locations[domain.LocationSanFrancisco].Cells[0]

	popup := PopupFor(cell)
	assert.Equal(t, "S2 Cell 808f7c", popup.Title)
	assert.Equal(t, PopupMaxWidth, popup.MaxWidth)
	require.Len(t, popup.Rows, 9)

	values := make(map[domain.Metric]string, len(popup.Rows))
	for _, r := range popup.Rows {
		values[r.Metric] = r.Value
	}
	assert.Equal(t, "10", values[domain.MetricPoliceReported])
	assert.Equal(t, "—", values[domain.MetricAirbag])
	assert.Equal(t, "1.5k", values[domain.MetricHumanMiles])
	assert.Equal(t, "300", values[domain.MetricWaymoMiles])
	assert.Equal(t, "5", values[domain.MetricHumanToWaymoRatio])
}

func TestPopupHTML_EscapesToken(t *testing.T) {
	cell := &domain.Cell{Token: "<b>x</b>"}
	html, err := PopupHTML(PopupFor(cell))
	require.NoError(t, err)

	assert.Contains(t, html, "S2 Cell &lt;b&gt;x&lt;/b&gt;")
	assert.Contains(t, html, "<th>Police reported</th>")
	assert.NotContains(t, html, "<b>x</b>")
}

func TestSummary(t *testing.T) {
	assert.Equal(t, "Waymo: Los Angeles - Human to Waymo ratio",
		Summary(domain.Selection{Location: domain.LocationLosAngeles, Metric: domain.MetricHumanToWaymoRatio}))
}
