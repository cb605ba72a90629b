package choropleth

import "math"

const (
	StrokeColor          = "#ea580c"
	HighlightStrokeColor = "#9a3412"
	StrokeWeight         = 0.7
	HighlightWeight      = 2.0
	StrokeOpacity        = 0.8
	DefaultFillOpacity   = 0.65
)

// PolygonStyle - стиль полигона, имена полей как у опций Leaflet path
type PolygonStyle struct {
	Color       string  `json:"color"`
	Weight      float64 `json:"weight"`
	Opacity     float64 `json:"opacity"`
	FillColor   string  `json:"fillColor"`
	FillOpacity float64 `json:"fillOpacity"`
}

// StyleFor - базовый стиль полигона, у ячеек без данных остаётся только контур
func StyleFor(intensity float64) PolygonStyle {
	fillOpacity := 0.0
	if intensity > 0 {
		fillOpacity = DefaultFillOpacity
	}
	return PolygonStyle{
		Color:       StrokeColor,
		Weight:      StrokeWeight,
		Opacity:     StrokeOpacity,
		FillColor:   ColorFor(intensity).String(),
		FillOpacity: fillOpacity,
	}
}

// Highlight - стиль при наведении и открытом попапе
func Highlight(base PolygonStyle) PolygonStyle {
	out := base
	out.Weight = HighlightWeight
	out.Color = HighlightStrokeColor
	out.FillOpacity = math.Min(1, base.FillOpacity+0.2)
	return out
}
