package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
	"go.uber.org/zap"

	"github.com/cellmap-service/internal/choropleth"
	"github.com/cellmap-service/internal/domain"
)

// GeoJSON выгружает ячейки локации как FeatureCollection.
// Стиль и попап кладутся в properties, координаты в порядке [lng, lat].
func (uc *ViewerUseCase) GeoJSON(ctx context.Context, sel domain.Selection) ([]byte, error) {
	view, err := uc.ComputeView(ctx, sel, false)
	if err != nil {
		return nil, err
	}

	fc, err := FeatureCollection(view, uc.logger)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(fc)
	if err != nil {
		return nil, fmt.Errorf("marshal geojson: %w", err)
	}
	return data, nil
}

// FeatureCollection строит коллекцию по готовому представлению. Ячейки с
// некорректным контуром пропускаются.
func FeatureCollection(view *choropleth.View, logger *zap.Logger) (*geojson.FeatureCollection, error) {
	fc := &geojson.FeatureCollection{
		Features: make([]*geojson.Feature, 0, len(view.Cells)),
	}

	for _, cell := range view.Cells {
		poly, err := cellPolygon(cell.Vertices)
		if err != nil {
			logger.Debug("Skipping malformed cell polygon", zap.String("token", cell.Token), zap.Error(err))
			continue
		}

		popupHTML, err := choropleth.PopupHTML(cell.Popup)
		if err != nil {
			return nil, fmt.Errorf("render popup for %s: %w", cell.Token, err)
		}

		props := map[string]interface{}{
			"token":           cell.Token,
			"metric":          view.Selection.Metric.String(),
			"value":           cell.Value,
			"has_value":       cell.HasValue,
			"intensity":       cell.Intensity,
			"style":           cell.Style,
			"highlight_style": cell.HighlightStyle,
			"popup_html":      popupHTML,
		}
		if cell.Popup.Level > 0 {
			props["level"] = cell.Popup.Level
		}

		fc.Features = append(fc.Features, &geojson.Feature{
			ID:         cell.Token,
			Geometry:   poly,
			Properties: props,
		})
	}

	if vp, ok := choropleth.BoundsOf(&domain.LocationPayload{Cells: cellsOf(view)}); ok {
		fc.BBox = geom.NewBounds(geom.XY).Set(vp.MinLon, vp.MinLat, vp.MaxLon, vp.MaxLat)
	}

	return fc, nil
}

// cellPolygon замыкает контур, если первая и последняя вершины различаются
func cellPolygon(vertices []domain.LatLng) (*geom.Polygon, error) {
	if len(vertices) < 3 {
		return nil, fmt.Errorf("polygon needs at least 3 vertices, got %d", len(vertices))
	}

	flat := make([]float64, 0, (len(vertices)+1)*2)
	for _, v := range vertices {
		flat = append(flat, v.Lng(), v.Lat())
	}
	if first, last := vertices[0], vertices[len(vertices)-1]; first != last {
		flat = append(flat, first.Lng(), first.Lat())
	}

	ring := geom.NewLinearRingFlat(geom.XY, flat)
	poly := geom.NewPolygon(geom.XY)
	if err := poly.Push(ring); err != nil {
		return nil, err
	}
	return poly, nil
}

func cellsOf(view *choropleth.View) []domain.Cell {
	cells := make([]domain.Cell, 0, len(view.Cells))
	for _, c := range view.Cells {
		cells = append(cells, domain.Cell{Token: c.Token, Vertices: c.Vertices})
	}
	return cells
}
