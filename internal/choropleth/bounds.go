package choropleth

import (
	"github.com/golang/geo/s2"

	"github.com/cellmap-service/internal/domain"
)

// Padding - отступ fitBounds в пикселях [x, y]
type Padding [2]int

var DefaultFitPadding = Padding{24, 24}

// Viewport - область, под которую подгоняется карта
type Viewport struct {
	Bounds  domain.BoundingBox `json:"bounds"`
	Corners [2]domain.LatLng   `json:"corners"`
	Padding Padding            `json:"padding"`
}

// BoundsOf - прямоугольник lat/lng по всем вершинам локации
func BoundsOf(payload *domain.LocationPayload) (domain.BoundingBox, bool) {
	if payload == nil {
		return domain.BoundingBox{}, false
	}

	rect := s2.EmptyRect()
	for i := range payload.Cells {
		for _, v := range payload.Cells[i].Vertices {
			rect = rect.AddPoint(s2.LatLngFromDegrees(v.Lat(), v.Lng()))
		}
	}
	if rect.IsEmpty() {
		return domain.BoundingBox{}, false
	}

	lo, hi := rect.Lo(), rect.Hi()
	return domain.BoundingBox{
		MinLat: lo.Lat.Degrees(),
		MinLon: lo.Lng.Degrees(),
		MaxLat: hi.Lat.Degrees(),
		MaxLon: hi.Lng.Degrees(),
	}, true
}

// CellLevel - уровень S2 по токену ячейки, 0 для невалидного токена
func CellLevel(token string) int {
	id := s2.CellIDFromToken(token)
	if !id.IsValid() {
		return 0
	}
	return id.Level()
}
