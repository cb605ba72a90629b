package domain

import "time"

// NoDataPlaceholder - плейсхолдер для отсутствующих значений
const NoDataPlaceholder = "—"

// LatLng - пара [lat, lng] в градусах, в том виде, в каком она лежит в cells.json
type LatLng [2]float64

func (p LatLng) Lat() float64 { return p[0] }
func (p LatLng) Lng() float64 { return p[1] }

type BoundingBox struct {
	MinLat float64 `json:"min_lat"`
	MinLon float64 `json:"min_lon"`
	MaxLat float64 `json:"max_lat"`
	MaxLon float64 `json:"max_lon"`
}

// Corners возвращает юго-западный и северо-восточный углы в формате Leaflet
func (b BoundingBox) Corners() [2]LatLng {
	return [2]LatLng{{b.MinLat, b.MinLon}, {b.MaxLat, b.MaxLon}}
}

// DatasetStats - сводка по загруженному датасету
type DatasetStats struct {
	Version         string         `json:"version"`
	LoadedAt        time.Time      `json:"loaded_at"`
	TotalCells      int            `json:"total_cells"`
	CellsByLocation map[string]int `json:"cells_by_location"`
	Skipped         []string       `json:"skipped_locations,omitempty"`
}
