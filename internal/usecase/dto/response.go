package dto

import (
	"time"

	"github.com/cellmap-service/internal/domain"
)

// LocationResponse - локация, доступная в датасете
type LocationResponse struct {
	ID          string         `json:"id"`
	Label       string         `json:"label"`
	OptionLabel string         `json:"option_label"`
	CellCount   int            `json:"cell_count"`
	Center      *domain.LatLng `json:"center,omitempty"`
}

// MetricResponse - описание метрики
type MetricResponse struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	Derived bool   `json:"derived"`
}

// DatasetStatusResponse - состояние загрузки датасета
type DatasetStatusResponse struct {
	Source          string         `json:"source"`
	Loaded          bool           `json:"loaded"`
	Version         string         `json:"version,omitempty"`
	LoadedAt        *time.Time     `json:"loaded_at,omitempty"`
	TotalCells      int            `json:"total_cells"`
	CellsByLocation map[string]int `json:"cells_by_location,omitempty"`
	Skipped         []string       `json:"skipped,omitempty"`
	Error           string         `json:"error,omitempty"`
}
