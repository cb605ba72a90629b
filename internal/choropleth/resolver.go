// Package choropleth - расчёт хороплетного вида по датасету ячеек, без побочных эффектов.
// Отрисовка View в карту находится в usecase
package choropleth

import (
	"math"

	"github.com/cellmap-service/internal/domain"
)

// Resolve - значение метрики m для ячейки, ok=false если данных нет. Отношение пробегов есть всегда
func Resolve(cell *domain.Cell, m domain.Metric) (float64, bool) {
	if cell == nil {
		return 0, false
	}

	switch m {
	case domain.MetricHumanMiles:
		return finite(cell.HumanMiles)
	case domain.MetricWaymoMiles:
		return finite(cell.WaymoMiles)
	case domain.MetricHumanToWaymoRatio:
		return humanToWaymoRatio(cell), true
	default:
		return finite(cell.Metrics[m.String()])
	}
}

func humanToWaymoRatio(cell *domain.Cell) float64 {
	h, _ := finite(cell.HumanMiles)
	w, _ := finite(cell.WaymoMiles)
	if w > 0 {
		return h / w
	}
	return 0
}

func finite(v *float64) (float64, bool) {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return 0, false
	}
	return *v, true
}
