package choropleth

import "github.com/cellmap-service/internal/domain"

// Index - максимальное положительное значение по локации и метрике.
// Нет записи - нет ни одного положительного значения
type Index map[domain.Location]map[domain.Metric]float64

// BuildIndex - обход всех ячеек всех локаций по всем метрикам
func BuildIndex(ds *domain.Dataset) Index {
	idx := make(Index)
	if ds == nil {
		return idx
	}

	metrics := domain.AllMetrics()
	for loc, payload := range ds.Locations {
		maxPerMetric := make(map[domain.Metric]float64)
		for i := range payload.Cells {
			cell := &payload.Cells[i]
			for _, m := range metrics {
				v, ok := Resolve(cell, m)
				if !ok {
					continue
				}
				if v > maxPerMetric[m] {
					maxPerMetric[m] = v
				}
			}
		}
		idx[loc] = maxPerMetric
	}

	return idx
}

// Max - знаменатель нормализации, 0 если его нет
func (idx Index) Max(loc domain.Location, m domain.Metric) float64 {
	return idx[loc][m]
}
