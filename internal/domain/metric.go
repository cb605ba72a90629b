package domain

import "fmt"

// Metric - идентификатор метрики для раскраски ячеек.
// Первые шесть читаются напрямую из Cell.Metrics, MetricHumanMiles и MetricWaymoMiles -
// алиасы полей пробега, MetricHumanToWaymoRatio вычисляется.
type Metric int

const (
	MetricAirbag Metric = iota + 1
	MetricBlincoe
	MetricBlincoeAnyInjury
	MetricKA
	MetricObservedAnyInjury
	MetricPoliceReported
	MetricHumanMiles
	MetricWaymoMiles
	MetricHumanToWaymoRatio
)

// DefaultMetric - метрика, выбранная при первой загрузке
const DefaultMetric = MetricPoliceReported

var metricOrder = []Metric{
	MetricAirbag,
	MetricBlincoe,
	MetricBlincoeAnyInjury,
	MetricKA,
	MetricObservedAnyInjury,
	MetricPoliceReported,
	MetricHumanMiles,
	MetricWaymoMiles,
	MetricHumanToWaymoRatio,
}

var metricIDs = map[Metric]string{
	MetricAirbag:            "airbag",
	MetricBlincoe:           "blincoe",
	MetricBlincoeAnyInjury:  "blincoe_any_injury",
	MetricKA:                "ka",
	MetricObservedAnyInjury: "observed_any_injury",
	MetricPoliceReported:    "police_reported",
	MetricHumanMiles:        "human_miles",
	MetricWaymoMiles:        "waymo_miles",
	MetricHumanToWaymoRatio: "human_to_waymo_ratio",
}

var metricLabels = map[Metric]string{
	MetricAirbag:            "Airbag deployments",
	MetricBlincoe:           "Blincoe (economic cost)",
	MetricBlincoeAnyInjury:  "Blincoe (any injury)",
	MetricKA:                "KA (severe injury/fatal)",
	MetricObservedAnyInjury: "Observed any injury",
	MetricPoliceReported:    "Police reported",
	MetricHumanMiles:        "Human miles",
	MetricWaymoMiles:        "Waymo miles",
	MetricHumanToWaymoRatio: "Human to Waymo ratio",
}

// AllMetrics возвращает все метрики в порядке отображения
func AllMetrics() []Metric {
	out := make([]Metric, len(metricOrder))
	copy(out, metricOrder)
	return out
}

// MetricIDs возвращает идентификаторы метрик в порядке отображения
func MetricIDs() []string {
	ids := make([]string, 0, len(metricOrder))
	for _, m := range metricOrder {
		ids = append(ids, m.String())
	}
	return ids
}

// ParseMetric - разбор идентификатора метрики
func ParseMetric(s string) (Metric, error) {
	for _, m := range metricOrder {
		if metricIDs[m] == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown metric %q", s)
}

func (m Metric) String() string {
	if id, ok := metricIDs[m]; ok {
		return id
	}
	return fmt.Sprintf("Metric(%d)", int(m))
}

func (m Metric) Valid() bool {
	_, ok := metricIDs[m]
	return ok
}

// Label - подпись метрики в селекторе, попапе и заголовке
func (m Metric) Label() string {
	if label, ok := metricLabels[m]; ok {
		return label
	}
	return m.String()
}

// Direct сообщает, читается ли метрика напрямую из Cell.Metrics
func (m Metric) Direct() bool {
	switch m {
	case MetricHumanMiles, MetricWaymoMiles, MetricHumanToWaymoRatio:
		return false
	}
	return m.Valid()
}

func (m Metric) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("invalid metric %d", int(m))
	}
	return []byte(m.String()), nil
}

func (m *Metric) UnmarshalText(text []byte) error {
	parsed, err := ParseMetric(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
