package domain

// Selection - текущая пара (локация, метрика)
type Selection struct {
	Location Location `json:"location"`
	Metric   Metric   `json:"metric"`
}

func DefaultSelection() Selection {
	return Selection{Location: DefaultLocation, Metric: DefaultMetric}
}
