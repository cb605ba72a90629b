package dto

// ViewRequest - запрос на расчет представления карты. Пустые поля заменяются выбором по умолчанию.
type ViewRequest struct {
	Location string `query:"location" validate:"omitempty,location"`
	Metric   string `query:"metric" validate:"omitempty,metric"`
	Fit      bool   `query:"fit"`
}

// GeoJSONRequest - запрос на выгрузку ячеек локации
type GeoJSONRequest struct {
	Location string `params:"location" validate:"required,location"`
	Metric   string `query:"metric" validate:"omitempty,metric"`
}
