package choropleth

import "github.com/cellmap-service/internal/domain"

func f64(v float64) *float64 { return &v }

func square(lat, lng float64) []domain.LatLng {
	return []domain.LatLng{
		{lat, lng},
		{lat, lng + 0.01},
		{lat + 0.01, lng + 0.01},
		{lat + 0.01, lng},
	}
}

// twoCellDataset: cell A police_reported=10, cell B police_reported=20.
func twoCellDataset() *domain.Dataset {
	return &domain.Dataset{
		Version: "test",
		Locations: map[domain.Location]*domain.LocationPayload{
			domain.LocationSanFrancisco: {
				Cells: []domain.Cell{
					{
						Token:      "808f7c",
						Vertices:   square(37.70, -122.50),
						Metrics:    map[string]*float64{"police_reported": f64(10)},
						HumanMiles: f64(1500),
						WaymoMiles: f64(300),
					},
					{
						Token:      "808f7d",
						Vertices:   square(37.80, -122.40),
						Metrics:    map[string]*float64{"police_reported": f64(20), "airbag": f64(2)},
						HumanMiles: f64(2500000),
					},
				},
			},
		},
	}
}
