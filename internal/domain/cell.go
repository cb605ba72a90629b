package domain

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
)

// Cell - S2 ячейка с полигоном и метриками
type Cell struct {
	ID       string              `json:"id,omitempty"`
	Token    string              `json:"token"`
	Center   *LatLng             `json:"center,omitempty"`
	Vertices []LatLng            `json:"vertices"`
	Metrics  map[string]*float64 `json:"metrics,omitempty"`

	// Поля пробега могут отсутствовать или быть null
	HumanMiles *float64 `json:"hpms_vehicle_miles_traveled"`
	WaymoMiles *float64 `json:"waymo_ro_miles"`
}

// LocationPayload - ячейки одной локации
type LocationPayload struct {
	Center *LatLng `json:"center,omitempty"`
	Cells  []Cell  `json:"cells"`
}

// Dataset - разобранный cells.json. После загрузки только читается.
type Dataset struct {
	Version   string
	Locations map[Location]*LocationPayload
	// Skipped - ключи документа, не входящие в набор локаций
	Skipped []string
}

// ParseDataset разбирает документ cells.json. Неизвестные локации пропускаются.
func ParseDataset(raw []byte) (*Dataset, error) {
	var doc map[string]*LocationPayload
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}
	if doc == nil {
		return nil, fmt.Errorf("decode dataset: document is empty")
	}

	sum := md5.Sum(raw)
	ds := &Dataset{
		Version:   hex.EncodeToString(sum[:]),
		Locations: make(map[Location]*LocationPayload, len(doc)),
	}

	for key, payload := range doc {
		loc, err := ParseLocation(key)
		if err != nil || payload == nil {
			ds.Skipped = append(ds.Skipped, key)
			continue
		}
		ds.Locations[loc] = payload
	}
	sort.Strings(ds.Skipped)

	return ds, nil
}

// Payload возвращает ячейки локации
func (d *Dataset) Payload(loc Location) (*LocationPayload, bool) {
	if d == nil {
		return nil, false
	}
	p, ok := d.Locations[loc]
	return p, ok && p != nil
}

// AvailableLocations - локации, присутствующие в датасете, в порядке отображения
func (d *Dataset) AvailableLocations() []Location {
	out := make([]Location, 0, len(locationOrder))
	for _, loc := range locationOrder {
		if _, ok := d.Payload(loc); ok {
			out = append(out, loc)
		}
	}
	return out
}

// CellCount - общее количество ячеек по всем локациям
func (d *Dataset) CellCount() int {
	if d == nil {
		return 0
	}
	total := 0
	for _, p := range d.Locations {
		total += len(p.Cells)
	}
	return total
}
