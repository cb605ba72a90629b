package domain

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Location - локация датасета. Набор закрыт, порядок фиксирован.
type Location int

const (
	LocationSanFrancisco Location = iota + 1
	LocationPhoenix
	LocationLosAngeles
	LocationAustin
)

// DefaultLocation - локация, выбранная при первой загрузке
const DefaultLocation = LocationSanFrancisco

var locationOrder = []Location{
	LocationSanFrancisco,
	LocationPhoenix,
	LocationLosAngeles,
	LocationAustin,
}

var locationIDs = map[Location]string{
	LocationSanFrancisco: "SAN_FRANCISCO",
	LocationPhoenix:      "PHOENIX",
	LocationLosAngeles:   "LOS_ANGELES",
	LocationAustin:       "AUSTIN",
}

var titleCaser = cases.Title(language.English)

// AllLocations возвращает все локации в порядке отображения
func AllLocations() []Location {
	out := make([]Location, len(locationOrder))
	copy(out, locationOrder)
	return out
}

// LocationIDs возвращает идентификаторы локаций в порядке отображения
func LocationIDs() []string {
	ids := make([]string, 0, len(locationOrder))
	for _, l := range locationOrder {
		ids = append(ids, l.String())
	}
	return ids
}

// ParseLocation - разбор идентификатора локации (SAN_FRANCISCO и т.д.)
func ParseLocation(s string) (Location, error) {
	for _, l := range locationOrder {
		if locationIDs[l] == s {
			return l, nil
		}
	}
	return 0, fmt.Errorf("unknown location %q", s)
}

func (l Location) String() string {
	if id, ok := locationIDs[l]; ok {
		return id
	}
	return fmt.Sprintf("Location(%d)", int(l))
}

// Valid сообщает, входит ли значение в закрытый набор
func (l Location) Valid() bool {
	_, ok := locationIDs[l]
	return ok
}

// Label - человекочитаемое название для заголовка: "San Francisco"
func (l Location) Label() string {
	if !l.Valid() {
		return NoDataPlaceholder
	}
	return titleCaser.String(strings.ReplaceAll(strings.ToLower(l.String()), "_", " "))
}

// OptionLabel - подпись в селекторе локаций. Заменяется только первое подчёркивание.
func (l Location) OptionLabel() string {
	return strings.Replace(l.String(), "_", " ", 1)
}

func (l Location) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("invalid location %d", int(l))
	}
	return []byte(l.String()), nil
}

func (l *Location) UnmarshalText(text []byte) error {
	parsed, err := ParseLocation(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
