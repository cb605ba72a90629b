package choropleth

import (
	"fmt"
	"math"
)

type RGB struct {
	R, G, B uint8
}

func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

func (c RGB) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

type colorStop struct {
	stop  float64
	color RGB
}

// NeutralColor - цвет ячеек без данных или с нулевой интенсивностью
var NeutralColor = RGB{253, 253, 253}

var colorStops = []colorStop{
	{stop: 0, color: RGB{254, 247, 231}},  // warm light sand
	{stop: 0.5, color: RGB{251, 146, 60}}, // vivid orange
	{stop: 1, color: RGB{127, 29, 29}},    // deep brick red
}

// ColorFor - цвет интенсивности [0,1] по трёхточечной шкале
func ColorFor(intensity float64) RGB {
	if math.IsNaN(intensity) || math.IsInf(intensity, 0) || intensity <= 0 {
		return NeutralColor
	}

	v := math.Min(1, math.Max(0, intensity))

	for i := 1; i < len(colorStops); i++ {
		cur, prev := colorStops[i], colorStops[i-1]
		if v > cur.stop {
			continue
		}
		span := cur.stop - prev.stop
		if span == 0 {
			span = 1
		}
		ratio := (v - prev.stop) / span
		return RGB{
			R: lerp(prev.color.R, cur.color.R, ratio),
			G: lerp(prev.color.G, cur.color.G, ratio),
			B: lerp(prev.color.B, cur.color.B, ratio),
		}
	}

	return colorStops[len(colorStops)-1].color
}

func lerp(start, end uint8, ratio float64) uint8 {
	s, e := float64(start), float64(end)
	return uint8(math.Floor(s + (e-s)*ratio + 0.5))
}
