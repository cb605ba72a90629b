package choropleth

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorFor(t *testing.T) {
	tests := []struct {
		name      string
		intensity float64
		want      RGB
	}{
		{"zero", 0, NeutralColor},
		{"negative", -0.3, NeutralColor},
		{"nan", math.NaN(), NeutralColor},
		{"positive infinity", math.Inf(1), NeutralColor},
		{"midpoint stop", 0.5, RGB{251, 146, 60}},
		{"upper stop", 1, RGB{127, 29, 29}},
		{"above range clamps", 3.5, RGB{127, 29, 29}},
		{"quarter interpolates first segment", 0.25, RGB{253, 197, 146}},
		{"three quarters interpolates second segment", 0.75, RGB{189, 88, 45}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ColorFor(tt.intensity))
		})
	}
}

func TestColorFor_SmallIntensityNearFirstStop(t *testing.T) {
	c := ColorFor(1e-9)
	assert.Equal(t, RGB{254, 247, 231}, c)
}

func TestRGB_String(t *testing.T) {
	assert.Equal(t, "rgb(253, 253, 253)", NeutralColor.String())
	assert.Equal(t, "rgb(127, 29, 29)", ColorFor(1).String())
}
