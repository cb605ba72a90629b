package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocation_Labels(t *testing.T) {
	tests := []struct {
		location    Location
		id          string
		label       string
		optionLabel string
	}{
		{LocationSanFrancisco, "SAN_FRANCISCO", "San Francisco", "SAN FRANCISCO"},
		{LocationPhoenix, "PHOENIX", "Phoenix", "PHOENIX"},
		{LocationLosAngeles, "LOS_ANGELES", "Los Angeles", "LOS ANGELES"},
		{LocationAustin, "AUSTIN", "Austin", "AUSTIN"},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.id, tt.location.String())
			assert.Equal(t, tt.label, tt.location.Label())
			assert.Equal(t, tt.optionLabel, tt.location.OptionLabel())

			parsed, err := ParseLocation(tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.location, parsed)
		})
	}
}

func TestLocation_Order(t *testing.T) {
	assert.Equal(t, []string{"SAN_FRANCISCO", "PHOENIX", "LOS_ANGELES", "AUSTIN"}, LocationIDs())
	assert.Equal(t, LocationSanFrancisco, DefaultLocation)
}

func TestParseLocation_Unknown(t *testing.T) {
	for _, s := range []string{"", "BOSTON", "san_francisco", "SAN FRANCISCO"} {
		_, err := ParseLocation(s)
		assert.Error(t, err, s)
	}

	var invalid Location
	assert.False(t, invalid.Valid())
	assert.Equal(t, NoDataPlaceholder, invalid.Label())
	_, err := invalid.MarshalText()
	assert.Error(t, err)
}

func TestMetric_Order(t *testing.T) {
	assert.Equal(t, []string{
		"airbag", "blincoe", "blincoe_any_injury", "ka", "observed_any_injury",
		"police_reported", "human_miles", "waymo_miles", "human_to_waymo_ratio",
	}, MetricIDs())
	assert.Equal(t, MetricPoliceReported, DefaultMetric)

	for _, m := range AllMetrics() {
		parsed, err := ParseMetric(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, parsed)
		assert.NotEmpty(t, m.Label())
	}

	assert.True(t, MetricKA.Direct())
	assert.False(t, MetricHumanMiles.Direct())
	assert.False(t, MetricHumanToWaymoRatio.Direct())
	assert.Equal(t, "Blincoe (economic cost)", MetricBlincoe.Label())

	_, err := ParseMetric("speed")
	assert.Error(t, err)
}

func TestSelection_JSON(t *testing.T) {
	data, err := json.Marshal(DefaultSelection())
	require.NoError(t, err)
	assert.JSONEq(t, `{"location":"SAN_FRANCISCO","metric":"police_reported"}`, string(data))

	var sel Selection
	require.NoError(t, json.Unmarshal([]byte(`{"location":"AUSTIN","metric":"ka"}`), &sel))
	assert.Equal(t, Selection{Location: LocationAustin, Metric: MetricKA}, sel)

	assert.Error(t, json.Unmarshal([]byte(`{"location":"BOSTON"}`), &sel))
}
