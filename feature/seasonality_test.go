package feature

import (
	"math"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeasonalityString(t *testing.T) {
	feat := NewSeasonality("doy", FourierCompSin, 2)
	expected := "seas_doy_02_sin"
	assert.Equal(t, expected, feat.String())
}

func TestSeasonalityGet(t *testing.T) {
	feat := NewSeasonality("doy", FourierCompSin, 2)

	testData := map[string]struct {
		label     string
		expVal    string
		expExists bool
	}{
		"unknown": {
			label: "unknown",
		},
		"name": {
			label:     "name",
			expVal:    "doy",
			expExists: true,
		},
		"fourier component": {
			label:     "fourier_component",
			expVal:    "sin",
			expExists: true,
		},
		"order": {
			label:     "order",
			expVal:    "2",
			expExists: true,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			val, exists := feat.Get(td.label)
			assert.Equal(t, td.expExists, exists, "exists")
			assert.Equal(t, td.expVal, val, "value")
		})
	}
}

func TestSeasonalityGenerate(t *testing.T) {
	period := 8.0
	pos := []float64{0, 2, 4, 6}

	sinFeat := NewSeasonality("doy", FourierCompSin, 1)
	sinVals := sinFeat.Generate(pos, period)
	expSin := []float64{0, 1, 0, -1}
	require.Len(t, sinVals, len(pos))
	for i := range expSin {
		assert.InDelta(t, expSin[i], sinVals[i], 1e-12, "sin at %d", i)
	}

	cosFeat := NewSeasonality("doy", FourierCompCos, 1)
	cosVals := cosFeat.Generate(pos, period)
	for i := range pos {
		assert.InDelta(t, 1.0, sinVals[i]*sinVals[i]+cosVals[i]*cosVals[i], 1e-12, "identity at %d", i)
	}
}

func TestSeasonalityGenerateOrder(t *testing.T) {
	// Order k runs k full cycles over one period.
	feat := NewSeasonality("doy", FourierCompCos, 2)
	vals := feat.Generate([]float64{0, 4, 8}, 8.0)
	for i, v := range vals {
		assert.InDelta(t, 1.0, v, 1e-12, "at %d", i)
	}
	assert.True(t, math.Abs(vals[1]-1.0) < 1e-12)
}

func TestSeasonalityUnmarshalJSON(t *testing.T) {
	feat := NewSeasonality("dow", FourierCompCos, 3)
	out, err := json.Marshal(feat.Decode())
	require.NoError(t, err)

	var nextFeat Seasonality
	require.NoError(t, json.Unmarshal(out, &nextFeat))

	assert.Equal(t, feat, &nextFeat)
}
