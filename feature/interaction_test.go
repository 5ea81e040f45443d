package feature

import (
	"math"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpValid(t *testing.T) {
	testData := map[string]struct {
		op       Op
		expValid bool
	}{
		"mul":     {OpMul, true},
		"add":     {OpAdd, true},
		"sub":     {OpSub, true},
		"div":     {OpDiv, true},
		"unknown": {Op("pow"), false},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, td.expValid, td.op.Valid())
		})
	}
}

func TestOpApply(t *testing.T) {
	testData := map[string]struct {
		op   Op
		a, b float64
		exp  float64
	}{
		"mul": {OpMul, 3, 4, 12},
		"add": {OpAdd, 3, 4, 7},
		"sub": {OpSub, 3, 4, -1},
		"div": {OpDiv, 3, 4, 0.75},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, td.exp, td.op.Apply(td.a, td.b))
		})
	}

	t.Run("nan propagates", func(t *testing.T) {
		assert.True(t, math.IsNaN(OpMul.Apply(math.NaN(), 2.0)))
		assert.True(t, math.IsNaN(OpAdd.Apply(1.0, math.NaN())))
	})
}

func TestInteractionString(t *testing.T) {
	feat := NewInteraction("temperature_2m_max", "windspeed_10m_max", OpMul)
	expected := "inter_mul_temperature_2m_max_windspeed_10m_max"
	assert.Equal(t, expected, feat.String())
}

func TestInteractionGet(t *testing.T) {
	feat := NewInteraction("temperature_2m_max", "windspeed_10m_max", OpMul)

	testData := map[string]struct {
		label     string
		expVal    string
		expExists bool
	}{
		"unknown": {
			label: "unknown",
		},
		"left": {
			label:     "left",
			expVal:    "temperature_2m_max",
			expExists: true,
		},
		"right": {
			label:     "right",
			expVal:    "windspeed_10m_max",
			expExists: true,
		},
		"op": {
			label:     "op",
			expVal:    "mul",
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

func TestInteractionUnmarshalJSON(t *testing.T) {
	feat := NewInteraction("temperature_2m_max", "windspeed_10m_max", OpDiv)
	out, err := json.Marshal(feat.Decode())
	require.NoError(t, err)

	var nextFeat Interaction
	require.NoError(t, json.Unmarshal(out, &nextFeat))

	assert.Equal(t, feat, &nextFeat)
}
