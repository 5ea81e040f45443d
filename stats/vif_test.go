package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVarianceInflationFactorErrors(t *testing.T) {
	testData := map[string]struct {
		features map[string][]float64
		err      error
	}{
		"too few features": {
			features: map[string][]float64{
				"a": {1, 2, 3},
			},
			err: ErrMinimumFeatures,
		},
		"length mismatch": {
			features: map[string][]float64{
				"a": {1, 2, 3},
				"b": {1, 2},
			},
			err: ErrFeatureLenMismatch,
		},
		"too few points": {
			features: map[string][]float64{
				"a": {1},
				"b": {2},
			},
			err: ErrFeatureLen,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			_, err := VarianceInflationFactor(td.features)
			assert.ErrorIs(t, err, td.err)
		})
	}
}

func TestVarianceInflationFactor(t *testing.T) {
	// For two features VIF is 1/(1-r^2) with r the Pearson correlation,
	// which is 0.8 for these series.
	features := map[string][]float64{
		"a": {1, 2, 3, 4},
		"b": {1, 2, 4, 3},
	}

	vif, err := VarianceInflationFactor(features)
	require.NoError(t, err)
	require.Len(t, vif, 2)

	assert.InDelta(t, 1.0/(1.0-0.64), vif["a"], 1e-8)
	assert.InDelta(t, 1.0/(1.0-0.64), vif["b"], 1e-8)
}

func TestVarianceInflationFactorCollinear(t *testing.T) {
	features := map[string][]float64{
		"a": {1, 2, 3, 4, 5},
		"b": {3, 5, 7, 9, 11},
	}

	vif, err := VarianceInflationFactor(features)
	require.NoError(t, err)

	assert.Greater(t, vif["a"], 1e6)
	assert.Greater(t, vif["b"], 1e6)
}
