package evaluate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegressionMetrics(t *testing.T) {
	nan := math.NaN()
	testData := map[string]struct {
		metric    func(predicted, actual []float64) (float64, error)
		predicted []float64
		actual    []float64
		expected  float64
	}{
		"mae": {
			metric:    MAE,
			predicted: []float64{1, 2, 4},
			actual:    []float64{1, 2, 3},
			expected:  1.0 / 3.0,
		},
		"mae skips nan pairs": {
			metric:    MAE,
			predicted: []float64{nan, 2, 4},
			actual:    []float64{1, 2, 3},
			expected:  0.5,
		},
		"mse": {
			metric:    MSE,
			predicted: []float64{1, 2, 5},
			actual:    []float64{1, 2, 3},
			expected:  4.0 / 3.0,
		},
		"rmse": {
			metric:    RMSE,
			predicted: []float64{2, 4, 5},
			actual:    []float64{1, 2, 3},
			expected:  math.Sqrt(3.0),
		},
		"mape": {
			metric:    MAPE,
			predicted: []float64{9, 22},
			actual:    []float64{10, 20},
			expected:  0.1,
		},
		"mape skips zero actuals": {
			metric:    MAPE,
			predicted: []float64{9, 5},
			actual:    []float64{10, 0},
			expected:  0.1,
		},
		"r2 perfect fit": {
			metric:    R2,
			predicted: []float64{1, 2, 3, 4},
			actual:    []float64{1, 2, 3, 4},
			expected:  1.0,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			got, err := td.metric(td.predicted, td.actual)
			require.NoError(t, err)
			assert.InDelta(t, td.expected, got, 1e-12)
		})
	}
}

func TestRegressionMetricErrors(t *testing.T) {
	nan := math.NaN()

	t.Run("shape mismatch", func(t *testing.T) {
		_, err := MAE([]float64{1, 2}, []float64{1, 2, 3})
		var smErr *ShapeMismatchError
		require.ErrorAs(t, err, &smErr)
		assert.Equal(t, 2, smErr.Predicted)
		assert.Equal(t, 3, smErr.Actual)
	})

	t.Run("all pairs undefined", func(t *testing.T) {
		_, err := MSE([]float64{nan, 1}, []float64{2, nan})
		assert.ErrorIs(t, err, ErrNoValidPairs)
	})

	t.Run("all actuals zero for mape", func(t *testing.T) {
		_, err := MAPE([]float64{1, 2}, []float64{0, 0})
		assert.ErrorIs(t, err, ErrNoValidPairs)
	})
}

func TestNewScores(t *testing.T) {
	predicted := []float64{2, 4, 5}
	actual := []float64{1, 2, 3}

	scores, err := NewScores(predicted, actual)
	require.NoError(t, err)

	assert.InDelta(t, 5.0/3.0, scores.MAE, 1e-12)
	assert.InDelta(t, 3.0, scores.MSE, 1e-12)
	assert.InDelta(t, math.Sqrt(3.0), scores.RMSE, 1e-12)
	assert.Greater(t, scores.MAPE, 0.0)
	assert.Less(t, scores.R2, 1.0)
}
