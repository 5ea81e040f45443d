package feature

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetLabels(t *testing.T) {
	set := make(Set)
	set.Add(NewLag("precip", 7), []float64{1, 2, 3})
	set.Add(NewLag("precip", 1), []float64{4, 5, 6})
	set.Add(NewRolling("temp", 7, StatMean), []float64{7, 8, 9})

	labels := set.Labels()
	require.Equal(t, 3, labels.Len())

	exp := []string{
		"lag_precip_01",
		"lag_precip_07",
		"roll_temp_07_mean",
	}
	assert.Equal(t, exp, labels.Strings())
}

func TestSetAddOverwrites(t *testing.T) {
	set := make(Set)
	set.Add(NewLag("precip", 1), []float64{1, 2})
	set.Add(NewLag("precip", 1), []float64{3, 4})

	require.Len(t, set, 1)
	assert.Equal(t, []float64{3, 4}, set["lag_precip_01"].Values)
}

func TestSetMatrix(t *testing.T) {
	set := make(Set)
	set.Add(NewLag("precip", 1), []float64{1, 2, 3})
	set.Add(NewLag("precip", 2), []float64{4, 5, 6})

	mx := set.Matrix(true)
	require.NotNil(t, mx)

	m, n := mx.Dims()
	assert.Equal(t, 3, m)
	assert.Equal(t, 3, n)

	// intercept, lag 1, lag 2
	assert.Equal(t, 1.0, mx.At(0, 0))
	assert.Equal(t, 1.0, mx.At(0, 1))
	assert.Equal(t, 4.0, mx.At(0, 2))
	assert.Equal(t, 3.0, mx.At(2, 1))
	assert.Equal(t, 6.0, mx.At(2, 2))
}

func TestSetMatrixEmpty(t *testing.T) {
	var set Set
	assert.Nil(t, set.Matrix(false))
	assert.Nil(t, set.Labels())

	set = make(Set)
	assert.Nil(t, set.Matrix(false))
}

func TestLabelsIndex(t *testing.T) {
	labels := NewLabels([]Feature{
		NewLag("precip", 1),
		NewLag("precip", 7),
	})

	idx, exists := labels.Index(NewLag("precip", 7))
	assert.True(t, exists)
	assert.Equal(t, 1, idx)

	idx, exists = labels.Index(NewLag("temp", 1))
	assert.False(t, exists)
	assert.Equal(t, -1, idx)
}
