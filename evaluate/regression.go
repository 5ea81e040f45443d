// Package evaluate computes scalar metrics from predicted and actual
// columns. All functions are pure; pairs where either side is NaN are
// excluded from the aggregate, since engineered tables carry undefined lag
// and rolling heads.
package evaluate

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// Scores bundles the standard regression metrics for a fit.
type Scores struct {
	MAE  float64 // mean absolute error
	MSE  float64 // mean squared error
	RMSE float64 // root mean squared error
	MAPE float64 // mean absolute percent error
	R2   float64 // coefficient of determination
}

func NewScores(predicted, actual []float64) (*Scores, error) {
	mae, err := MAE(predicted, actual)
	if err != nil {
		return nil, fmt.Errorf("unable to compute mean absolute error, %w", err)
	}
	mse, err := MSE(predicted, actual)
	if err != nil {
		return nil, fmt.Errorf("unable to compute mean squared error, %w", err)
	}
	mape, err := MAPE(predicted, actual)
	if err != nil {
		return nil, fmt.Errorf("unable to compute mean absolute percent error, %w", err)
	}
	r2, err := R2(predicted, actual)
	if err != nil {
		return nil, fmt.Errorf("unable to compute r-squared, %w", err)
	}
	return &Scores{
		MAE:  mae,
		MSE:  mse,
		RMSE: math.Sqrt(mse),
		MAPE: mape,
		R2:   r2,
	}, nil
}

func validPairs(metric string, predicted, actual []float64) ([]float64, []float64, error) {
	if len(predicted) != len(actual) {
		return nil, nil, NewShapeMismatchError(metric, len(predicted), len(actual))
	}

	p := make([]float64, 0, len(actual))
	a := make([]float64, 0, len(actual))
	for i := 0; i < len(actual); i++ {
		if math.IsNaN(actual[i]) || math.IsNaN(predicted[i]) {
			continue
		}
		p = append(p, predicted[i])
		a = append(a, actual[i])
	}
	if len(a) == 0 {
		return nil, nil, ErrNoValidPairs
	}
	return p, a, nil
}

// MAE returns the mean absolute error between predicted and actual.
func MAE(predicted, actual []float64) (float64, error) {
	p, a, err := validPairs("mae", predicted, actual)
	if err != nil {
		return 0, err
	}

	mae := 0.0
	for i := range a {
		mae += math.Abs(a[i] - p[i])
	}
	return mae / float64(len(a)), nil
}

// MSE returns the mean squared error between predicted and actual.
func MSE(predicted, actual []float64) (float64, error) {
	p, a, err := validPairs("mse", predicted, actual)
	if err != nil {
		return 0, err
	}

	mse := 0.0
	for i := range a {
		diff := a[i] - p[i]
		mse += diff * diff
	}
	return mse / float64(len(a)), nil
}

// RMSE returns the root mean squared error between predicted and actual.
func RMSE(predicted, actual []float64) (float64, error) {
	mse, err := MSE(predicted, actual)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(mse), nil
}

// MAPE returns the mean absolute percent error between predicted and
// actual. Rows where the actual is zero are skipped.
func MAPE(predicted, actual []float64) (float64, error) {
	p, a, err := validPairs("mape", predicted, actual)
	if err != nil {
		return 0, err
	}

	mape := 0.0
	var n int
	for i := range a {
		if a[i] == 0 {
			continue
		}
		mape += math.Abs((a[i] - p[i]) / a[i])
		n++
	}
	if n == 0 {
		return 0, ErrNoValidPairs
	}
	return mape / float64(n), nil
}

// R2 returns the coefficient of determination of predicted against actual.
func R2(predicted, actual []float64) (float64, error) {
	p, a, err := validPairs("r2", predicted, actual)
	if err != nil {
		return 0, err
	}
	return stat.RSquaredFrom(p, a, nil), nil
}
