// Package stats holds the window kernels behind rolling features along with
// diagnostics for raw and engineered weather series.
package stats

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// rollingApply computes f over the trailing window ending at each row. Rows
// with fewer than minPeriods prior observations are NaN. A minPeriods of 0
// means the full window is required. Any NaN inside the window makes the
// result NaN.
func rollingApply(vals []float64, window, minPeriods int, f func([]float64) float64) []float64 {
	if minPeriods <= 0 {
		minPeriods = window
	}

	out := make([]float64, len(vals))
	for i := range vals {
		start := i - window + 1
		if start < 0 {
			start = 0
		}
		w := vals[start : i+1]
		if len(w) < minPeriods || hasNaN(w) {
			out[i] = math.NaN()
			continue
		}
		out[i] = f(w)
	}
	return out
}

func hasNaN(w []float64) bool {
	for _, v := range w {
		if math.IsNaN(v) {
			return true
		}
	}
	return false
}

// RollingMean returns the trailing-window arithmetic mean of vals.
func RollingMean(vals []float64, window, minPeriods int) []float64 {
	return rollingApply(vals, window, minPeriods, func(w []float64) float64 {
		return stat.Mean(w, nil)
	})
}

// RollingStd returns the trailing-window sample standard deviation. A window
// of a single observation yields NaN.
func RollingStd(vals []float64, window, minPeriods int) []float64 {
	return rollingApply(vals, window, minPeriods, func(w []float64) float64 {
		if len(w) < 2 {
			return math.NaN()
		}
		return stat.StdDev(w, nil)
	})
}

// RollingMin returns the trailing-window minimum.
func RollingMin(vals []float64, window, minPeriods int) []float64 {
	return rollingApply(vals, window, minPeriods, floats.Min)
}

// RollingMax returns the trailing-window maximum.
func RollingMax(vals []float64, window, minPeriods int) []float64 {
	return rollingApply(vals, window, minPeriods, floats.Max)
}

// RollingSum returns the trailing-window sum.
func RollingSum(vals []float64, window, minPeriods int) []float64 {
	return rollingApply(vals, window, minPeriods, floats.Sum)
}
