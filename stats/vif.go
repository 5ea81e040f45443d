package stats

import (
	"errors"
	"math"

	"github.com/sydmet/weatherfeat/regress"
	"gonum.org/v1/gonum/mat"
)

var (
	ErrMinimumFeatures    = errors.New("need at least 2 features to compute VIF")
	ErrFeatureLenMismatch = errors.New("some feature length is not consistent")
	ErrFeatureLen         = errors.New("must have at least 2 points per feature")
)

// VarianceInflationFactor regresses each feature on all others and returns
// 1/(1-R2) per feature. Engineered columns that are near linear combinations
// of each other, e.g. a lag and a tight rolling mean, show up with large
// factors.
func VarianceInflationFactor(features map[string][]float64) (map[string]float64, error) {
	if len(features) < 2 {
		return nil, ErrMinimumFeatures
	}
	n := len(features)
	var m int
	for _, vals := range features {
		if len(vals) < 2 {
			return nil, ErrFeatureLen
		}
		if m == 0 {
			m = len(vals)
			continue
		}
		if m != len(vals) {
			return nil, ErrFeatureLenMismatch
		}
	}

	vif := make(map[string]float64)
	x := mat.NewDense(m, n-1, nil)
	y := mat.NewDense(m, 1, nil)

	for label, labelFeature := range features {
		y.SetCol(0, labelFeature)
		c := 0
		for otherLabel, otherLabelFeature := range features {
			if otherLabel == label {
				continue
			}
			x.SetCol(c, otherLabelFeature)
			c++
		}

		model, err := regress.NewOLSRegression(nil)
		if err != nil {
			return nil, err
		}
		if err := model.Fit(x, y); err != nil {
			return nil, err
		}
		r2, err := model.Score(x, y)
		if err != nil {
			return nil, err
		}

		if r2 >= 1.0 {
			vif[label] = math.Inf(1)
			continue
		}
		vif[label] = 1.0 / (1.0 - r2)
	}
	return vif, nil
}
