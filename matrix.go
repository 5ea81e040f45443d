package weatherfeat

import (
	"github.com/sydmet/weatherfeat/feature"
	"github.com/sydmet/weatherfeat/timetable"
	"gonum.org/v1/gonum/mat"
)

// FeatureMatrix assembles the named features from an engineered table into a
// design matrix for an external model, with columns in sorted label order
// and an optional intercept column. The returned labels map coefficients
// back to features.
func FeatureMatrix(tbl *timetable.Table, feats []feature.Feature, intercept bool) (*mat.Dense, *feature.Labels, error) {
	if tbl == nil {
		return nil, nil, ErrNoTable
	}

	set := make(feature.Set, len(feats))
	for _, f := range feats {
		vals, err := tbl.Column(f.String())
		if err != nil {
			return nil, nil, err
		}
		set.Add(f, vals)
	}
	return set.Matrix(intercept), set.Labels(), nil
}
