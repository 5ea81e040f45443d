package feature

import (
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Data pairs a feature descriptor with its generated column values.
type Data struct {
	F      Feature
	Values []float64
}

// Set maps each feature's string representation to its descriptor and data.
type Set map[string]Data

// Add registers a feature and its values, overwriting any previous entry
// with the same name.
func (s Set) Add(f Feature, values []float64) {
	s[f.String()] = Data{F: f, Values: values}
}

// Labels returns the sorted labels of all tracked features. Sorting keeps
// the matrix column ordering stable across runs.
func (s Set) Labels() *Labels {
	if s == nil {
		return nil
	}

	labels := make([]Feature, 0, len(s))
	for _, feat := range s {
		labels = append(labels, feat.F)
	}
	sort.Slice(
		labels,
		func(i, j int) bool {
			return labels[i].String() < labels[j].String()
		},
	)
	return NewLabels(labels)
}

// Matrix returns the set as an m x n dense matrix with m observations and n
// features, columns ordered by sorted label. An intercept column of ones is
// prepended when requested.
func (s Set) Matrix(intercept bool) *mat.Dense {
	if s == nil {
		return nil
	}

	featureLabels := s.Labels()
	if featureLabels.Len() == 0 {
		return nil
	}

	var m int
	for _, flabel := range featureLabels.Labels() {
		m = len(s[flabel.String()].Values)
		break
	}
	n := featureLabels.Len()
	if intercept {
		n++
	}

	obs := make([]float64, m*n)

	featNum := 0
	if intercept {
		for i := 0; i < m; i++ {
			obs[n*i] = 1.0
		}
		featNum++
	}

	for _, label := range featureLabels.Labels() {
		feat := s[label.String()]
		for i := 0; i < len(feat.Values); i++ {
			obs[n*i+featNum] = feat.Values[i]
		}
		featNum++
	}
	return mat.NewDense(m, n, obs)
}
