package transform

import (
	"math"

	"github.com/sydmet/weatherfeat/timetable"
)

// nanStats returns the mean and population standard deviation of the
// defined values in vals. Lag and rolling heads are NaN, so fitting on an
// engineered table must not poison the learned parameters.
func nanStats(vals []float64) (mean, std float64) {
	var sum float64
	var n int
	for _, v := range vals {
		if math.IsNaN(v) {
			continue
		}
		sum += v
		n++
	}
	if n == 0 {
		return math.NaN(), 1.0
	}
	mean = sum / float64(n)

	var sumSq float64
	for _, v := range vals {
		if math.IsNaN(v) {
			continue
		}
		diff := v - mean
		sumSq += diff * diff
	}
	std = math.Sqrt(sumSq / float64(n))
	if std < 1e-8 {
		std = 1.0
	}
	return mean, std
}

// StandardScaler standardizes columns to zero mean and unit variance using
// statistics learned at Fit. Stateful: Transform before Fit fails with
// NotFittedError.
type StandardScaler struct {
	// Columns restricts which columns are scaled. Empty scales every column
	// present at Fit.
	Columns []string

	cols   []string
	mean   map[string]float64
	scale  map[string]float64
	fitted bool
}

func NewStandardScaler(columns ...string) *StandardScaler {
	return &StandardScaler{
		Columns: columns,
	}
}

func (s *StandardScaler) Fit(tbl *timetable.Table) error {
	if tbl == nil {
		return ErrNoTable
	}

	cols := s.Columns
	if len(cols) == 0 {
		cols = tbl.Columns()
	}

	s.cols = cols
	s.mean = make(map[string]float64, len(cols))
	s.scale = make(map[string]float64, len(cols))
	for _, col := range cols {
		vals, err := tbl.Column(col)
		if err != nil {
			return err
		}
		s.mean[col], s.scale[col] = nanStats(vals)
	}
	s.fitted = true
	return nil
}

func (s *StandardScaler) Transform(tbl *timetable.Table) (*timetable.Table, error) {
	if !s.fitted {
		return nil, NewNotFittedError("StandardScaler", "Transform")
	}
	if tbl == nil {
		return nil, ErrNoTable
	}

	out := tbl.Copy()
	for _, col := range s.cols {
		vals, err := tbl.Column(col)
		if err != nil {
			return nil, err
		}
		for i := range vals {
			vals[i] = (vals[i] - s.mean[col]) / s.scale[col]
		}
		if err := out.ReplaceColumn(col, vals); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// InverseTransform maps standardized columns back to the original scale.
func (s *StandardScaler) InverseTransform(tbl *timetable.Table) (*timetable.Table, error) {
	if !s.fitted {
		return nil, NewNotFittedError("StandardScaler", "InverseTransform")
	}
	if tbl == nil {
		return nil, ErrNoTable
	}

	out := tbl.Copy()
	for _, col := range s.cols {
		vals, err := tbl.Column(col)
		if err != nil {
			return nil, err
		}
		for i := range vals {
			vals[i] = vals[i]*s.scale[col] + s.mean[col]
		}
		if err := out.ReplaceColumn(col, vals); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// MinMaxScaler rescales columns into a fixed range, default [0, 1], using
// minima and maxima learned at Fit. Stateful.
type MinMaxScaler struct {
	Columns      []string
	FeatureRange [2]float64

	order   []string
	dataMin map[string]float64
	scale   map[string]float64
	fitted  bool
}

func NewMinMaxScaler(columns ...string) *MinMaxScaler {
	return &MinMaxScaler{
		Columns:      columns,
		FeatureRange: [2]float64{0.0, 1.0},
	}
}

func (m *MinMaxScaler) Fit(tbl *timetable.Table) error {
	if tbl == nil {
		return ErrNoTable
	}

	cols := m.Columns
	if len(cols) == 0 {
		cols = tbl.Columns()
	}

	m.order = cols
	m.dataMin = make(map[string]float64, len(cols))
	m.scale = make(map[string]float64, len(cols))
	for _, col := range cols {
		vals, err := tbl.Column(col)
		if err != nil {
			return err
		}

		lo := math.Inf(1)
		hi := math.Inf(-1)
		for _, v := range vals {
			if math.IsNaN(v) {
				continue
			}
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
		if math.IsInf(lo, 1) {
			lo, hi = math.NaN(), math.NaN()
		}

		m.dataMin[col] = lo
		scale := hi - lo
		if math.IsNaN(scale) || math.Abs(scale) < 1e-8 {
			// constant column scales to the range floor
			scale = 1.0
		}
		m.scale[col] = scale
	}
	m.fitted = true
	return nil
}

func (m *MinMaxScaler) Transform(tbl *timetable.Table) (*timetable.Table, error) {
	if !m.fitted {
		return nil, NewNotFittedError("MinMaxScaler", "Transform")
	}
	if tbl == nil {
		return nil, ErrNoTable
	}

	span := m.FeatureRange[1] - m.FeatureRange[0]
	out := tbl.Copy()
	for _, col := range m.order {
		vals, err := tbl.Column(col)
		if err != nil {
			return nil, err
		}
		for i := range vals {
			vals[i] = (vals[i]-m.dataMin[col])/m.scale[col]*span + m.FeatureRange[0]
		}
		if err := out.ReplaceColumn(col, vals); err != nil {
			return nil, err
		}
	}
	return out, nil
}
