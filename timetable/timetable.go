// Package timetable provides the in-memory table shared by the loaders,
// feature generators, and transforms. A Table is a set of named float64
// columns over a single time index at daily granularity.
package timetable

import (
	"errors"
	"fmt"
	"time"

	"gonum.org/v1/gonum/mat"
)

var (
	ErrNoRows            = errors.New("no rows in time index")
	ErrNonMonotonic      = errors.New("time index is not strictly increasing")
	ErrColumnLenMismatch = errors.New("column has a different length than the time index")
	ErrDuplicateColumn   = errors.New("column already exists in table")
	ErrUnknownColumn     = errors.New("unknown column")
	ErrBadSlice          = errors.New("slice bounds out of range")
)

// Table stores a strictly increasing, duplicate-free time index along with
// named float64 columns of the same length. Lag and rolling computations
// rely on that ordering invariant, so it is enforced at construction.
type Table struct {
	t     []time.Time
	order []string
	cols  map[string][]float64
}

// New returns a Table over the given time index with no columns. The index
// must be non-empty and strictly increasing.
func New(t []time.Time) (*Table, error) {
	if len(t) == 0 {
		return nil, ErrNoRows
	}

	for i := 1; i < len(t); i++ {
		if !t[i].After(t[i-1]) {
			return nil, fmt.Errorf("at row %d, %w", i, ErrNonMonotonic)
		}
	}

	idx := make([]time.Time, len(t))
	copy(idx, t)
	return &Table{
		t:    idx,
		cols: make(map[string][]float64),
	}, nil
}

// Len returns the number of rows.
func (tb *Table) Len() int {
	return len(tb.t)
}

// Times returns a copy of the time index.
func (tb *Table) Times() []time.Time {
	t := make([]time.Time, len(tb.t))
	copy(t, tb.t)
	return t
}

// Columns returns the column names in insertion order. Insertion order is
// what keeps derived schemas deterministic when tables are rebuilt.
func (tb *Table) Columns() []string {
	names := make([]string, len(tb.order))
	copy(names, tb.order)
	return names
}

// HasColumn reports whether the named column exists.
func (tb *Table) HasColumn(name string) bool {
	_, exists := tb.cols[name]
	return exists
}

// Column returns a copy of the named column's values.
func (tb *Table) Column(name string) ([]float64, error) {
	vals, exists := tb.cols[name]
	if !exists {
		return nil, fmt.Errorf("%q, %w", name, ErrUnknownColumn)
	}
	out := make([]float64, len(vals))
	copy(out, vals)
	return out, nil
}

// AddColumn appends a new column. The values are copied so the caller's
// slice stays independent of the table.
func (tb *Table) AddColumn(name string, vals []float64) error {
	if _, exists := tb.cols[name]; exists {
		return fmt.Errorf("%q, %w", name, ErrDuplicateColumn)
	}
	if len(vals) != len(tb.t) {
		return fmt.Errorf(
			"column %q has length %d, but time index has length %d, %w",
			name, len(vals), len(tb.t), ErrColumnLenMismatch,
		)
	}

	stored := make([]float64, len(vals))
	copy(stored, vals)
	tb.cols[name] = stored
	tb.order = append(tb.order, name)
	return nil
}

// ReplaceColumn overwrites an existing column's values in place.
func (tb *Table) ReplaceColumn(name string, vals []float64) error {
	if _, exists := tb.cols[name]; !exists {
		return fmt.Errorf("%q, %w", name, ErrUnknownColumn)
	}
	if len(vals) != len(tb.t) {
		return fmt.Errorf(
			"column %q has length %d, but time index has length %d, %w",
			name, len(vals), len(tb.t), ErrColumnLenMismatch,
		)
	}

	stored := make([]float64, len(vals))
	copy(stored, vals)
	tb.cols[name] = stored
	return nil
}

// WithColumn returns a copy of the table with the column appended, leaving
// the receiver untouched.
func (tb *Table) WithColumn(name string, vals []float64) (*Table, error) {
	out := tb.Copy()
	if err := out.AddColumn(name, vals); err != nil {
		return nil, err
	}
	return out, nil
}

// Copy returns a deep copy of the table.
func (tb *Table) Copy() *Table {
	out := &Table{
		t:     make([]time.Time, len(tb.t)),
		order: make([]string, len(tb.order)),
		cols:  make(map[string][]float64, len(tb.cols)),
	}
	copy(out.t, tb.t)
	copy(out.order, tb.order)
	for name, vals := range tb.cols {
		stored := make([]float64, len(vals))
		copy(stored, vals)
		out.cols[name] = stored
	}
	return out
}

// Slice returns a copy of rows [i, j).
func (tb *Table) Slice(i, j int) (*Table, error) {
	if i < 0 || j > len(tb.t) || i >= j {
		return nil, fmt.Errorf("[%d, %d) on %d rows, %w", i, j, len(tb.t), ErrBadSlice)
	}

	out, err := New(tb.t[i:j])
	if err != nil {
		return nil, err
	}
	for _, name := range tb.order {
		if err := out.AddColumn(name, tb.cols[name][i:j]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Select returns a copy of the table restricted to the named columns, in the
// given order.
func (tb *Table) Select(names []string) (*Table, error) {
	out, err := New(tb.t)
	if err != nil {
		return nil, err
	}
	for _, name := range names {
		vals, exists := tb.cols[name]
		if !exists {
			return nil, fmt.Errorf("%q, %w", name, ErrUnknownColumn)
		}
		if err := out.AddColumn(name, vals); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Matrix returns the named columns as an m x n dense matrix with one row per
// observation. An intercept column of ones is prepended when requested. Used
// to hand engineered features to a regression.
func (tb *Table) Matrix(names []string, intercept bool) (*mat.Dense, error) {
	if len(names) == 0 {
		names = tb.order
	}

	m := len(tb.t)
	n := len(names)
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

	for _, name := range names {
		vals, exists := tb.cols[name]
		if !exists {
			return nil, fmt.Errorf("%q, %w", name, ErrUnknownColumn)
		}
		for i := 0; i < len(vals); i++ {
			obs[n*i+featNum] = vals[i]
		}
		featNum++
	}
	return mat.NewDense(m, n, obs), nil
}
