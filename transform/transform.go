// Package transform wraps the feature engineering operations in a
// fit/transform contract so they can be chained into a preprocessing
// pipeline alongside learned steps like scalers. Stateless steps validate
// their configuration at Fit; stateful steps record parameters from the
// training table and replay them on any compatible table.
package transform

import (
	"github.com/sydmet/weatherfeat/timetable"
)

// Transformer is the two-phase contract: Fit once on a training table, then
// Transform any table with a compatible schema. Transform must produce a
// deterministic output schema given its input schema so pipelines compose
// statically, and must never mutate its input.
type Transformer interface {
	Fit(tbl *timetable.Table) error
	Transform(tbl *timetable.Table) (*timetable.Table, error)
}

// FitTransform fits on the table and immediately transforms it.
func FitTransform(tr Transformer, tbl *timetable.Table) (*timetable.Table, error) {
	if err := tr.Fit(tbl); err != nil {
		return nil, err
	}
	return tr.Transform(tbl)
}
