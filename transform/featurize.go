package transform

import (
	"github.com/sydmet/weatherfeat"
	"github.com/sydmet/weatherfeat/feature"
	"github.com/sydmet/weatherfeat/timetable"
)

// LagTransform appends lag columns for its configured source columns. It is
// stateless: Fit only validates the configuration against the training
// schema and learns nothing.
type LagTransform struct {
	Columns []string
	Lags    []int
}

func NewLagTransform(columns []string, lags []int) *LagTransform {
	return &LagTransform{
		Columns: columns,
		Lags:    lags,
	}
}

func (lt *LagTransform) Fit(tbl *timetable.Table) error {
	_, err := weatherfeat.CreateLagFeatures(tbl, lt.Columns, lt.Lags)
	return err
}

func (lt *LagTransform) Transform(tbl *timetable.Table) (*timetable.Table, error) {
	return weatherfeat.CreateLagFeatures(tbl, lt.Columns, lt.Lags)
}

// RollingTransform appends trailing-window aggregate columns. Stateless.
type RollingTransform struct {
	Columns []string
	Windows []int
	Stat    feature.Stat
	Opt     *weatherfeat.RollingOptions
}

func NewRollingTransform(columns []string, windows []int, stat feature.Stat) *RollingTransform {
	return &RollingTransform{
		Columns: columns,
		Windows: windows,
		Stat:    stat,
	}
}

func (rt *RollingTransform) Fit(tbl *timetable.Table) error {
	_, err := weatherfeat.CreateRollingFeatures(tbl, rt.Columns, rt.Windows, rt.Stat, rt.Opt)
	return err
}

func (rt *RollingTransform) Transform(tbl *timetable.Table) (*timetable.Table, error) {
	return weatherfeat.CreateRollingFeatures(tbl, rt.Columns, rt.Windows, rt.Stat, rt.Opt)
}

// SeasonalTransform appends cyclical calendar encodings derived from the
// time index. Stateless.
type SeasonalTransform struct {
	Opt *weatherfeat.SeasonalityOptions
}

func NewSeasonalTransform(opt *weatherfeat.SeasonalityOptions) *SeasonalTransform {
	if opt == nil {
		opt = weatherfeat.NewDefaultSeasonalityOptions()
	}
	return &SeasonalTransform{Opt: opt}
}

func (st *SeasonalTransform) Fit(tbl *timetable.Table) error {
	_, err := weatherfeat.CreateSeasonalFeatures(tbl, st.Opt)
	return err
}

func (st *SeasonalTransform) Transform(tbl *timetable.Table) (*timetable.Table, error) {
	return weatherfeat.CreateSeasonalFeatures(tbl, st.Opt)
}

// InteractionTransform appends elementwise column combinations. Stateless.
type InteractionTransform struct {
	Pairs []feature.Interaction
}

func NewInteractionTransform(pairs []feature.Interaction) *InteractionTransform {
	return &InteractionTransform{Pairs: pairs}
}

func (it *InteractionTransform) Fit(tbl *timetable.Table) error {
	_, err := weatherfeat.CreateInteractionFeatures(tbl, it.Pairs)
	return err
}

func (it *InteractionTransform) Transform(tbl *timetable.Table) (*timetable.Table, error) {
	return weatherfeat.CreateInteractionFeatures(tbl, it.Pairs)
}
