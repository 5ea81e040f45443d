package weatherfeat

import (
	"github.com/sydmet/weatherfeat/feature"
	"github.com/sydmet/weatherfeat/timetable"
)

// Options configures one Engineer pass. Empty sections are skipped.
type Options struct {
	LagColumns []string
	Lags       []int

	RollingColumns []string
	RollingWindows []int
	RollingStat    feature.Stat
	Rolling        *RollingOptions

	Seasonality *SeasonalityOptions

	Interactions []feature.Interaction
}

func NewDefaultOptions() *Options {
	return &Options{
		Lags:           []int{1, 7},
		RollingWindows: []int{7, 30},
		RollingStat:    feature.StatMean,
		Seasonality:    NewDefaultSeasonalityOptions(),
	}
}

// Engineer applies the configured feature passes in a fixed order: lags,
// rolling aggregates, seasonal encodings, then interactions. The input table
// is never mutated.
func Engineer(tbl *timetable.Table, opt *Options) (*timetable.Table, error) {
	if tbl == nil {
		return nil, ErrNoTable
	}
	if opt == nil {
		opt = NewDefaultOptions()
	}

	out := tbl.Copy()
	var err error
	if len(opt.LagColumns) > 0 {
		out, err = CreateLagFeatures(out, opt.LagColumns, opt.Lags)
		if err != nil {
			return nil, err
		}
	}
	if len(opt.RollingColumns) > 0 {
		out, err = CreateRollingFeatures(out, opt.RollingColumns, opt.RollingWindows, opt.RollingStat, opt.Rolling)
		if err != nil {
			return nil, err
		}
	}
	if opt.Seasonality != nil {
		out, err = CreateSeasonalFeatures(out, opt.Seasonality)
		if err != nil {
			return nil, err
		}
	}
	if len(opt.Interactions) > 0 {
		out, err = CreateInteractionFeatures(out, opt.Interactions)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
