// Package weatherfeat derives model inputs from daily weather tables: lag
// columns, trailing-window aggregates, cyclical calendar encodings, and
// interaction terms. Every operation returns an augmented copy and leaves
// the input table untouched so repeated experimentation composes cleanly.
package weatherfeat

import (
	"fmt"
	"math"

	"github.com/sydmet/weatherfeat/feature"
	"github.com/sydmet/weatherfeat/stats"
	"github.com/sydmet/weatherfeat/timetable"
)

// CreateLagFeatures appends one column per source column and lag, holding
// the source shifted back by that many rows. Lags must be positive; a lag of
// zero is rejected since it would only duplicate the source column. The
// first lag rows of each new column are NaN.
func CreateLagFeatures(tbl *timetable.Table, columns []string, lags []int) (*timetable.Table, error) {
	if tbl == nil {
		return nil, ErrNoTable
	}
	if len(columns) == 0 {
		return nil, NewConfigurationError("columns", "no columns requested", columns)
	}
	if len(lags) == 0 {
		return nil, NewConfigurationError("lags", "no lags requested", lags)
	}
	for _, lag := range lags {
		if lag <= 0 {
			return nil, NewConfigurationError("lags", "must be a positive integer", lag)
		}
	}

	out := tbl.Copy()
	for _, col := range columns {
		vals, err := tbl.Column(col)
		if err != nil {
			return nil, err
		}
		for _, lag := range lags {
			feat := feature.NewLag(col, lag)
			if err := out.AddColumn(feat.String(), shift(vals, lag)); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

func shift(vals []float64, lag int) []float64 {
	out := make([]float64, len(vals))
	for i := range out {
		if i < lag {
			out[i] = math.NaN()
			continue
		}
		out[i] = vals[i-lag]
	}
	return out
}

type RollingOptions struct {
	// MinPeriods lets windows near the start of the series compute from
	// fewer observations. Zero requires the full window.
	MinPeriods int
}

// CreateRollingFeatures appends one column per source column and window,
// holding the trailing-window statistic. Windows must be within [1, number
// of rows]; rows with fewer than MinPeriods (default: window) observations
// behind them are NaN.
func CreateRollingFeatures(tbl *timetable.Table, columns []string, windows []int, stat feature.Stat, opt *RollingOptions) (*timetable.Table, error) {
	if tbl == nil {
		return nil, ErrNoTable
	}
	if len(columns) == 0 {
		return nil, NewConfigurationError("columns", "no columns requested", columns)
	}
	if len(windows) == 0 {
		return nil, NewConfigurationError("windows", "no windows requested", windows)
	}
	if !stat.Valid() {
		return nil, NewConfigurationError("stat", "unknown rolling statistic", stat)
	}

	minPeriods := 0
	if opt != nil {
		minPeriods = opt.MinPeriods
	}
	for _, window := range windows {
		if window < 1 || window > tbl.Len() {
			return nil, NewConfigurationError("windows", fmt.Sprintf("must be within [1, %d]", tbl.Len()), window)
		}
		if minPeriods < 0 || minPeriods > window {
			return nil, NewConfigurationError("min_periods", fmt.Sprintf("must be within [0, %d]", window), minPeriods)
		}
	}

	out := tbl.Copy()
	for _, col := range columns {
		vals, err := tbl.Column(col)
		if err != nil {
			return nil, err
		}
		for _, window := range windows {
			feat := feature.NewRolling(col, window, stat)
			if err := out.AddColumn(feat.String(), rollingKernel(stat)(vals, window, minPeriods)); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

func rollingKernel(stat feature.Stat) func([]float64, int, int) []float64 {
	switch stat {
	case feature.StatStd:
		return stats.RollingStd
	case feature.StatMin:
		return stats.RollingMin
	case feature.StatMax:
		return stats.RollingMax
	case feature.StatSum:
		return stats.RollingSum
	default:
		return stats.RollingMean
	}
}

const (
	// SeasonalityDoY tags day-of-year encodings with an annual period.
	SeasonalityDoY = "doy"
	// SeasonalityDoW tags day-of-week encodings with a weekly period.
	SeasonalityDoW = "dow"

	annualPeriod = 365.25
	weeklyPeriod = 7.0
)

type SeasonalityOptions struct {
	// AnnualOrders is the number of day-of-year Fourier orders.
	AnnualOrders int
	// WeeklyOrders is the number of day-of-week Fourier orders.
	WeeklyOrders int
	// Holidays adds a 0/1 Australian public holiday indicator.
	Holidays bool
}

func NewDefaultSeasonalityOptions() *SeasonalityOptions {
	return &SeasonalityOptions{
		AnnualOrders: 1,
		WeeklyOrders: 1,
	}
}

// CreateSeasonalFeatures appends sine and cosine encodings of calendar
// position derived purely from the time index. Every row is defined, so no
// missing-value policy applies.
func CreateSeasonalFeatures(tbl *timetable.Table, opt *SeasonalityOptions) (*timetable.Table, error) {
	if tbl == nil {
		return nil, ErrNoTable
	}
	if opt == nil {
		opt = NewDefaultSeasonalityOptions()
	}
	if opt.AnnualOrders < 0 {
		return nil, NewConfigurationError("annual_orders", "must not be negative", opt.AnnualOrders)
	}
	if opt.WeeklyOrders < 0 {
		return nil, NewConfigurationError("weekly_orders", "must not be negative", opt.WeeklyOrders)
	}

	t := tbl.Times()
	doy := make([]float64, len(t))
	dow := make([]float64, len(t))
	for i, tPnt := range t {
		doy[i] = float64(tPnt.YearDay() - 1)
		dow[i] = float64(tPnt.Weekday())
	}

	out := tbl.Copy()
	if err := addFourierOrders(out, SeasonalityDoY, doy, opt.AnnualOrders, annualPeriod); err != nil {
		return nil, err
	}
	if err := addFourierOrders(out, SeasonalityDoW, dow, opt.WeeklyOrders, weeklyPeriod); err != nil {
		return nil, err
	}

	if opt.Holidays {
		feat := feature.NewHoliday("au")
		if err := out.AddColumn(feat.String(), feat.Generate(t, feature.AustralianHolidays())); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func addFourierOrders(tbl *timetable.Table, name string, pos []float64, orders int, period float64) error {
	for order := 1; order <= orders; order++ {
		for _, fcomp := range []feature.FourierComp{feature.FourierCompSin, feature.FourierCompCos} {
			feat := feature.NewSeasonality(name, fcomp, order)
			if err := tbl.AddColumn(feat.String(), feat.Generate(pos, period)); err != nil {
				return err
			}
		}
	}
	return nil
}

// CreateInteractionFeatures appends one column per pair, combining the two
// source columns elementwise. An unset operator defaults to the product.
// Rows where either source is NaN stay NaN.
func CreateInteractionFeatures(tbl *timetable.Table, pairs []feature.Interaction) (*timetable.Table, error) {
	if tbl == nil {
		return nil, ErrNoTable
	}
	if len(pairs) == 0 {
		return nil, NewConfigurationError("pairs", "no column pairs requested", pairs)
	}

	out := tbl.Copy()
	for _, pair := range pairs {
		if pair.Op == "" {
			pair.Op = feature.OpMul
		}
		if !pair.Op.Valid() {
			return nil, NewConfigurationError("op", "unknown binary operator", pair.Op)
		}

		left, err := tbl.Column(pair.Left)
		if err != nil {
			return nil, err
		}
		right, err := tbl.Column(pair.Right)
		if err != nil {
			return nil, err
		}

		vals := make([]float64, len(left))
		for i := range vals {
			vals[i] = pair.Op.Apply(left[i], right[i])
		}
		if err := out.AddColumn(pair.String(), vals); err != nil {
			return nil, err
		}
	}
	return out, nil
}
