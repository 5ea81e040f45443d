package weatherfeat

import (
	"math"
	"testing"
	"time"

	"github.com/pkg/profile"
	"github.com/sydmet/weatherfeat/feature"
	"github.com/sydmet/weatherfeat/timetable"
)

var benchEngineerRes *timetable.Table

func setupBenchTable(n int) *timetable.Table {
	times := make([]time.Time, 0, n)
	start := time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC)
	temp := make([]float64, 0, n)
	precip := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		times = append(times, start.AddDate(0, 0, i))
		temp = append(temp, 22.0+8.0*math.Sin(2.0*math.Pi*float64(i)/365.25))
		precip = append(precip, math.Abs(math.Sin(float64(i)*1.3))*10.0)
	}

	tbl, err := timetable.New(times)
	if err != nil {
		panic(err)
	}
	if err := tbl.AddColumn("temperature_2m_max", temp); err != nil {
		panic(err)
	}
	if err := tbl.AddColumn("precipitation_sum", precip); err != nil {
		panic(err)
	}
	return tbl
}

func BenchmarkEngineer(b *testing.B) {
	tbl := setupBenchTable(3650)
	opt := &Options{
		LagColumns:     []string{"temperature_2m_max", "precipitation_sum"},
		Lags:           []int{1, 7, 30},
		RollingColumns: []string{"temperature_2m_max", "precipitation_sum"},
		RollingWindows: []int{7, 30},
		RollingStat:    feature.StatMean,
		Seasonality: &SeasonalityOptions{
			AnnualOrders: 3,
			WeeklyOrders: 2,
			Holidays:     true,
		},
		Interactions: []feature.Interaction{
			{Left: "temperature_2m_max", Right: "precipitation_sum"},
		},
	}

	var err error
	b.ResetTimer()
	defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	for b.Loop() {
		benchEngineerRes, err = Engineer(tbl, opt)
		if err != nil {
			panic(err)
		}
	}
}
