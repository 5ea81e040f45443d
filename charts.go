package weatherfeat

import (
	"io"
	"math"
	"os"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/sydmet/weatherfeat/feature"
)

// LineTSeries generates an echart multi-line chart for some arbitrary
// time/value combination. Each series in y must have the same length as the
// input time slice; NaN points are dropped.
func LineTSeries(title string, seriesName []string, t []time.Time, y [][]float64) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: title,
			},
		),
	)

	lineData := make([][]opts.LineData, len(y))

	filteredT := make([]time.Time, 0, len(t))
	for i := 0; i < len(y); i++ {
		lineData[i] = make([]opts.LineData, 0, len(y[i]))
		for j := 0; j < len(y[i]); j++ {
			if math.IsNaN(y[i][j]) {
				continue
			}
			if i == 0 {
				filteredT = append(filteredT, t[j])
			}
			lineData[i] = append(lineData[i], opts.LineData{Value: y[i][j]})
		}
	}

	line = line.SetXAxis(filteredT)
	for i, series := range seriesName {
		line = line.AddSeries(series, lineData[i])
	}

	return line
}

// LineResiduals generates an echart line chart of prediction residuals,
// actual minus predicted, over time. Rows where either side is NaN are
// dropped.
func LineResiduals(title string, t []time.Time, predicted, actual []float64) *charts.Line {
	residual := make([]float64, len(actual))
	for i := range actual {
		if i >= len(predicted) || math.IsNaN(predicted[i]) || math.IsNaN(actual[i]) {
			residual[i] = math.NaN()
			continue
		}
		residual[i] = actual[i] - predicted[i]
	}
	return LineTSeries(title, []string{"Residual"}, t, [][]float64{residual})
}

// BarFeatureImportance generates an echart bar chart of per-feature
// coefficients, labeled in coefficient order. Pair with a fit on
// standardized features so magnitudes are comparable.
func BarFeatureImportance(title string, labels *feature.Labels, coef []float64) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: title,
			},
		),
	)

	barData := make([]opts.BarData, 0, len(coef))
	for _, c := range coef {
		barData = append(barData, opts.BarData{Value: c})
	}

	bar.SetXAxis(labels.Strings()).
		AddSeries("Coefficient", barData)
	return bar
}

// WritePlotsHTML renders the given charts onto a single HTML page at path.
func WritePlotsHTML(path string, cs ...components.Charter) error {
	page := components.NewPage()
	page.AddCharts(cs...)

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return page.Render(io.MultiWriter(file))
}
