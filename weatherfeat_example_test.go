package weatherfeat

import (
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sydmet/weatherfeat/evaluate"
	"github.com/sydmet/weatherfeat/feature"
	"github.com/sydmet/weatherfeat/regress"
	"github.com/sydmet/weatherfeat/timetable"
	"gonum.org/v1/gonum/mat"
)

// exercises the full workflow: engineer features from a raw daily series,
// assemble a design matrix, fit a linear model, score it, and render plots.
func TestWorkflow(t *testing.T) {
	n := 365
	times := make([]time.Time, 0, n)
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	temp := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		times = append(times, start.AddDate(0, 0, i))
		temp = append(temp, 22.0+8.0*math.Sin(2.0*math.Pi*float64(i)/365.25))
	}

	tbl, err := timetable.New(times)
	require.NoError(t, err)
	require.NoError(t, tbl.AddColumn("temperature_2m_max", temp))

	engineered, err := Engineer(tbl, &Options{
		LagColumns:  []string{"temperature_2m_max"},
		Lags:        []int{1, 7},
		Seasonality: NewDefaultSeasonalityOptions(),
	})
	require.NoError(t, err)

	// drop the undefined lag head before fitting
	engineered, err = engineered.Slice(7, engineered.Len())
	require.NoError(t, err)

	feats := []feature.Feature{
		feature.NewLag("temperature_2m_max", 1),
		feature.NewLag("temperature_2m_max", 7),
		feature.NewSeasonality(SeasonalityDoY, feature.FourierCompSin, 1),
		feature.NewSeasonality(SeasonalityDoY, feature.FourierCompCos, 1),
	}
	x, labels, err := FeatureMatrix(engineered, feats, false)
	require.NoError(t, err)

	actual, err := engineered.Column("temperature_2m_max")
	require.NoError(t, err)
	y := mat.NewDense(len(actual), 1, actual)

	model, err := regress.NewOLSRegression(nil)
	require.NoError(t, err)
	require.NoError(t, model.Fit(x, y))

	predicted, err := model.Predict(x)
	require.NoError(t, err)

	scores, err := evaluate.NewScores(predicted, actual)
	require.NoError(t, err)
	assert.Greater(t, scores.R2, 0.99, "smooth seasonal series fits nearly perfectly")
	assert.Less(t, scores.RMSE, 1.0)

	path := filepath.Join(t.TempDir(), "fit.html")
	require.NoError(t, WritePlotsHTML(path,
		LineTSeries("fit", []string{"actual", "predicted"}, engineered.Times(), [][]float64{actual, predicted}),
		LineResiduals("residuals", engineered.Times(), predicted, actual),
		BarFeatureImportance("coefficients", labels, model.Coef()),
	))
}
