package openmeteo

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDailyPayload(t *testing.T) {
	raw := []byte(`{
		"latitude": -33.75,
		"longitude": 151.125,
		"daily": {
			"time": ["2024-01-01", "2024-01-02", "2024-01-03"],
			"temperature_2m_max": [30.1, null, 25.0],
			"precipitation_sum": [0, 4.2, 12.6]
		}
	}`)

	payload, err := parseDailyPayload(raw)
	require.NoError(t, err)

	assert.Equal(t, -33.75, payload.Latitude)
	assert.Equal(t, 151.125, payload.Longitude)
	assert.Equal(t, []string{"precipitation_sum", "temperature_2m_max"}, payload.Variables())

	require.Len(t, payload.Dates, 3)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), payload.Dates[0])

	temp := payload.Values["temperature_2m_max"]
	require.Len(t, temp, 3)
	assert.Equal(t, 30.1, temp[0])
	assert.True(t, math.IsNaN(temp[1]), "null cell decodes to NaN")
	assert.Equal(t, 25.0, temp[2])
}

func TestParseDailyPayloadErrors(t *testing.T) {
	testData := map[string]struct {
		raw []byte
		err error
	}{
		"no daily block": {
			raw: []byte(`{"latitude": -33.75, "longitude": 151.125}`),
			err: ErrNoDailyBlock,
		},
		"no time block": {
			raw: []byte(`{"daily": {"temperature_2m_max": [30.1]}}`),
			err: ErrNoDailyBlock,
		},
		"length mismatch": {
			raw: []byte(`{"daily": {"time": ["2024-01-01", "2024-01-02"], "temperature_2m_max": [30.1]}}`),
			err: ErrDailyLenMismatch,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			_, err := parseDailyPayload(td.raw)
			assert.ErrorIs(t, err, td.err)
		})
	}

	t.Run("invalid json", func(t *testing.T) {
		_, err := parseDailyPayload([]byte(`{`))
		assert.Error(t, err)
	})
}

func TestDailyPayloadTable(t *testing.T) {
	payload, err := parseDailyPayload([]byte(`{
		"daily": {
			"time": ["2024-01-01", "2024-01-02"],
			"temperature_2m_max": [30.1, 28.4]
		}
	}`))
	require.NoError(t, err)

	tbl, err := payload.Table()
	require.NoError(t, err)

	assert.Equal(t, 2, tbl.Len())
	assert.Equal(t, []string{"temperature_2m_max"}, tbl.Columns())

	empty := &DailyPayload{}
	_, err = empty.Table()
	assert.ErrorIs(t, err, ErrNoDailyBlock)
}
