// Package openmeteo fetches daily weather observations from the Open-Meteo
// API and converts them into tables for feature engineering. Requests are
// retried with exponential backoff on transient failures and yearly fetches
// are spaced out with a politeness delay.
package openmeteo

import (
	"context"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/cockroachdb/errors"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/sydmet/weatherfeat/timetable"
)

const DefaultBaseURL = "https://api.open-meteo.com/v1/forecast"

// DefaultDailyVariables are the daily aggregates requested when the caller
// does not name any. weathercode is always appended for QC.
var DefaultDailyVariables = []string{
	"temperature_2m_max",
	"temperature_2m_min",
	"precipitation_sum",
	"windspeed_10m_max",
}

// Location identifies the site daily observations are fetched for.
type Location struct {
	Lat      float64
	Lon      float64
	Timezone string
}

type Options struct {
	BaseURL    string
	Timeout    time.Duration
	MaxRetries uint64
	// Pause is the politeness delay after each yearly request.
	Pause time.Duration
	// RawDir receives one raw JSON file per fetched year when set.
	RawDir string
	// Clock defaults to the wall clock. Tests substitute a fake.
	Clock clockwork.Clock
}

func NewDefaultOptions() *Options {
	return &Options{
		BaseURL:    DefaultBaseURL,
		Timeout:    60 * time.Second,
		MaxRetries: 5,
		Pause:      time.Second,
	}
}

// Client is a synchronous Open-Meteo daily API client.
type Client struct {
	opt        *Options
	httpClient *http.Client
	clock      clockwork.Clock
	logger     zerolog.Logger
}

func New(opt *Options, logger zerolog.Logger) *Client {
	if opt == nil {
		opt = NewDefaultOptions()
	}
	if opt.BaseURL == "" {
		opt.BaseURL = DefaultBaseURL
	}
	clock := opt.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Client{
		opt: opt,
		httpClient: &http.Client{
			Timeout: opt.Timeout,
		},
		clock:  clock,
		logger: logger,
	}
}

// FetchDailyYear retrieves one calendar year of daily observations.
func (c *Client) FetchDailyYear(ctx context.Context, loc Location, year int, dailyVars []string) (*DailyPayload, error) {
	end := time.Date(year, 12, 31, 0, 0, 0, 0, time.UTC)
	return c.FetchDailyYearUntil(ctx, loc, year, end, dailyVars)
}

// FetchDailyYearUntil retrieves a partial year ending at the given date,
// for pulling the current year up to yesterday.
func (c *Client) FetchDailyYearUntil(ctx context.Context, loc Location, year int, until time.Time, dailyVars []string) (*DailyPayload, error) {
	if len(dailyVars) == 0 {
		dailyVars = DefaultDailyVariables
	}

	params := url.Values{
		"latitude":           {strconv.FormatFloat(loc.Lat, 'f', -1, 64)},
		"longitude":          {strconv.FormatFloat(loc.Lon, 'f', -1, 64)},
		"timezone":           {loc.Timezone},
		"start_date":         {fmt.Sprintf("%d-01-01", year)},
		"end_date":           {until.Format(payloadDateLayout)},
		"timeformat":         {"iso8601"},
		"windspeed_unit":     {"kmh"},
		"precipitation_unit": {"mm"},
		"daily":              {strings.Join(append(append([]string{}, dailyVars...), "weathercode"), ",")},
	}
	fullURL := c.opt.BaseURL + "?" + params.Encode()
	c.logger.Info().Int("year", year).Str("url", c.opt.BaseURL).Msg("requesting open-meteo daily data")

	raw, err := c.get(ctx, fullURL)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to fetch daily data for year %d", year)
	}
	return parseDailyPayload(raw)
}

func (c *Client) get(ctx context.Context, fullURL string) ([]byte, error) {
	var raw []byte
	op := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return backoff.Permanent(err)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}

		switch {
		case resp.StatusCode == http.StatusOK:
			raw = body
			return nil
		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
			return fmt.Errorf("open-meteo API error: status %d: %s", resp.StatusCode, body)
		default:
			return backoff.Permanent(fmt.Errorf("open-meteo API error: status %d: %s", resp.StatusCode, body))
		}
	}

	bo := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), c.opt.MaxRetries), ctx)
	if err := backoff.Retry(op, bo); err != nil {
		return nil, err
	}
	return raw, nil
}

// FetchDailyRange fetches the inclusive range of years, persists each raw
// payload when RawDir is set, and returns one concatenated table annotated
// with latitude, longitude, and year columns. Failed years are logged and
// skipped so one bad year does not lose the rest; duplicate dates keep the
// first occurrence.
func (c *Client) FetchDailyRange(ctx context.Context, loc Location, startYear, endYear int, dailyVars []string) (*timetable.Table, error) {
	if startYear > endYear {
		return nil, fmt.Errorf("%d-%d, %w", startYear, endYear, ErrYearOutOfSequence)
	}

	var (
		dates    []time.Time
		years    []float64
		colNames []string
		cols     map[string][]float64
	)
	seen := make(map[string]struct{})

	for year := startYear; year <= endYear; year++ {
		payload, err := c.FetchDailyYear(ctx, loc, year, dailyVars)
		c.sleep(ctx)
		if err != nil {
			c.logger.Warn().Err(err).Int("year", year).Msg("skipping year after failed fetch")
			continue
		}

		if c.opt.RawDir != "" {
			if err := c.writeRaw(year, payload.Raw); err != nil {
				c.logger.Warn().Err(err).Int("year", year).Msg("unable to persist raw payload")
			}
		}

		if cols == nil {
			colNames = payload.Variables()
			cols = make(map[string][]float64, len(colNames))
			for _, name := range colNames {
				cols[name] = nil
			}
		}

		var dupes int
		for i, d := range payload.Dates {
			key := d.Format(payloadDateLayout)
			if _, exists := seen[key]; exists {
				dupes++
				continue
			}
			seen[key] = struct{}{}
			dates = append(dates, d)
			years = append(years, float64(year))
			for _, name := range colNames {
				vals, exists := payload.Values[name]
				if !exists {
					cols[name] = append(cols[name], math.NaN())
					continue
				}
				cols[name] = append(cols[name], vals[i])
			}
		}
		if dupes > 0 {
			c.logger.Warn().Int("year", year).Int("duplicates", dupes).Msg("dropped duplicate dates; keeping first occurrence")
		}
	}

	if len(dates) == 0 {
		return nil, fmt.Errorf("years %d-%d, %w", startYear, endYear, ErrNoDailyData)
	}

	tbl, err := timetable.New(dates)
	if err != nil {
		return nil, err
	}
	for _, name := range colNames {
		if err := tbl.AddColumn(name, cols[name]); err != nil {
			return nil, err
		}
	}

	n := tbl.Len()
	lat := make([]float64, n)
	lon := make([]float64, n)
	for i := 0; i < n; i++ {
		lat[i] = loc.Lat
		lon[i] = loc.Lon
	}
	if err := tbl.AddColumn("latitude", lat); err != nil {
		return nil, err
	}
	if err := tbl.AddColumn("longitude", lon); err != nil {
		return nil, err
	}
	if err := tbl.AddColumn("year", years); err != nil {
		return nil, err
	}
	return tbl, nil
}

func (c *Client) sleep(ctx context.Context) {
	if c.opt.Pause <= 0 {
		return
	}
	select {
	case <-ctx.Done():
	case <-c.clock.After(c.opt.Pause):
	}
}

func (c *Client) writeRaw(year int, raw []byte) error {
	if err := os.MkdirAll(c.opt.RawDir, 0o755); err != nil {
		return errors.Wrapf(err, "unable to create raw dir %s", c.opt.RawDir)
	}
	path := filepath.Join(c.opt.RawDir, fmt.Sprintf("open_meteo_daily_%d.json", year))
	return errors.Wrapf(os.WriteFile(path, raw, 0o644), "unable to write %s", path)
}
