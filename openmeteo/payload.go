package openmeteo

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/goccy/go-json"
	"github.com/sydmet/weatherfeat/timetable"
)

var (
	ErrNoDailyBlock      = errors.New("payload contains no daily block")
	ErrDailyLenMismatch  = errors.New("daily variable has a different length than the time block")
	ErrNoDailyData       = errors.New("no daily data collected")
	ErrYearOutOfSequence = errors.New("start year is after end year")
)

const payloadDateLayout = "2006-01-02"

// DailyPayload is one parsed Open-Meteo daily response along with the raw
// bytes it was decoded from.
type DailyPayload struct {
	Latitude  float64
	Longitude float64
	Dates     []time.Time
	Values    map[string][]float64
	Raw       []byte
}

// Variables returns the daily variable names in sorted order.
func (p *DailyPayload) Variables() []string {
	names := make([]string, 0, len(p.Values))
	for name := range p.Values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Table converts the payload to a Table with one row per date and one column
// per daily variable.
func (p *DailyPayload) Table() (*timetable.Table, error) {
	if len(p.Dates) == 0 {
		return nil, ErrNoDailyBlock
	}

	tbl, err := timetable.New(p.Dates)
	if err != nil {
		return nil, err
	}
	for _, name := range p.Variables() {
		if err := tbl.AddColumn(name, p.Values[name]); err != nil {
			return nil, err
		}
	}
	return tbl, nil
}

func parseDailyPayload(raw []byte) (*DailyPayload, error) {
	var body struct {
		Latitude  float64                    `json:"latitude"`
		Longitude float64                    `json:"longitude"`
		Daily     map[string]json.RawMessage `json:"daily"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, errors.Wrap(err, "unable to decode daily payload")
	}
	if len(body.Daily) == 0 {
		return nil, ErrNoDailyBlock
	}

	timeRaw, exists := body.Daily["time"]
	if !exists {
		return nil, errors.Wrap(ErrNoDailyBlock, "daily block lacks time")
	}
	var dateStrs []string
	if err := json.Unmarshal(timeRaw, &dateStrs); err != nil {
		return nil, errors.Wrap(err, "unable to decode daily time block")
	}

	dates := make([]time.Time, 0, len(dateStrs))
	for _, s := range dateStrs {
		ts, err := time.Parse(payloadDateLayout, s)
		if err != nil {
			return nil, errors.Wrapf(err, "unable to parse daily date %q", s)
		}
		dates = append(dates, ts)
	}

	values := make(map[string][]float64, len(body.Daily)-1)
	for name, rawVals := range body.Daily {
		if name == "time" {
			continue
		}
		// null cells come back for days the API has no observation for
		var ptrs []*float64
		if err := json.Unmarshal(rawVals, &ptrs); err != nil {
			return nil, errors.Wrapf(err, "unable to decode daily variable %q", name)
		}
		if len(ptrs) != len(dates) {
			return nil, fmt.Errorf("variable %q has %d values for %d dates, %w", name, len(ptrs), len(dates), ErrDailyLenMismatch)
		}
		vals := make([]float64, len(ptrs))
		for i, v := range ptrs {
			if v == nil {
				vals[i] = math.NaN()
				continue
			}
			vals[i] = *v
		}
		values[name] = vals
	}

	return &DailyPayload{
		Latitude:  body.Latitude,
		Longitude: body.Longitude,
		Dates:     dates,
		Values:    values,
		Raw:       raw,
	}, nil
}
