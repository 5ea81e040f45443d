// Package dataset reads and writes the processed weather tables consumed by
// the feature generators. A single synchronous file read, no caching and no
// retries; malformed inputs surface immediately as DataFormatError so data
// quality problems are visible in the calling notebook.
package dataset

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog/log"
	"github.com/sydmet/weatherfeat/timetable"
)

const (
	// DefaultDateColumn is the timestamp column written by the fetch step.
	DefaultDateColumn = "date"

	dateLayout = "2006-01-02"
)

type LoadOptions struct {
	// DateColumn is the required timestamp column.
	DateColumn string
	// Columns restricts which numeric columns are loaded. Empty loads all
	// non-date columns.
	Columns []string
}

func NewDefaultLoadOptions() *LoadOptions {
	return &LoadOptions{
		DateColumn: DefaultDateColumn,
	}
}

// LoadCSV reads a processed daily weather file into a Table. The date column
// must parse as YYYY-MM-DD or RFC3339 and be strictly increasing. Empty
// numeric cells load as NaN.
func LoadCSV(path string, opt *LoadOptions) (*timetable.Table, error) {
	if opt == nil {
		opt = NewDefaultLoadOptions()
	}
	dateCol := opt.DateColumn
	if dateCol == "" {
		dateCol = DefaultDateColumn
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open %s", path)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read %s", path)
	}
	if len(records) == 0 {
		return nil, NewDataFormatError(path, "", "empty file")
	}

	header := records[0]
	colIdx := make(map[string]int, len(header))
	for i, name := range header {
		colIdx[name] = i
	}

	dateIdx, exists := colIdx[dateCol]
	if !exists {
		return nil, NewDataFormatError(path, dateCol, "missing timestamp column")
	}

	keep := opt.Columns
	if len(keep) == 0 {
		for _, name := range header {
			if name != dateCol {
				keep = append(keep, name)
			}
		}
	} else {
		for _, name := range keep {
			if _, exists := colIdx[name]; !exists {
				return nil, NewDataFormatError(path, name, "missing required column")
			}
		}
	}

	rows := records[1:]
	t := make([]time.Time, 0, len(rows))
	for i, rec := range rows {
		ts, err := parseDate(rec[dateIdx])
		if err != nil {
			return nil, NewDataFormatError(path, dateCol, fmt.Sprintf("unparsable timestamp %q at row %d", rec[dateIdx], i+1))
		}
		t = append(t, ts)
	}

	tbl, err := timetable.New(t)
	if err != nil {
		return nil, NewDataFormatError(path, dateCol, err.Error())
	}

	for _, name := range keep {
		idx := colIdx[name]
		vals := make([]float64, 0, len(rows))
		for i, rec := range rows {
			cell := rec[idx]
			if cell == "" {
				vals = append(vals, math.NaN())
				continue
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, NewDataFormatError(path, name, fmt.Sprintf("non-numeric value %q at row %d", cell, i+1))
			}
			vals = append(vals, v)
		}
		if err := tbl.AddColumn(name, vals); err != nil {
			return nil, NewDataFormatError(path, name, err.Error())
		}
	}

	log.Debug().Str("path", path).Int("rows", tbl.Len()).Int("columns", len(keep)).Msg("loaded csv")
	return tbl, nil
}

func parseDate(s string) (time.Time, error) {
	if ts, err := time.Parse(dateLayout, s); err == nil {
		return ts, nil
	}
	return time.Parse(time.RFC3339, s)
}

// SaveCSV persists a table as CSV with the timestamp in the date column. A
// nil or empty table is skipped with a warning rather than written, matching
// the fetch step which may legitimately produce nothing.
func SaveCSV(tbl *timetable.Table, path string) error {
	if tbl == nil || tbl.Len() == 0 {
		log.Warn().Str("path", path).Msg("table is empty; skipping save")
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "unable to create %s", path)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	names := tbl.Columns()
	header := append([]string{DefaultDateColumn}, names...)
	if err := w.Write(header); err != nil {
		return errors.Wrapf(err, "unable to write header to %s", path)
	}

	cols := make([][]float64, 0, len(names))
	for _, name := range names {
		vals, err := tbl.Column(name)
		if err != nil {
			return err
		}
		cols = append(cols, vals)
	}

	t := tbl.Times()
	rec := make([]string, len(header))
	for i := 0; i < tbl.Len(); i++ {
		rec[0] = t[i].Format(dateLayout)
		for j, vals := range cols {
			if math.IsNaN(vals[i]) {
				rec[j+1] = ""
				continue
			}
			rec[j+1] = strconv.FormatFloat(vals[i], 'f', -1, 64)
		}
		if err := w.Write(rec); err != nil {
			return errors.Wrapf(err, "unable to write row %d to %s", i, path)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return errors.Wrapf(err, "unable to flush %s", path)
	}

	log.Info().Str("path", path).Int("rows", tbl.Len()).Msg("saved csv")
	return nil
}
