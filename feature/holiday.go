package feature

import (
	"fmt"
	"strings"
	"time"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/au"
)

// Holiday describes a 0/1 indicator column marking public holidays in a
// named region.
type Holiday struct {
	Region string `json:"region"`
}

func NewHoliday(region string) *Holiday {
	return &Holiday{region}
}

func (h Holiday) String() string {
	return fmt.Sprintf("hol_%s", h.Region)
}

func (h Holiday) Get(label string) (string, bool) {
	switch strings.ToLower(label) {
	case "region":
		return h.Region, true
	}
	return "", false
}

func (h Holiday) Type() FeatureType {
	return FeatureTypeHoliday
}

func (h Holiday) Decode() map[string]string {
	res := make(map[string]string)
	res["region"] = h.Region
	return res
}

// AustralianHolidays returns the national holiday definitions used for the
// default indicator. The source dataset is Sydney daily weather.
func AustralianHolidays() []*cal.Holiday {
	return au.HolidaysNSW
}

// Generate returns 1.0 for rows whose date is an observed holiday and 0.0
// otherwise. Dates are compared at day precision in each timestamp's
// location.
func (h Holiday) Generate(t []time.Time, hols []*cal.Holiday) []float64 {
	observed := make(map[string]struct{})
	if len(t) > 0 {
		for _, hol := range hols {
			for year := t[0].Year(); year <= t[len(t)-1].Year(); year++ {
				_, obs := hol.Calc(year)
				observed[obs.Format("2006-01-02")] = struct{}{}
			}
		}
	}

	out := make([]float64, len(t))
	for i, tPnt := range t {
		if _, ok := observed[tPnt.Format("2006-01-02")]; ok {
			out[i] = 1.0
		}
	}
	return out
}
