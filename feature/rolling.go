package feature

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// Stat selects the statistic computed over a trailing window.
type Stat string

const (
	StatMean Stat = "mean"
	StatStd  Stat = "std"
	StatMin  Stat = "min"
	StatMax  Stat = "max"
	StatSum  Stat = "sum"
)

func (s Stat) Valid() bool {
	switch s {
	case StatMean, StatStd, StatMin, StatMax, StatSum:
		return true
	}
	return false
}

// Rolling describes a trailing-window statistic over a source column.
type Rolling struct {
	Name   string `json:"name"`
	Window int    `json:"window"`
	Stat   Stat   `json:"stat"`
}

func NewRolling(name string, window int, stat Stat) *Rolling {
	return &Rolling{name, window, stat}
}

func (r Rolling) String() string {
	return fmt.Sprintf("roll_%s_%02d_%s", r.Name, r.Window, r.Stat)
}

func (r Rolling) Get(label string) (string, bool) {
	switch strings.ToLower(label) {
	case "name":
		return r.Name, true
	case "window":
		return strconv.Itoa(r.Window), true
	case "stat":
		return string(r.Stat), true
	}
	return "", false
}

func (r Rolling) Type() FeatureType {
	return FeatureTypeRolling
}

func (r Rolling) Decode() map[string]string {
	res := make(map[string]string)
	res["name"] = r.Name
	res["window"] = strconv.Itoa(r.Window)
	res["stat"] = string(r.Stat)
	return res
}

func (r *Rolling) UnmarshalJSON(data []byte) error {
	var labelStr struct {
		Name   string `json:"name"`
		Window string `json:"window"`
		Stat   Stat   `json:"stat"`
	}
	err := json.Unmarshal(data, &labelStr)
	if err != nil {
		return err
	}
	r.Name = labelStr.Name
	r.Stat = labelStr.Stat
	r.Window, err = strconv.Atoi(labelStr.Window)
	if err != nil {
		return err
	}
	return nil
}
