// Package format renders financial values for people: prices, market caps, percentages,
// volumes and dates.
package format

import (
	"math"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
)

// Currency renders v as US dollars with thousands separators and two decimals.
func Currency(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "N/A"
	}
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return sign + "$" + humanize.FormatFloat("#,###.##", v)
}

var scales = []struct {
	limit  float64
	suffix string
}{
	{1e12, "T"},
	{1e9, "B"},
	{1e6, "M"},
	{1e3, "K"},
}

// LargeNumber abbreviates v with a K, M, B or T suffix and two decimals.
// Values below one thousand keep two decimals and no suffix.
func LargeNumber(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "N/A"
	}
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	for _, s := range scales {
		if v >= s.limit {
			return sign + strconv.FormatFloat(v/s.limit, 'f', 2, 64) + s.suffix
		}
	}
	return sign + strconv.FormatFloat(v, 'f', 2, 64)
}

// Percentage renders v, already expressed in percent, with two decimals.
func Percentage(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "N/A"
	}
	return strconv.FormatFloat(v, 'f', 2, 64) + "%"
}

// Volume renders a share count with thousands separators.
func Volume(v int64) string {
	return humanize.Comma(v)
}

// Date turns an FMP date (YYYY-MM-DD, optionally followed by a time) into "Jan 2, 2006".
// Input that does not parse is returned unchanged.
func Date(s string) string {
	if len(s) < len(time.DateOnly) {
		return s
	}
	t, err := time.Parse(time.DateOnly, s[:len(time.DateOnly)])
	if err != nil {
		return s
	}
	return t.Format("Jan 2, 2006")
}
