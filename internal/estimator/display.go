package estimator

import (
	"math"
	"strconv"
)

const (
	minute  = 60.0
	hour    = minute * 60
	day     = hour * 24
	month   = day * 31
	year    = month * 12
	century = year * 100
)

// DisplayTime renders a duration in seconds using coarse buckets,
// for example "less than a second", "1 minute", "3 hours" or "centuries".
func DisplayTime(seconds float64) string {
	var unit string
	var base float64
	switch {
	case seconds < 1:
		return "less than a second"
	case seconds < minute:
		unit, base = "second", seconds
	case seconds < hour:
		unit, base = "minute", seconds/minute
	case seconds < day:
		unit, base = "hour", seconds/hour
	case seconds < month:
		unit, base = "day", seconds/day
	case seconds < year:
		unit, base = "month", seconds/month
	case seconds < century:
		unit, base = "year", seconds/year
	default:
		return "centuries"
	}

	n := int64(math.RoundToEven(base))
	s := strconv.FormatInt(n, 10) + " " + unit
	if n != 1 {
		s += "s"
	}
	return s
}
