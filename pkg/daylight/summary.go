package daylight

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Extreme is a day and its daylight hours.
type Extreme struct {
	Day   int     `json:"day"`
	Hours float64 `json:"hours"`
}

// YearSummary describes a 365-day series.
type YearSummary struct {
	Shortest Extreme `json:"shortest"`
	Longest  Extreme `json:"longest"`
	Mean     float64 `json:"mean"`
	Range    float64 `json:"range"`
}

// Summarize returns the extremes and mean of values, indexed by day. Ties
// resolve to the earliest day. An empty series yields the zero summary.
func Summarize(values []float64) YearSummary {
	if len(values) == 0 {
		return YearSummary{}
	}

	lo := floats.MinIdx(values)
	hi := floats.MaxIdx(values)

	return YearSummary{
		Shortest: Extreme{Day: lo, Hours: values[lo]},
		Longest:  Extreme{Day: hi, Hours: values[hi]},
		Mean:     stat.Mean(values, nil),
		Range:    values[hi] - values[lo],
	}
}
