package interactive

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chrissnell/daylight/pkg/daylight"
)

const chartWidth = 48

// WriteSummary prints the extremes of a year series and its value on each
// key date.
func WriteSummary(w io.Writer, values []float64, keyDates []daylight.KeyDate) {
	s := daylight.Summarize(values)

	fmt.Fprintf(w, "Shortest day: %s (t=%d), %.2f hours\n",
		daylight.FormatDay(s.Shortest.Day), s.Shortest.Day+1, s.Shortest.Hours)
	fmt.Fprintf(w, "Longest day:  %s (t=%d), %.2f hours\n",
		daylight.FormatDay(s.Longest.Day), s.Longest.Day+1, s.Longest.Hours)
	fmt.Fprintf(w, "Annual mean:  %.2f hours, range %.2f hours\n", s.Mean, s.Range)

	if len(keyDates) > 0 {
		fmt.Fprintln(w)
	}
	for _, kd := range keyDates {
		if kd.Day < 0 || kd.Day >= len(values) {
			continue
		}
		fmt.Fprintf(w, "  %-40s %5.2f hours\n", kd.Label, values[kd.Day])
	}
}

// WriteChart draws one bar per month, sampled on the 15th, scaled so that
// 24 hours fills the chart width.
func WriteChart(w io.Writer, values []float64) {
	for month := 1; month <= 12; month++ {
		t, _ := daylight.DayOfYear(month, 15)
		if t >= len(values) {
			break
		}
		v := values[t]
		n := int(v/daylight.MaxHours*chartWidth + 0.5)
		fmt.Fprintf(w, "%s |%-*s| %5.2f\n", daylight.FormatDay(t)[:3], chartWidth, strings.Repeat("#", n), v)
	}
}

// WriteYearCSV writes day, date, fitted and geometric hours for every day of
// the year at lat.
func WriteYearCSV(w io.Writer, est *daylight.Estimator, lat, axialTiltDeg float64) error {
	fitted, err := est.Year(lat)
	if err != nil {
		return err
	}
	advanced, err := daylight.AdvancedYear(lat, axialTiltDeg)
	if err != nil {
		return err
	}

	adv := make([]float64, 0, daylight.DaysPerYear)
	for _, v := range advanced {
		adv = append(adv, v)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"day", "date", "latitude", "fitted_hours", "advanced_hours"}); err != nil {
		return err
	}

	latStr := strconv.FormatFloat(lat, 'f', -1, 64)
	for day, hours := range fitted {
		rec := []string{
			strconv.Itoa(day),
			daylight.FormatDay(day),
			latStr,
			strconv.FormatFloat(hours, 'f', 4, 64),
			strconv.FormatFloat(adv[day], 'f', 4, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
