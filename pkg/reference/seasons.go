package reference

import (
	"fmt"

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/solstice"

	"github.com/chrissnell/daylight/pkg/daylight"
)

// Seasons returns the equinoxes and solstices of year as key dates on the
// model's non-leap calendar, computed from the Meeus solstice series.
func Seasons(year int) []daylight.KeyDate {
	events := []struct {
		jde  float64
		name string
	}{
		{solstice.March(year), "Spring Equinox"},
		{solstice.June(year), "Summer Solstice"},
		{solstice.September(year), "Autumn Equinox"},
		{solstice.December(year), "Winter Solstice"},
	}

	out := make([]daylight.KeyDate, 0, len(events))
	for _, e := range events {
		t := julian.JDToTime(e.jde).UTC()
		out = append(out, daylight.KeyDate{
			Day:   daylight.DayOfYearFromTime(t),
			Label: fmt.Sprintf("%s (%s)", t.Format("Jan 2 15:04 MST"), e.name),
		})
	}
	return out
}
