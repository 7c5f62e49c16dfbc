package reference

import (
	"math"
	"time"

	"github.com/nathan-osman/go-sunrise"
	"github.com/sixdouglas/suncalc"
	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/solar"
	"github.com/soniakeys/unit"

	"github.com/chrissnell/daylight/pkg/daylight"
)

// solarH0 is the altitude of the Sun's center at apparent sunrise and
// sunset: 34' of refraction plus 16' of semidiameter.
var solarH0 = unit.AngleFromMin(-50)

// noonOf returns 12:00 UTC on the 0-based non-leap day of year.
func noonOf(year, dayOfYear int) time.Time {
	d := ((dayOfYear % daylight.DaysPerYear) + daylight.DaysPerYear) % daylight.DaysPerYear
	if isLeap(year) && d >= 59 {
		d++
	}
	return time.Date(year, time.January, 1, 12, 0, 0, 0, time.UTC).AddDate(0, 0, d)
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// Astronomical returns the day length at lat on dayOfYear of year using the
// Sun's apparent declination at noon UTC and the standard solar altitude of
// -50'. Polar day and polar night saturate at 24 and 0 hours.
func Astronomical(dayOfYear int, lat float64, year int) (float64, error) {
	if err := daylight.ValidateLatitude(lat); err != nil {
		return 0, err
	}

	jde := julian.TimeToJD(noonOf(year, dayOfYear))
	_, dec := solar.ApparentEquatorial(jde)

	phi := unit.AngleFromDeg(lat)
	cosH0 := (solarH0.Sin() - phi.Sin()*dec.Sin()) / (phi.Cos() * dec.Cos())

	switch {
	case cosH0 <= -1:
		return daylight.MaxHours, nil
	case cosH0 >= 1:
		return 0, nil
	}

	// Hour angle in degrees, 15 degrees per hour, twice for rise to set.
	h0 := math.Acos(cosH0) * 180 / math.Pi
	return daylight.ClampHours(2 * h0 / 15), nil
}

// SunCalc returns the sunrise-to-sunset duration reported by suncalc at
// lat/lon on dayOfYear of year. ok is false when suncalc has no sunrise or
// sunset that day (polar day or night).
func SunCalc(dayOfYear int, lat, lon float64, year int) (hours float64, ok bool, err error) {
	if err := daylight.ValidateLatitude(lat); err != nil {
		return 0, false, err
	}

	times := suncalc.GetTimes(noonOf(year, dayOfYear), lat, lon)
	sunrise := times["sunrise"].Value
	sunset := times["sunset"].Value

	if sunrise.IsZero() || sunset.IsZero() {
		return 0, false, nil
	}

	d := sunset.Sub(sunrise).Hours()
	if math.IsNaN(d) || d <= 0 || d >= daylight.MaxHours {
		return 0, false, nil
	}
	return d, true, nil
}

// GoSunrise is SunCalc's counterpart backed by go-sunrise, which uses the
// NOAA equations. ok is false on days without both a sunrise and a sunset.
func GoSunrise(dayOfYear int, lat, lon float64, year int) (hours float64, ok bool, err error) {
	if err := daylight.ValidateLatitude(lat); err != nil {
		return 0, false, err
	}

	date := noonOf(year, dayOfYear)
	rise, set := sunrise.SunriseSunset(lat, lon, date.Year(), date.Month(), date.Day())
	if rise.IsZero() || set.IsZero() {
		return 0, false, nil
	}

	d := set.Sub(rise).Hours()
	if d <= 0 || d >= daylight.MaxHours {
		return 0, false, nil
	}
	return d, true, nil
}
