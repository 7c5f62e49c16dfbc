// Package solar converts a day of the year and a position into sunrise and
// sunset clock times.
package solar

import (
	"math"
	"time"

	"github.com/chrissnell/daylight/pkg/daylight"
)

// Times holds sunrise and sunset as minutes after midnight UTC. Both are -1
// during polar day or polar night.
type Times struct {
	Date       time.Time // noon UTC on the requested day
	Sunrise    int
	Sunset     int
	PolarDay   bool
	PolarNight bool

	length float64
}

// SunriseSunset computes sunrise and sunset on the 0-based non-leap
// dayOfYear of year at lat/lon, using an approximate solar declination and
// the equation of time. The sun is taken to rise when its center crosses the
// geometric horizon.
func SunriseSunset(dayOfYear, year int, lat, lon float64) (Times, error) {
	if err := daylight.ValidateLatitude(lat); err != nil {
		return Times{Sunrise: -1, Sunset: -1}, err
	}

	month, day := daylight.DateOf(dayOfYear)
	t := Times{
		Date:    time.Date(year, time.Month(month), day, 12, 0, 0, 0, time.UTC),
		Sunrise: -1,
		Sunset:  -1,
	}

	dec := declination(float64(t.Date.YearDay()))

	// cos(H) = -tan(lat) * tan(declination)
	cosH := -math.Tan(degToRad(lat)) * math.Tan(dec)
	switch {
	case cosH < -1:
		t.PolarDay = true
		t.length = daylight.MaxHours
		return t, nil
	case cosH > 1:
		t.PolarNight = true
		return t, nil
	}

	hourAngleHours := radToDeg(math.Acos(cosH)) / 15.0 // 15 degrees per hour
	t.length = 2 * hourAngleHours

	// Solar noon in UTC minutes: 720 adjusted by 4 minutes per degree of
	// longitude and by the equation of time.
	solarNoonUTC := 720.0 - lon*4.0 - equationOfTime(t.Date)
	hourAngleMinutes := hourAngleHours * 60.0

	t.Sunrise = int(math.Round(math.Mod(solarNoonUTC-hourAngleMinutes+1440, 1440)))
	t.Sunset = int(math.Round(math.Mod(solarNoonUTC+hourAngleMinutes+1440, 1440)))
	return t, nil
}

// DayLength returns the hours between sunrise and sunset: 24 during polar
// day and 0 during polar night.
func (t Times) DayLength() float64 {
	return t.length
}

// SunriseIn formats the sunrise in loc, or "" when there is none.
func (t Times) SunriseIn(loc *time.Location) string {
	return t.format(t.Sunrise, loc)
}

// SunsetIn formats the sunset in loc, or "" when there is none.
func (t Times) SunsetIn(loc *time.Location) string {
	return t.format(t.Sunset, loc)
}

func (t Times) format(utcMinutes int, loc *time.Location) string {
	if utcMinutes < 0 {
		return ""
	}
	midnight := time.Date(t.Date.Year(), t.Date.Month(), t.Date.Day(), 0, 0, 0, 0, time.UTC)
	return midnight.Add(time.Duration(utcMinutes) * time.Minute).In(loc).Format("3:04 PM")
}

// declination approximates the solar declination in radians for the 1-based
// day of year n.
func declination(n float64) float64 {
	inner := degToRad(356.6 + 0.9856*n)
	outer := degToRad(278.97 + 0.9856*n + 1.9165*math.Sin(inner))
	return math.Asin(0.39785 * math.Sin(outer))
}
