// Package calibrate fits the latitude polynomials used by the daylight
// estimator from observed sunrise and sunset times.
//
// Each observation yields an empirical amplitude
//
//	K = (daylight - 12) / sin(2π/365 * (referenceDay - phase))
//
// and a least-squares polynomial is fitted through the (latitude, K) pairs,
// one per hemisphere. Southern observations are fitted against |latitude|.
package calibrate

import (
	"fmt"

	"github.com/chrissnell/daylight/pkg/daylight"
)

// Observation is a recorded sunrise and sunset for one location on the
// reference day. Times are local clock times in HH:MM.
type Observation struct {
	Name     string  `yaml:"name,omitempty"`
	Latitude float64 `yaml:"latitude"`
	Sunrise  string  `yaml:"sunrise"`
	Sunset   string  `yaml:"sunset"`
}

// NorthernObservations were recorded on January 19th.
var NorthernObservations = []Observation{
	{Name: "Vancouver", Latitude: 49.267, Sunrise: "07:59", Sunset: "16:48"},
	{Name: "Mexico City", Latitude: 19.4, Sunrise: "07:13", Sunset: "18:22"},
	{Name: "Stockholm", Latitude: 59.333, Sunrise: "08:24", Sunset: "15:33"},
	{Name: "Reykjavik", Latitude: 64.183, Sunrise: "08:24", Sunset: "15:33"},
	{Name: "Lagos", Latitude: 6.442, Sunrise: "07:03", Sunset: "18:51"},
	{Name: "Bangkok", Latitude: 13.725, Sunrise: "06:46", Sunset: "18:12"},
}

// SouthernObservations were recorded on January 19th.
var SouthernObservations = []Observation{
	{Name: "Adelaide", Latitude: -34.925, Sunrise: "06:21", Sunset: "20:31"},
	{Name: "Sydney", Latitude: -33.87, Sunrise: "06:03", Sunset: "20:08"},
	{Name: "Manaus", Latitude: -3.107, Sunrise: "06:03", Sunset: "18:19"},
	{Name: "Auckland", Latitude: -36.847, Sunrise: "06:22", Sunset: "20:41"},
	{Name: "Lima", Latitude: -12.092, Sunrise: "05:57", Sunset: "18:41"},
	{Name: "Rio de Janeiro", Latitude: -22.9, Sunrise: "06:24", Sunset: "19:43"},
	{Name: "Nuku'alofa", Latitude: -21.133, Sunrise: "06:15", Sunset: "19:28"},
}

// DaylightSample returns sunset minus sunrise in hours. The result must lie
// strictly between 0 and 24.
func DaylightSample(obs Observation) (float64, error) {
	rise, err := daylight.ParseClock(obs.Sunrise)
	if err != nil {
		return 0, fmt.Errorf("observation %s sunrise: %w", obs.label(), err)
	}
	set, err := daylight.ParseClock(obs.Sunset)
	if err != nil {
		return 0, fmt.Errorf("observation %s sunset: %w", obs.label(), err)
	}

	d := set - rise
	if d <= 0 || d >= 24 {
		return 0, fmt.Errorf("observation %s: %w: sunset %s is not after sunrise %s",
			obs.label(), daylight.ErrMalformedTime, obs.Sunset, obs.Sunrise)
	}
	return d, nil
}

func (o Observation) label() string {
	if o.Name != "" {
		return fmt.Sprintf("%q (%.3f)", o.Name, o.Latitude)
	}
	return fmt.Sprintf("at %.3f", o.Latitude)
}
