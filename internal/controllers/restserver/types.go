package restserver

import (
	"github.com/chrissnell/daylight/pkg/daylight"
)

// DaylightResponse is returned by GET /daylight.
type DaylightResponse struct {
	Latitude   float64 `json:"latitude"`
	Hemisphere string  `json:"hemisphere"`
	DayOfYear  int     `json:"day_of_year"`
	Date       string  `json:"date"`
	Model      string  `json:"model"`
	Hours      float64 `json:"hours"`
	Formatted  string  `json:"formatted"`
	Amplitude  float64 `json:"amplitude,omitempty"`

	// Present when the request carries lon.
	Sun *SunTimes `json:"sun,omitempty"`
}

// SunTimes are clock times for the requested position and day.
type SunTimes struct {
	Longitude  float64 `json:"longitude"`
	TimeZone   string  `json:"time_zone"`
	Sunrise    string  `json:"sunrise,omitempty"`
	Sunset     string  `json:"sunset,omitempty"`
	PolarDay   bool    `json:"polar_day,omitempty"`
	PolarNight bool    `json:"polar_night,omitempty"`
	DayLength  float64 `json:"day_length"`
}

// YearResponse is returned by GET /daylight/year.
type YearResponse struct {
	Latitude   float64              `json:"latitude"`
	Hemisphere string               `json:"hemisphere"`
	Model      string               `json:"model"`
	Hours      []float64            `json:"hours"`
	Summary    daylight.YearSummary `json:"summary"`
	KeyDates   []KeyDateValue       `json:"key_dates"`
}

// KeyDateValue annotates a series with the model's value on a key date.
type KeyDateValue struct {
	Day   int     `json:"day"`
	Label string  `json:"label"`
	Hours float64 `json:"hours"`
}

// CoefficientsResponse is returned by GET /coefficients.
type CoefficientsResponse struct {
	Degree    int       `json:"degree"`
	AxialTilt float64   `json:"axial_tilt"`
	Northern  []float64 `json:"northern"`
	Southern  []float64 `json:"southern"`
	NorthernK string    `json:"northern_k"`
	SouthernK string    `json:"southern_k"`
}

// SeasonsResponse is returned by GET /seasons.
type SeasonsResponse struct {
	Year     int                `json:"year"`
	KeyDates []daylight.KeyDate `json:"key_dates"`
}
