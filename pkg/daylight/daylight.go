// Package daylight estimates the number of daylight hours for a day of the
// year and a latitude. Two models are provided: an empirical sinusoid whose
// amplitude is a polynomial in latitude fitted from observed sunrise/sunset
// times (see package calibrate), and a geometric model built from the
// Earth's axial tilt that serves as a comparison baseline.
//
// Accuracy is typically within half an hour at mid latitudes. Neither model
// accounts for refraction, elevation or orbital eccentricity, and the fitted
// model degrades sharply toward the poles.
package daylight

import (
	"errors"
	"fmt"
	"math"
)

const (
	// DaysPerYear is the period of both models.
	DaysPerYear = 365

	// NorthernEquinoxPhase is the 0-based day of the March equinox.
	NorthernEquinoxPhase = 79

	// SouthernEquinoxPhase is the 0-based day of the September equinox.
	SouthernEquinoxPhase = 264

	// ReferenceDay is the day the published observation tables were taken
	// on (January 19th).
	ReferenceDay = 18

	// DefaultAxialTilt is the obliquity of the ecliptic in degrees.
	DefaultAxialTilt = 23.44

	// MaxHours is the upper clamp for any daylight estimate.
	MaxHours = 24.0
)

var (
	// ErrInvalidLatitude is returned for latitudes outside [-90,90] or NaN.
	ErrInvalidLatitude = errors.New("latitude must be between -90 and 90")

	// ErrInvalidCalendarDate is returned when a month/day pair does not
	// exist in a non-leap year.
	ErrInvalidCalendarDate = errors.New("invalid calendar date")

	// ErrMalformedTime is returned when a clock time is not HH:MM.
	ErrMalformedTime = errors.New("malformed time of day")

	// ErrDivisionByZero is returned when a phase factor vanishes.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrUnknownPreset is returned for a polynomial degree without
	// published coefficients.
	ErrUnknownPreset = errors.New("no preset coefficients for degree")
)

// Hemisphere selects the polynomial and equinox phase used for a latitude.
type Hemisphere int

const (
	Northern Hemisphere = iota
	Southern
)

// HemisphereOf returns Northern for lat >= 0 and Southern otherwise.
func HemisphereOf(lat float64) Hemisphere {
	if lat >= 0 {
		return Northern
	}
	return Southern
}

// Phase returns the day of the equinox the hemisphere's sinusoid is
// anchored at.
func (h Hemisphere) Phase() int {
	if h == Southern {
		return SouthernEquinoxPhase
	}
	return NorthernEquinoxPhase
}

func (h Hemisphere) String() string {
	switch h {
	case Northern:
		return "Northern Hemisphere"
	case Southern:
		return "Southern Hemisphere"
	default:
		return fmt.Sprintf("Hemisphere(%d)", int(h))
	}
}

// ValidateLatitude returns ErrInvalidLatitude unless lat is within [-90,90].
func ValidateLatitude(lat float64) error {
	if math.IsNaN(lat) || lat < -90 || lat > 90 {
		return fmt.Errorf("%w: got %v", ErrInvalidLatitude, lat)
	}
	return nil
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampHours restricts v to [0,24].
func ClampHours(v float64) float64 {
	return Clamp(v, 0, MaxHours)
}

// angularDay converts a day offset to radians on the yearly cycle.
func angularDay(days int) float64 {
	return 2 * math.Pi / DaysPerYear * float64(days)
}

func degToRad(deg float64) float64 { return deg * math.Pi / 180.0 }
