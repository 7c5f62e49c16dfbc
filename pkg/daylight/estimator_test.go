package daylight

import (
	"context"
	"errors"
	"math"
	"testing"
)

func TestEstimateClampInvariant(t *testing.T) {
	for _, coeffs := range []Coefficients{CubicCoefficients, LinearCoefficients} {
		e := NewEstimator(coeffs)
		for lat := -90.0; lat <= 90.0; lat += 2.5 {
			for day := -400; day <= 800; day += 7 {
				hours, err := e.Estimate(day, lat)
				if err != nil {
					t.Fatalf("Estimate(%d, %.1f) unexpected error: %v", day, lat, err)
				}
				if math.IsNaN(hours) || hours < 0 || hours > 24 {
					t.Fatalf("Estimate(%d, %.1f) = %v, want value in [0,24]", day, lat, hours)
				}
			}
		}
	}
}

func TestEstimateSpringEquinox(t *testing.T) {
	e := NewEstimator(CubicCoefficients)

	// Beyond the polar circles the southern cubic's amplitude grows large
	// enough that the small southern phase offset exceeds the tolerance.
	for lat := -66.5; lat <= 90.0; lat += 0.5 {
		hours, err := e.Estimate(NorthernEquinoxPhase, lat)
		if err != nil {
			t.Fatalf("Estimate(79, %.1f) unexpected error: %v", lat, err)
		}
		if math.Abs(hours-12) > 0.5 {
			t.Errorf("Estimate(79, %.1f) = %.3f hours, want 12 ± 0.5", lat, hours)
		}
	}
}

func TestEstimatePeriodic(t *testing.T) {
	e := NewEstimator(CubicCoefficients)

	for _, lat := range []float64{-90, -60, -45.5, -10, 0, 12.3, 45, 70, 90} {
		for day := 0; day < DaysPerYear; day++ {
			a, _ := e.Estimate(day, lat)
			b, _ := e.Estimate(day+DaysPerYear, lat)
			c, _ := e.Estimate(day-DaysPerYear, lat)
			if math.Abs(a-b) > 1e-9 || math.Abs(a-c) > 1e-9 {
				t.Fatalf("lat %.1f day %d: %v, %v, %v not periodic", lat, day, a, b, c)
			}
		}
	}
}

func TestEstimateHemispherePhaseShift(t *testing.T) {
	e := NewEstimator(CubicCoefficients)
	shift := SouthernEquinoxPhase - NorthernEquinoxPhase

	for lat := 0.0; lat <= 50; lat += 5 {
		worst := 0.0
		for day := 0; day < DaysPerYear; day++ {
			north, _ := e.Estimate(day, lat)
			south, _ := e.Estimate(day+shift, -lat)
			worst = math.Max(worst, math.Abs(north-south))
		}
		if worst > 0.35 {
			t.Errorf("lat ±%.0f: northern and shifted southern curves differ by up to %.3f hours", lat, worst)
		}
	}
}

func TestEstimateSolstices(t *testing.T) {
	e := NewEstimator(CubicCoefficients)

	tests := []struct {
		name     string
		day      int
		lat      float64
		minHours float64
		maxHours float64
	}{
		{"45N summer", 172, 45, 15.0, 15.8},
		{"45N winter", 355, 45, 8.2, 9.0},
		{"45S summer", 355, -45, 15.0, 15.8},
		{"45S winter", 172, -45, 8.2, 9.0},
		{"equator", 172, 0, 11.8, 12.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hours, err := e.Estimate(tt.day, tt.lat)
			if err != nil {
				t.Fatalf("Estimate() error = %v", err)
			}
			if hours < tt.minHours || hours > tt.maxHours {
				t.Errorf("Estimate(%d, %.1f) = %.2f hours, want between %.2f and %.2f",
					tt.day, tt.lat, hours, tt.minHours, tt.maxHours)
			}
		})
	}
}

func TestEstimateInvalidLatitude(t *testing.T) {
	e := NewEstimator(CubicCoefficients)

	for _, lat := range []float64{-90.0001, 91, 180, math.NaN(), math.Inf(1)} {
		if _, err := e.Estimate(0, lat); !errors.Is(err, ErrInvalidLatitude) {
			t.Errorf("Estimate(0, %v) error = %v, want ErrInvalidLatitude", lat, err)
		}
		if _, err := EstimateAdvanced(0, lat, DefaultAxialTilt); !errors.Is(err, ErrInvalidLatitude) {
			t.Errorf("EstimateAdvanced(0, %v) error = %v, want ErrInvalidLatitude", lat, err)
		}
	}
}

func TestAmplitudeUsesAbsoluteSouthernLatitude(t *testing.T) {
	e := NewEstimator(CubicCoefficients)

	got := e.Amplitude(-45)
	want := CubicCoefficients.Southern.Eval(45)
	if got != want {
		t.Errorf("Amplitude(-45) = %v, want %v", got, want)
	}
	if got <= 0 {
		t.Errorf("Amplitude(-45) = %v, want positive", got)
	}
}

func TestYearSequence(t *testing.T) {
	e := NewEstimator(CubicCoefficients)

	seq, err := e.Year(45)
	if err != nil {
		t.Fatalf("Year() error = %v", err)
	}

	// Ranging twice must produce the same values.
	var first, second []float64
	for day, hours := range seq {
		if day != len(first) {
			t.Fatalf("day %d out of order", day)
		}
		first = append(first, hours)
	}
	for _, hours := range seq {
		second = append(second, hours)
	}

	if len(first) != DaysPerYear || len(second) != DaysPerYear {
		t.Fatalf("got %d and %d values, want %d", len(first), len(second), DaysPerYear)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("day %d differs between iterations: %v vs %v", i, first[i], second[i])
		}
	}

	// Early break stops the sequence.
	count := 0
	for range seq {
		count++
		if count == 10 {
			break
		}
	}
	if count != 10 {
		t.Errorf("early break consumed %d values", count)
	}

	if _, err := e.Year(100); !errors.Is(err, ErrInvalidLatitude) {
		t.Errorf("Year(100) error = %v, want ErrInvalidLatitude", err)
	}
}

func TestYearValuesMatchesSequence(t *testing.T) {
	e := NewEstimator(CubicCoefficients)

	for _, lat := range []float64{-60, -12.5, 0, 33.4, 89} {
		values, err := e.YearValues(context.Background(), lat)
		if err != nil {
			t.Fatalf("YearValues(%v) error = %v", lat, err)
		}
		seq, _ := e.Year(lat)
		for day, hours := range seq {
			if values[day] != hours {
				t.Fatalf("lat %v day %d: parallel %v, sequential %v", lat, day, values[day], hours)
			}
		}
	}
}

func TestYearValuesCancelled(t *testing.T) {
	e := NewEstimator(CubicCoefficients)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := e.YearValues(ctx, 45); !errors.Is(err, context.Canceled) {
		t.Errorf("YearValues() error = %v, want context.Canceled", err)
	}
}
