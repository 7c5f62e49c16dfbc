package daylight

import (
	"math"
	"testing"
)

func TestEstimateAdvancedPoles(t *testing.T) {
	for _, lat := range []float64{90, -90, 89.999, -89.999} {
		for day := 0; day < DaysPerYear; day++ {
			hours, err := EstimateAdvanced(day, lat, DefaultAxialTilt)
			if err != nil {
				t.Fatalf("EstimateAdvanced(%d, %v) error = %v", day, lat, err)
			}
			if math.IsNaN(hours) || hours < 0 || hours > 24 {
				t.Fatalf("EstimateAdvanced(%d, %v) = %v, want value in [0,24]", day, lat, hours)
			}
		}
	}

	tests := []struct {
		name string
		day  int
		lat  float64
		want float64
	}{
		{"north pole midsummer", 172, 90, 24},
		{"north pole midwinter", 355, 90, 0},
		{"south pole midsummer", 355, -90, 24},
		{"south pole midwinter", 172, -90, 0},
		{"north pole equinox", 79, 90, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := EstimateAdvanced(tt.day, tt.lat, DefaultAxialTilt)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("EstimateAdvanced(%d, %v) = %v, want %v", tt.day, tt.lat, got, tt.want)
			}
		})
	}
}

func TestEstimateAdvancedEquator(t *testing.T) {
	for day := 0; day < DaysPerYear; day++ {
		hours, _ := EstimateAdvanced(day, 0, DefaultAxialTilt)
		if math.Abs(hours-12) > 1e-9 {
			t.Fatalf("EstimateAdvanced(%d, 0) = %v, want 12", day, hours)
		}
	}
}

func TestEstimateAdvancedZeroTilt(t *testing.T) {
	for _, lat := range []float64{-60, 30, 80} {
		hours, _ := EstimateAdvanced(172, lat, 0)
		if math.Abs(hours-12) > 1e-9 {
			t.Errorf("EstimateAdvanced(172, %v, 0) = %v, want 12 without tilt", lat, hours)
		}
	}
}

func TestAdvancedVersusFitted(t *testing.T) {
	e := NewEstimator(CubicCoefficients)

	// Recorded daylight at 45°N on day 180.
	const recorded = 15.6

	fitted, _ := e.Estimate(180, 45)
	advanced, _ := EstimateAdvanced(180, 45, DefaultAxialTilt)

	if math.Abs(fitted-advanced) > 1 {
		t.Errorf("45N day 180: fitted %.2f vs advanced %.2f differ by more than an hour", fitted, advanced)
	}
	if math.Abs(fitted-recorded) > 1 || math.Abs(advanced-recorded) > 1 {
		t.Errorf("45N day 180: fitted %.2f, advanced %.2f, want within an hour of %.1f", fitted, advanced, recorded)
	}

	fittedPole, _ := e.Estimate(180, 90)
	advancedPole, _ := EstimateAdvanced(180, 90, DefaultAxialTilt)

	midErr := math.Abs(fitted - advanced)
	poleErr := math.Abs(fittedPole - advancedPole)
	if poleErr <= midErr {
		t.Errorf("expected fitted model to degrade at the pole: error %.3f at 90° vs %.3f at 45°", poleErr, midErr)
	}

	t.Logf("45N: fitted %.2f advanced %.2f; 90N: fitted %.2f advanced %.2f", fitted, advanced, fittedPole, advancedPole)
}

func TestAdvancedYear(t *testing.T) {
	seq, err := AdvancedYear(-45, DefaultAxialTilt)
	if err != nil {
		t.Fatalf("AdvancedYear() error = %v", err)
	}

	maxDay, maxHours := 0, 0.0
	n := 0
	for day, hours := range seq {
		n++
		if hours > maxHours {
			maxDay, maxHours = day, hours
		}
	}
	if n != DaysPerYear {
		t.Fatalf("got %d days, want %d", n, DaysPerYear)
	}

	// Southern summer solstice is in late December.
	if maxDay < 340 && maxDay > 10 {
		t.Errorf("longest day at 45S is day %d, want near day 355", maxDay)
	}
}
