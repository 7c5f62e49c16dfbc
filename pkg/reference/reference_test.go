package reference

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/chrissnell/daylight/pkg/daylight"
)

func TestAstronomical(t *testing.T) {
	tests := []struct {
		name     string
		day      int
		lat      float64
		minHours float64
		maxHours float64
	}{
		{"45N summer solstice", 171, 45, 15.2, 15.9},
		{"45N winter solstice", 354, 45, 8.5, 9.1},
		{"45S summer solstice", 354, -45, 15.2, 15.9},
		{"equator", 171, 0, 12.0, 12.3},
		{"45N spring equinox", 78, 45, 11.9, 12.5},
		{"80N polar day", 171, 80, 24, 24},
		{"80N polar night", 354, 80, 0, 0},
		{"south pole midwinter", 171, -90, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hours, err := Astronomical(tt.day, tt.lat, 2023)
			if err != nil {
				t.Fatalf("Astronomical() error = %v", err)
			}
			if hours < tt.minHours || hours > tt.maxHours {
				t.Errorf("Astronomical(%d, %v) = %.3f hours, want between %.2f and %.2f",
					tt.day, tt.lat, hours, tt.minHours, tt.maxHours)
			}
		})
	}

	if _, err := Astronomical(0, -91, 2023); !errors.Is(err, daylight.ErrInvalidLatitude) {
		t.Errorf("Astronomical(0, -91) error = %v, want ErrInvalidLatitude", err)
	}
}

func TestNoonOfLeapYear(t *testing.T) {
	if got := noonOf(2024, 59); got.Month() != 3 || got.Day() != 1 {
		t.Errorf("noonOf(2024, 59) = %s, want March 1st", got)
	}
	if got := noonOf(2023, 364); got.Month() != 12 || got.Day() != 31 {
		t.Errorf("noonOf(2023, 364) = %s, want December 31st", got)
	}
	if got := noonOf(2023, -1); got.Month() != 12 || got.Day() != 31 {
		t.Errorf("noonOf(2023, -1) = %s, want December 31st", got)
	}
}

func TestSunCalc(t *testing.T) {
	hours, ok, err := SunCalc(171, 45, 0, 2023)
	if err != nil {
		t.Fatalf("SunCalc() error = %v", err)
	}
	if !ok {
		t.Fatal("SunCalc() reported no sunrise/sunset at 45N in June")
	}
	if hours < 15.0 || hours > 16.0 {
		t.Errorf("SunCalc(171, 45) = %.3f hours, want about 15.5", hours)
	}

	hours, ok, _ = SunCalc(354, -33.87, 151.2, 2023)
	if !ok || hours < 14.0 || hours > 15.0 {
		t.Errorf("SunCalc(354, Sydney) = %.3f (ok=%v), want about 14.4 hours", hours, ok)
	}
}

func TestGoSunrise(t *testing.T) {
	hours, ok, err := GoSunrise(171, 45, 0, 2023)
	if err != nil {
		t.Fatalf("GoSunrise() error = %v", err)
	}
	if !ok || hours < 15.0 || hours > 16.0 {
		t.Errorf("GoSunrise(171, 45) = %.3f (ok=%v), want about 15.5 hours", hours, ok)
	}

	if _, ok, _ := GoSunrise(171, 85, 0, 2023); ok {
		t.Error("GoSunrise() reported a sunset during polar day")
	}
	if _, _, err := GoSunrise(0, 91, 0, 2023); !errors.Is(err, daylight.ErrInvalidLatitude) {
		t.Errorf("GoSunrise(0, 91) error = %v, want ErrInvalidLatitude", err)
	}
}

func TestSeasons(t *testing.T) {
	got := Seasons(2023)
	if len(got) != 4 {
		t.Fatalf("Seasons(2023) returned %d dates", len(got))
	}

	// 2023: Mar 20, Jun 21, Sep 23, Dec 22 (UTC).
	want := []int{78, 171, 265, 355}
	for i, kd := range got {
		if kd.Day != want[i] {
			t.Errorf("Seasons(2023)[%d] = %+v, want day %d", i, kd, want[i])
		}
		if kd.Label == "" {
			t.Errorf("Seasons(2023)[%d] has no label", i)
		}
	}
}

func TestRecorded(t *testing.T) {
	pts, ok := Recorded(45)
	if !ok || len(pts) != 13 {
		t.Fatalf("Recorded(45) = %d points, ok=%v", len(pts), ok)
	}
	if pts[6].Day != 180 || pts[6].Hours != 15.6 {
		t.Errorf("Recorded(45)[6] = %+v, want day 180 at 15.6h", pts[6])
	}

	// Callers get a copy.
	pts[0].Hours = 0
	again, _ := Recorded(45)
	if again[0].Hours == 0 {
		t.Error("Recorded() exposed its backing table")
	}

	if _, ok := Recorded(10); ok {
		t.Error("Recorded(10) should have no table")
	}

	lats := RecordedLatitudes()
	if len(lats) != 2 || lats[0] != -45 || lats[1] != 45 {
		t.Errorf("RecordedLatitudes() = %v", lats)
	}
}

func TestCompare(t *testing.T) {
	est := daylight.NewEstimator(daylight.CubicCoefficients)
	lats := []float64{45, -45, 0, 90}

	results, err := Compare(context.Background(), est, lats, Options{})
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}
	if len(results) != len(lats) {
		t.Fatalf("got %d results, want %d", len(results), len(lats))
	}

	for i, c := range results {
		if c.Latitude != lats[i] {
			t.Errorf("result %d is for latitude %v, want %v", i, c.Latitude, lats[i])
		}
		if c.FittedVsAdvanced.Samples != daylight.DaysPerYear {
			t.Errorf("lat %v: %d samples, want %d", c.Latitude, c.FittedVsAdvanced.Samples, daylight.DaysPerYear)
		}
		t.Logf("lat %6.1f vs advanced: %s", c.Latitude, c.FittedVsAdvanced)
		t.Logf("lat %6.1f vs ephemeris: %s", c.Latitude, c.FittedVsAstronomical)
		t.Logf("lat %6.1f vs go-sunrise: %s", c.Latitude, c.FittedVsGoSunrise)
	}

	north, south, equator, pole := results[0], results[1], results[2], results[3]

	for _, c := range []Comparison{north, south} {
		if c.FittedVsRecorded == nil || c.AdvancedVsRecorded == nil {
			t.Fatalf("lat %v: missing recorded comparison", c.Latitude)
		}
		if c.FittedVsRecorded.MeanAbsError > 0.6 {
			t.Errorf("lat %v: fitted vs recorded MAE %.3f, want under 0.6h", c.Latitude, c.FittedVsRecorded.MeanAbsError)
		}
		if c.FittedVsRecorded.MaxAbsError > 1 {
			t.Errorf("lat %v: fitted vs recorded max error %.3f, want under 1h", c.Latitude, c.FittedVsRecorded.MaxAbsError)
		}
		if c.AdvancedVsAstronomical.MeanAbsError > 0.4 {
			t.Errorf("lat %v: advanced vs ephemeris MAE %.3f, want under 0.4h", c.Latitude, c.AdvancedVsAstronomical.MeanAbsError)
		}
	}

	if equator.FittedVsRecorded != nil {
		t.Error("equator should have no recorded comparison")
	}

	if pole.FittedVsAdvanced.MeanAbsError <= north.FittedVsAdvanced.MeanAbsError {
		t.Errorf("fitted model should degrade at the pole: MAE %.3f at 90 vs %.3f at 45",
			pole.FittedVsAdvanced.MeanAbsError, north.FittedVsAdvanced.MeanAbsError)
	}
	if math.IsNaN(pole.FittedVsAstronomical.RMSE) {
		t.Error("NaN statistics at the pole")
	}
}

func TestCompareInvalidLatitude(t *testing.T) {
	est := daylight.NewEstimator(daylight.CubicCoefficients)
	if _, err := Compare(context.Background(), est, []float64{10, 120}, Options{}); !errors.Is(err, daylight.ErrInvalidLatitude) {
		t.Errorf("Compare() error = %v, want ErrInvalidLatitude", err)
	}
}
