package main

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chrissnell/daylight/pkg/daylight"
)

func testOptions(t *testing.T) options {
	t.Helper()
	return options{
		cfgFile: filepath.Join(t.TempDir(), "daylight.yaml"),
		lat:     45,
		date:    "06-21",
		level:   1,
	}
}

func TestRun(t *testing.T) {
	if err := run(testOptions(t)); err != nil {
		t.Fatalf("run() error = %v", err)
	}
}

func TestRunReturnsErrors(t *testing.T) {
	badLevel := testOptions(t)
	badLevel.level = 3
	if err := run(badLevel); err == nil || !strings.Contains(err.Error(), "-level") {
		t.Errorf("run() with level 3 error = %v", err)
	}

	badDate := testOptions(t)
	badDate.date = "13-01"
	if err := run(badDate); !errors.Is(err, daylight.ErrInvalidCalendarDate) {
		t.Errorf("run() with date 13-01 error = %v, want ErrInvalidCalendarDate", err)
	}

	badLat := testOptions(t)
	badLat.lat = 91
	if err := run(badLat); !errors.Is(err, daylight.ErrInvalidLatitude) {
		t.Errorf("run() with lat 91 error = %v, want ErrInvalidLatitude", err)
	}

	badDegree := testOptions(t)
	badDegree.degree = 2
	if err := run(badDegree); !errors.Is(err, daylight.ErrUnknownPreset) {
		t.Errorf("run() with degree 2 error = %v, want ErrUnknownPreset", err)
	}
}
