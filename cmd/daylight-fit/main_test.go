package main

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/chrissnell/daylight/pkg/calibrate"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()
	err := run(options{
		cfgFile:   filepath.Join(dir, "daylight.yaml"),
		degree:    3,
		refDay:    -1,
		yamlOut:   true,
		csvOutput: filepath.Join(dir, "samples.csv"),
	})
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}
}

func TestRunInvalidDegree(t *testing.T) {
	err := run(options{
		cfgFile: filepath.Join(t.TempDir(), "daylight.yaml"),
		degree:  -1,
		refDay:  -1,
	})
	if !errors.Is(err, calibrate.ErrInvalidDegree) {
		t.Errorf("run() error = %v, want ErrInvalidDegree", err)
	}
}
