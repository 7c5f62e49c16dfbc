package main

import (
	"path/filepath"
	"testing"
)

func TestParseLatitudes(t *testing.T) {
	got, err := parseLatitudes(" -45, 0,,60 ")
	if err != nil {
		t.Fatalf("parseLatitudes() error = %v", err)
	}
	if len(got) != 3 || got[0] != -45 || got[2] != 60 {
		t.Errorf("parseLatitudes() = %v", got)
	}

	for _, s := range []string{"", " , ", "north"} {
		if _, err := parseLatitudes(s); err == nil {
			t.Errorf("parseLatitudes(%q) accepted", s)
		}
	}
}

func TestRun(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "daylight.yaml")

	if err := run(cfg, "45", 2023, 0, 0); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if err := run(cfg, "north", 2023, 0, 0); err == nil {
		t.Error("run() accepted bad latitudes")
	}
	if err := run(cfg, "45", 2023, 0, 2); err == nil {
		t.Error("run() accepted an unknown preset degree")
	}
}
