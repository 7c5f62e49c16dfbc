package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/chrissnell/daylight/internal/constants"
	"github.com/chrissnell/daylight/internal/log"
	"github.com/chrissnell/daylight/pkg/calibrate"
	"github.com/chrissnell/daylight/pkg/config"
	"github.com/chrissnell/daylight/pkg/reference"
)

func main() {
	var (
		cfgFile = flag.String("config", constants.DefaultConfigFile, "Path to YAML configuration (optional)")
		lats    = flag.String("lats", "-60,-45,-30,0,30,45,60,75,90", "Comma-separated latitudes to compare")
		year    = flag.Int("year", time.Now().Year(), "Calendar year for the ephemeris baselines")
		lon     = flag.Float64("lon", 0, "Longitude for the sunrise/sunset libraries")
		degree  = flag.Int("degree", 0, "Use the preset polynomial of this degree (1 or 3) instead of the configured model")
		debug   = flag.Bool("debug", false, "Turn on debugging output")
	)
	flag.Parse()

	if err := log.Init(*debug); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	if err := run(*cfgFile, *lats, *year, *lon, *degree); err != nil {
		log.Errorf("%v", err)
		log.Sync()
		os.Exit(1)
	}
	log.Sync()
}

func run(cfgFile, lats string, year int, lon float64, degree int) error {
	latitudes, err := parseLatitudes(lats)
	if err != nil {
		return fmt.Errorf("invalid -lats: %w", err)
	}

	filename, _ := filepath.Abs(cfgFile)
	model, err := config.NewYAMLProvider(filename).GetModel()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	m := *model
	if degree != 0 {
		m = config.ModelData{Degree: degree, AxialTilt: model.AxialTilt}
	}
	est, err := m.Estimator()
	if err != nil {
		return fmt.Errorf("invalid model configuration: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	results, err := reference.Compare(ctx, est, latitudes, reference.Options{
		AxialTilt: m.AxialTilt,
		Year:      year,
		Longitude: lon,
	})
	if err != nil {
		return fmt.Errorf("comparison failed: %w", err)
	}
	log.Debugf("compared %d latitudes in %v", len(latitudes), time.Since(start))

	fmt.Printf("Model Comparison (%s fit, tilt %.2f°, year %d)\n",
		calibrate.ModelTypeFor(est.Coefficients().Northern.Degree()), m.AxialTilt, year)
	fmt.Printf("=================\n\n")
	fmt.Printf("Mean absolute error in hours over the year, max in parentheses\n\n")

	fmt.Printf("%8s | %16s | %16s | %16s | %16s | %16s | %16s\n",
		"Latitude", "fit - geometric", "fit - ephemeris", "geo - ephemeris", "fit - suncalc", "fit - NOAA", "fit - recorded")
	fmt.Printf("---------+------------------+------------------+------------------+------------------+------------------+------------------\n")

	for _, c := range results {
		recorded := "-"
		if c.FittedVsRecorded != nil {
			recorded = cell(*c.FittedVsRecorded)
		}
		fmt.Printf("%8.2f | %16s | %16s | %16s | %16s | %16s | %16s\n",
			c.Latitude,
			cell(c.FittedVsAdvanced),
			cell(c.FittedVsAstronomical),
			cell(c.AdvancedVsAstronomical),
			cell(c.FittedVsSunCalc),
			cell(c.FittedVsGoSunrise),
			recorded)
	}

	fmt.Printf("\nSeasons %d:\n", year)
	for _, kd := range reference.Seasons(year) {
		fmt.Printf("  t=%3d  %s\n", kd.Day, kd.Label)
	}
	return nil
}

func cell(s reference.Stats) string {
	if s.Samples == 0 {
		return "-"
	}
	return fmt.Sprintf("%.3f (%.2f)", s.MeanAbsError, s.MaxAbsError)
}

func parseLatitudes(s string) ([]float64, error) {
	var out []float64
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", f)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no latitudes given")
	}
	return out, nil
}
