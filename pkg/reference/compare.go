package reference

import (
	"context"
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/chrissnell/daylight/pkg/daylight"
)

// Stats summarizes the differences between a model and a baseline.
type Stats struct {
	Samples      int
	MeanError    float64 // signed, model minus baseline
	MeanAbsError float64
	RMSE         float64
	MaxAbsError  float64
	WorstDay     int
}

func (s Stats) String() string {
	return fmt.Sprintf("n=%d bias=%+.3fh mae=%.3fh rmse=%.3fh max=%.3fh@%d",
		s.Samples, s.MeanError, s.MeanAbsError, s.RMSE, s.MaxAbsError, s.WorstDay)
}

// Comparison holds the statistics for one latitude.
type Comparison struct {
	Latitude float64

	// Against the geometric model, every day of the year.
	FittedVsAdvanced Stats

	// Against the ephemeris day length, every day of the year.
	FittedVsAstronomical   Stats
	AdvancedVsAstronomical Stats

	// Against suncalc and go-sunrise, on the days each reports both a
	// sunrise and a sunset.
	FittedVsSunCalc   Stats
	FittedVsGoSunrise Stats

	// Against recorded values; nil when no table exists for the latitude.
	FittedVsRecorded   *Stats
	AdvancedVsRecorded *Stats
}

// Options configures Compare.
type Options struct {
	AxialTilt float64 // degrees; daylight.DefaultAxialTilt when zero
	Year      int     // calendar year for ephemeris baselines
	Longitude float64 // for suncalc and go-sunrise
}

// Compare evaluates the estimator against every baseline at each latitude.
// Latitudes are processed concurrently; results keep the order of lats.
func Compare(ctx context.Context, est *daylight.Estimator, lats []float64, opts Options) ([]Comparison, error) {
	if opts.AxialTilt == 0 {
		opts.AxialTilt = daylight.DefaultAxialTilt
	}
	if opts.Year == 0 {
		opts.Year = 2023
	}

	out := make([]Comparison, len(lats))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, lat := range lats {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			c, err := compareLatitude(est, lat, opts)
			if err != nil {
				return fmt.Errorf("latitude %v: %w", lat, err)
			}
			out[i] = c
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func compareLatitude(est *daylight.Estimator, lat float64, opts Options) (Comparison, error) {
	c := Comparison{Latitude: lat}

	var fitAdv, fitAstro, advAstro, fitSun, fitNOAA diffs
	for day := 0; day < daylight.DaysPerYear; day++ {
		fitted, err := est.Estimate(day, lat)
		if err != nil {
			return c, err
		}
		advanced, err := daylight.EstimateAdvanced(day, lat, opts.AxialTilt)
		if err != nil {
			return c, err
		}
		astro, err := Astronomical(day, lat, opts.Year)
		if err != nil {
			return c, err
		}

		fitAdv.add(day, fitted-advanced)
		fitAstro.add(day, fitted-astro)
		advAstro.add(day, advanced-astro)

		sc, ok, err := SunCalc(day, lat, opts.Longitude, opts.Year)
		if err != nil {
			return c, err
		}
		if ok {
			fitSun.add(day, fitted-sc)
		}

		gs, ok, err := GoSunrise(day, lat, opts.Longitude, opts.Year)
		if err != nil {
			return c, err
		}
		if ok {
			fitNOAA.add(day, fitted-gs)
		}
	}

	c.FittedVsAdvanced = fitAdv.stats()
	c.FittedVsAstronomical = fitAstro.stats()
	c.AdvancedVsAstronomical = advAstro.stats()
	c.FittedVsSunCalc = fitSun.stats()
	c.FittedVsGoSunrise = fitNOAA.stats()

	if pts, ok := Recorded(lat); ok {
		var fitRec, advRec diffs
		for _, p := range pts {
			fitted, _ := est.Estimate(p.Day, lat)
			advanced, _ := daylight.EstimateAdvanced(p.Day, lat, opts.AxialTilt)
			fitRec.add(p.Day, fitted-p.Hours)
			advRec.add(p.Day, advanced-p.Hours)
		}
		fs, as := fitRec.stats(), advRec.stats()
		c.FittedVsRecorded = &fs
		c.AdvancedVsRecorded = &as
	}

	return c, nil
}

// diffs accumulates signed differences keyed by day.
type diffs struct {
	days   []int
	values []float64
}

func (d *diffs) add(day int, v float64) {
	d.days = append(d.days, day)
	d.values = append(d.values, v)
}

func (d *diffs) stats() Stats {
	s := Stats{Samples: len(d.values)}
	if s.Samples == 0 {
		return s
	}

	abs := make([]float64, len(d.values))
	var sq float64
	for i, v := range d.values {
		abs[i] = math.Abs(v)
		sq += v * v
		if abs[i] > s.MaxAbsError {
			s.MaxAbsError = abs[i]
			s.WorstDay = d.days[i]
		}
	}

	s.MeanError = stat.Mean(d.values, nil)
	s.MeanAbsError = stat.Mean(abs, nil)
	s.RMSE = math.Sqrt(sq / float64(len(d.values)))
	return s
}
