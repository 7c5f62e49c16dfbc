package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/chrissnell/daylight/internal/constants"
	"github.com/chrissnell/daylight/internal/log"
	"github.com/chrissnell/daylight/pkg/calibrate"
	"github.com/chrissnell/daylight/pkg/config"
	"github.com/chrissnell/daylight/pkg/daylight"
)

type options struct {
	cfgFile   string
	degree    int
	refDay    int
	compare   bool
	yamlOut   bool
	csvOutput string
}

func main() {
	var opts options
	flag.StringVar(&opts.cfgFile, "config", constants.DefaultConfigFile, "Path to YAML configuration with observation tables (optional)")
	flag.IntVar(&opts.degree, "degree", 3, "Polynomial degree of the amplitude fit")
	flag.IntVar(&opts.refDay, "ref-day", -1, "0-based day of year the observations were taken (default from config)")
	flag.BoolVar(&opts.compare, "compare", false, "Fit degrees 0-3 and rank them by AIC")
	flag.BoolVar(&opts.yamlOut, "yaml", false, "Print a model section for the configuration file")
	flag.StringVar(&opts.csvOutput, "csv", "", "Optional CSV output file path for the per-location samples")
	debug := flag.Bool("debug", false, "Turn on debugging output")
	flag.Parse()

	if err := log.Init(*debug); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	if err := run(opts); err != nil {
		log.Errorf("%v", err)
		log.Sync()
		os.Exit(1)
	}
	log.Sync()
}

func run(opts options) error {
	filename, _ := filepath.Abs(opts.cfgFile)
	cal, err := config.NewYAMLProvider(filename).GetCalibration()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	refDay := opts.refDay
	if refDay < 0 {
		refDay = cal.ReferenceDay
	}

	fmt.Printf("Daylight Amplitude Calibration\n")
	fmt.Printf("==============================\n\n")
	fmt.Printf("Configuration:\n")
	fmt.Printf("  Reference day: %d (%s)\n", refDay, daylight.FormatDay(refDay))
	fmt.Printf("  Northern locations: %d\n", len(cal.Northern))
	fmt.Printf("  Southern locations: %d\n", len(cal.Southern))
	fmt.Printf("  Polynomial degree: %d\n\n", opts.degree)

	if opts.compare {
		for _, h := range []struct {
			hemi daylight.Hemisphere
			obs  []calibrate.Observation
		}{
			{daylight.Northern, cal.Northern},
			{daylight.Southern, cal.Southern},
		} {
			results, err := calibrate.CompareDegrees(h.obs, refDay, h.hemi, 0, 1, 2, 3)
			if err != nil {
				return fmt.Errorf("%s comparison failed: %w", h.hemi, err)
			}
			displayComparison(h.hemi, results)
		}
	}

	north, err := calibrate.Fit(cal.Northern, refDay, daylight.Northern, opts.degree)
	if err != nil {
		return fmt.Errorf("northern fit failed: %w", err)
	}
	south, err := calibrate.Fit(cal.Southern, refDay, daylight.Southern, opts.degree)
	if err != nil {
		return fmt.Errorf("southern fit failed: %w", err)
	}

	displayFit(north, "lat")
	displayFit(south, "|lat|")

	fmt.Printf("Generated Code\n")
	fmt.Printf("==============\n\n")
	if err := calibrate.GenerateCode(os.Stdout, north, south); err != nil {
		return fmt.Errorf("error generating code: %w", err)
	}

	if opts.yamlOut {
		out, err := config.MarshalModel(opts.degree, daylight.Coefficients{Northern: north.Polynomial, Southern: south.Polynomial})
		if err != nil {
			return fmt.Errorf("error rendering YAML: %w", err)
		}
		fmt.Printf("\nConfiguration\n")
		fmt.Printf("=============\n\n")
		os.Stdout.Write(out)
	}

	if opts.csvOutput != "" {
		if err := exportCSV(opts.csvOutput, north, south); err != nil {
			log.Errorf("Error writing CSV: %v", err)
		} else {
			fmt.Printf("\nSamples exported to: %s\n", opts.csvOutput)
		}
	}
	return nil
}

func displayComparison(h daylight.Hemisphere, results []*calibrate.FitResult) {
	title := fmt.Sprintf("Model Comparison (%s)", h)
	fmt.Printf("%s\n", title)
	for range title {
		fmt.Print("=")
	}
	fmt.Printf("\n\n")

	fmt.Printf("%-15s | %8s | %8s | %8s | %10s | %10s\n", "Model", "R²", "Adj R²", "RMSE", "AIC", "BIC")
	fmt.Printf("----------------+----------+----------+----------+------------+------------\n")

	for i, m := range results {
		marker := ""
		if i == 0 {
			marker = " ← BEST (AIC)"
		}
		if m.Underdetermined {
			marker += " (exact, underdetermined)"
		}
		fmt.Printf("%-15s | %8.4f | %8.4f | %8.4f | %10.2f | %10.2f%s\n",
			m.ModelType, m.RSquared, m.AdjustedRSquared, m.RootMeanSquaredError, m.AIC, m.BIC, marker)
	}
	fmt.Println()
}

func displayFit(r *calibrate.FitResult, variable string) {
	fmt.Printf("%s Fit (%s)\n", r.Hemisphere, r.ModelType)
	fmt.Printf("=====================\n\n")

	fmt.Printf("Model equation:\n  K = %s\n\n", r.Polynomial.Format(variable))
	fmt.Printf("Phase factor on day %d: %.6f\n\n", r.ReferenceDay, r.PhaseFactor)

	fmt.Printf("%-16s | %8s | %9s | %8s | %8s\n", "Location", "Latitude", "Daylight", "K", "Fitted K")
	fmt.Printf("-----------------+----------+-----------+----------+----------\n")
	for _, s := range r.Samples {
		fmt.Printf("%-16s | %8.3f | %9.4f | %8.4f | %8.4f\n", s.Name, s.Latitude, s.Daylight, s.Amplitude, s.Predicted)
	}
	fmt.Println()

	fmt.Printf("Quality Metrics:\n")
	fmt.Printf("  R² = %.4f\n", r.RSquared)
	fmt.Printf("  Adjusted R² = %.4f\n", r.AdjustedRSquared)
	fmt.Printf("  RMSE = %.4f\n", r.RootMeanSquaredError)
	fmt.Printf("  MAE = %.4f\n", r.MeanAbsoluteError)
	fmt.Printf("  Sample size = %d\n", len(r.Samples))
	if r.Underdetermined {
		fmt.Printf("  ⚠ WARNING: %d samples for %d coefficients - minimum-norm solution, not a unique fit\n",
			len(r.Samples), r.Degree+1)
	}
	fmt.Println()
}

func exportCSV(filename string, fits ...*calibrate.FitResult) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Write([]string{"hemisphere", "name", "latitude", "sunrise", "sunset", "daylight_hours", "amplitude", "fitted_amplitude"})

	for _, r := range fits {
		for _, s := range r.Samples {
			w.Write([]string{
				r.Hemisphere.String(),
				s.Name,
				strconv.FormatFloat(s.Latitude, 'f', -1, 64),
				s.Sunrise,
				s.Sunset,
				strconv.FormatFloat(s.Daylight, 'f', 4, 64),
				strconv.FormatFloat(s.Amplitude, 'f', 6, 64),
				strconv.FormatFloat(s.Predicted, 'f', 6, 64),
			})
		}
	}

	w.Flush()
	return w.Error()
}
