package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/chrissnell/daylight/internal/constants"
	"github.com/chrissnell/daylight/internal/interactive"
	"github.com/chrissnell/daylight/internal/log"
	"github.com/chrissnell/daylight/pkg/config"
	"github.com/chrissnell/daylight/pkg/daylight"
)

type options struct {
	cfgFile     string
	lat         float64
	month       int
	day         int
	date        string
	level       int
	degree      int
	csvOutput   string
	seasonsYear int
	interactive bool
}

func main() {
	var opts options
	flag.StringVar(&opts.cfgFile, "config", constants.DefaultConfigFile, "Path to YAML configuration (optional)")
	flag.Float64Var(&opts.lat, "lat", 0, "Latitude in degrees, -90 to 90")
	flag.IntVar(&opts.month, "month", 0, "Month (1-12); with -day, prints one result and exits")
	flag.IntVar(&opts.day, "day", 0, "Day of month")
	flag.StringVar(&opts.date, "date", "", "Date as MM-DD, instead of -month and -day")
	flag.IntVar(&opts.level, "level", 1, "Explanation level: 1 (rookie) or 2 (enthusiast)")
	flag.IntVar(&opts.degree, "degree", 0, "Use the preset polynomial of this degree (1 or 3) instead of the configured model")
	flag.StringVar(&opts.csvOutput, "csv", "", "Write the yearly series to this CSV file (enthusiast level)")
	flag.IntVar(&opts.seasonsYear, "year", 0, "Annotate yearly summaries with this year's equinoxes and solstices")
	flag.BoolVar(&opts.interactive, "interactive", false, "Run the prompt loop")
	debug := flag.Bool("debug", false, "Turn on debugging output")
	showVersion := flag.Bool("version", false, "Show version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("daylight %s\n", constants.Version)
		os.Exit(0)
	}

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
	cfg, err := config.NewYAMLProvider(filename).LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	model := cfg.Model
	if opts.degree != 0 {
		model = config.ModelData{Degree: opts.degree, AxialTilt: cfg.Model.AxialTilt}
	}
	est, err := model.Estimator()
	if err != nil {
		return fmt.Errorf("invalid model configuration: %w", err)
	}
	log.Debugf("amplitude polynomials: north K = %s, south K = %s",
		est.Coefficients().Northern.Format("lat"), est.Coefficients().Southern.Format("|lat|"))

	if opts.csvOutput == "" {
		opts.csvOutput = cfg.Output.CSVPath
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	session := interactive.NewSession(os.Stdin, os.Stdout, est, interactive.Options{
		AxialTilt: cfg.Model.AxialTilt,
		CSVPath:   opts.csvOutput,
		Year:      opts.seasonsYear,
	})

	if opts.date != "" {
		t, err := daylight.ParseMonthDay(opts.date)
		if err != nil {
			return err
		}
		opts.month, opts.day = daylight.DateOf(t)
	}

	if opts.interactive || (opts.month == 0 && opts.day == 0) {
		if err := session.Run(ctx); err != nil && ctx.Err() == nil {
			return fmt.Errorf("session error: %w", err)
		}
		return nil
	}

	if err := daylight.ValidateLatitude(opts.lat); err != nil {
		return err
	}
	if opts.level != int(interactive.Rookie) && opts.level != int(interactive.Enthusiast) {
		return fmt.Errorf("-level must be 1 or 2, got %d", opts.level)
	}

	start := time.Now()
	if err := session.Report(ctx, interactive.Level(opts.level), opts.lat, opts.month, opts.day); err != nil {
		return err
	}
	log.Debugf("report generated in %v", time.Since(start))
	return nil
}
