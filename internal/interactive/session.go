// Package interactive implements the prompt-driven daylight calculator.
package interactive

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chrissnell/daylight/internal/log"
	"github.com/chrissnell/daylight/pkg/daylight"
	"github.com/chrissnell/daylight/pkg/reference"
)

// errQuit ends the session; it is returned by prompts on "q" or end of input.
var errQuit = errors.New("quit")

// Options configures a Session.
type Options struct {
	AxialTilt float64 // degrees; daylight.DefaultAxialTilt when zero
	CSVPath   string  // enthusiast year series are written here when set
	Year      int     // calendar year for equinox/solstice annotations
}

// Session runs the calculator over an input and output stream.
type Session struct {
	in   *bufio.Scanner
	out  io.Writer
	est  *daylight.Estimator
	opts Options
}

// NewSession returns a Session reading answers from in and writing to out.
func NewSession(in io.Reader, out io.Writer, est *daylight.Estimator, opts Options) *Session {
	if opts.AxialTilt == 0 {
		opts.AxialTilt = daylight.DefaultAxialTilt
	}
	return &Session{
		in:   bufio.NewScanner(in),
		out:  out,
		est:  est,
		opts: opts,
	}
}

// Run prompts for level, latitude, month and day, prints the result and
// starts over until the user enters "q", the input ends or ctx is done.
// Invalid answers are reported and asked again.
func (s *Session) Run(ctx context.Context) error {
	s.println("DAYLIGHT HOUR CALCULATOR")
	s.println()
	s.println("Welcome! Please select your science level:")
	s.println("1. Science Rookie")
	s.println("2. Science Enthusiast")
	s.println("Enter 'q' to quit at any time")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := s.round(ctx)
		if errors.Is(err, errQuit) {
			s.println()
			s.println("Thank you for using the calculator!")
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (s *Session) round(ctx context.Context) error {
	s.println()

	level, err := ask(s, "Enter your science level (1 or 2): ",
		"Error: Please enter '1' for Science Rookie or '2' for Science Enthusiast!",
		func(v string) (Level, error) {
			n, err := strconv.Atoi(v)
			if err != nil || (Level(n) != Rookie && Level(n) != Enthusiast) {
				return 0, errors.New("bad level")
			}
			return Level(n), nil
		})
	if err != nil {
		return err
	}

	lat, err := ask(s, "Enter latitude (-90 to 90): ",
		"Error: Latitude must be between -90 and 90!",
		func(v string) (float64, error) {
			lat, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return 0, err
			}
			return lat, daylight.ValidateLatitude(lat)
		})
	if err != nil {
		return err
	}

	month, err := ask(s, "Enter month (1-12): ",
		"Error: Month must be between 1 and 12!",
		func(v string) (int, error) {
			m, err := strconv.Atoi(v)
			if err != nil || daylight.DaysInMonth(m) == 0 {
				return 0, errors.New("bad month")
			}
			return m, nil
		})
	if err != nil {
		return err
	}

	maxDay := daylight.DaysInMonth(month)
	day, err := ask(s, fmt.Sprintf("Enter day (1-%d): ", maxDay),
		fmt.Sprintf("Error: Day must be between 1 and %d for month %d!", maxDay, month),
		func(v string) (int, error) {
			d, err := strconv.Atoi(v)
			if err != nil {
				return 0, err
			}
			_, err = daylight.DayOfYear(month, d)
			return d, err
		})
	if err != nil {
		return err
	}

	if err := s.Report(ctx, level, lat, month, day); err != nil {
		// Calculation problems are shown and the loop continues.
		s.printf("Error: %v\n", err)
	}
	return nil
}

// ask prints prompt and parses the answer, repeating with errMsg until parse
// succeeds. "q" (any case) and end of input return errQuit.
func ask[T any](s *Session, prompt, errMsg string, parse func(string) (T, error)) (T, error) {
	var zero T
	for {
		s.printf("%s", prompt)
		if !s.in.Scan() {
			if err := s.in.Err(); err != nil {
				return zero, err
			}
			return zero, errQuit
		}

		answer := strings.TrimSpace(s.in.Text())
		if strings.EqualFold(answer, "q") {
			return zero, errQuit
		}

		v, err := parse(answer)
		if err == nil {
			return v, nil
		}
		s.println(errMsg)
	}
}

// Report prints the result block and explanation for one date. Enthusiasts
// also get the yearly summary and, when configured, a CSV export.
func (s *Session) Report(ctx context.Context, level Level, lat float64, month, day int) error {
	t, err := daylight.DayOfYear(month, day)
	if err != nil {
		return err
	}
	hours, err := s.est.Estimate(t, lat)
	if err != nil {
		return err
	}

	s.println()
	s.printf("RESULTS FOR %s\n", strings.ToUpper(level.String()))
	s.println()
	s.printf("Latitude: %g° (%s)\n", lat, daylight.HemisphereOf(lat))
	s.printf("Date: Month %d, Day %d\n", month, day)
	s.printf("Day of year (t value): %d\n", t+1)
	s.printf("Daylight hours: %.2f hours (%s)\n", hours, daylight.FormatHours(hours))

	if level == Enthusiast {
		adv, err := daylight.EstimateAdvanced(t, lat, s.opts.AxialTilt)
		if err != nil {
			return err
		}
		s.printf("Geometric model (tilt %.2f°): %.2f hours\n", s.opts.AxialTilt, adv)
		s.printf("Amplitude K: %.4f\n", s.est.Amplitude(lat))
	}

	title, lines := explanation(level)
	s.println()
	s.println(title)
	s.println()
	for _, l := range lines {
		s.println(l)
	}

	if level == Enthusiast {
		if err := s.yearly(ctx, lat); err != nil {
			return err
		}
	}

	s.println()
	return nil
}

func (s *Session) yearly(ctx context.Context, lat float64) error {
	values, err := s.est.YearValues(ctx, lat)
	if err != nil {
		return err
	}

	s.println()
	s.println("YEARLY DAYLIGHT VARIATION")
	s.println()
	WriteSummary(s.out, values, s.keyDates())
	s.println()
	WriteChart(s.out, values)

	if s.opts.CSVPath == "" {
		return nil
	}

	if err := s.exportCSV(lat); err != nil {
		log.Errorf("could not write %s: %v", s.opts.CSVPath, err)
		s.printf("Could not export the yearly series: %v\n", err)
		return nil
	}
	s.println()
	s.printf("Yearly series written to %s\n", s.opts.CSVPath)
	return nil
}

func (s *Session) exportCSV(lat float64) error {
	f, err := os.Create(s.opts.CSVPath)
	if err != nil {
		return err
	}
	if err := WriteYearCSV(f, s.est, lat, s.opts.AxialTilt); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (s *Session) keyDates() []daylight.KeyDate {
	if s.opts.Year == 0 {
		return daylight.KeyDates
	}
	return reference.Seasons(s.opts.Year)
}

func (s *Session) println(a ...any) {
	fmt.Fprintln(s.out, a...)
}

func (s *Session) printf(format string, a ...any) {
	fmt.Fprintf(s.out, format, a...)
}
