package daylight

import (
	"context"
	"iter"
	"math"

	"golang.org/x/sync/errgroup"
)

// Estimator evaluates the empirical sinusoidal model
//
//	hours = 12 + K(lat) * sin(2π/365 * (day - phase))
//
// with K taken from the configured polynomials. It is safe for concurrent use.
type Estimator struct {
	coeffs Coefficients
}

// NewEstimator returns an Estimator for the given fit.
func NewEstimator(c Coefficients) *Estimator {
	return &Estimator{coeffs: c}
}

// Coefficients returns the polynomials the estimator was built with.
func (e *Estimator) Coefficients() Coefficients {
	return e.coeffs
}

// Amplitude returns K for lat. The southern polynomial is evaluated at |lat|.
func (e *Estimator) Amplitude(lat float64) float64 {
	h := HemisphereOf(lat)
	return e.coeffs.For(h).Eval(math.Abs(lat))
}

// Estimate returns the daylight hours on dayOfYear at lat, clamped to
// [0,24]. Any integer day is accepted; the model has a period of 365 days.
// Only an out-of-range latitude is an error.
func (e *Estimator) Estimate(dayOfYear int, lat float64) (float64, error) {
	if err := ValidateLatitude(lat); err != nil {
		return 0, err
	}

	h := HemisphereOf(lat)
	k := e.Amplitude(lat)
	raw := 12 + k*math.Sin(angularDay(dayOfYear-h.Phase()))

	return ClampHours(raw), nil
}

// Year returns a lazy sequence of (day, hours) for days 0..364 at lat. The
// sequence can be ranged over any number of times.
func (e *Estimator) Year(lat float64) (iter.Seq2[int, float64], error) {
	if err := ValidateLatitude(lat); err != nil {
		return nil, err
	}
	return yearSeq(func(day int) float64 {
		hours, _ := e.Estimate(day, lat)
		return hours
	}), nil
}

// YearValues evaluates all 365 days at lat concurrently and returns them
// indexed by day.
func (e *Estimator) YearValues(ctx context.Context, lat float64) ([]float64, error) {
	if err := ValidateLatitude(lat); err != nil {
		return nil, err
	}
	return yearValues(ctx, func(day int) (float64, error) {
		return e.Estimate(day, lat)
	})
}

// AdvancedYear is the Year equivalent for EstimateAdvanced.
func AdvancedYear(lat, axialTiltDeg float64) (iter.Seq2[int, float64], error) {
	if err := ValidateLatitude(lat); err != nil {
		return nil, err
	}
	return yearSeq(func(day int) float64 {
		hours, _ := EstimateAdvanced(day, lat, axialTiltDeg)
		return hours
	}), nil
}

func yearSeq(f func(day int) float64) iter.Seq2[int, float64] {
	return func(yield func(int, float64) bool) {
		for day := 0; day < DaysPerYear; day++ {
			if !yield(day, f(day)) {
				return
			}
		}
	}
}

// yearValues fans the year out over a bounded number of goroutines, each
// writing only its own slots.
func yearValues(ctx context.Context, f func(day int) (float64, error)) ([]float64, error) {
	const chunk = 73

	out := make([]float64, DaysPerYear)
	g, ctx := errgroup.WithContext(ctx)

	for start := 0; start < DaysPerYear; start += chunk {
		g.Go(func() error {
			end := min(start+chunk, DaysPerYear)
			for day := start; day < end; day++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				v, err := f(day)
				if err != nil {
					return err
				}
				out[day] = v
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// AdvancedYearValues is the YearValues equivalent for EstimateAdvanced.
func AdvancedYearValues(ctx context.Context, lat, axialTiltDeg float64) ([]float64, error) {
	if err := ValidateLatitude(lat); err != nil {
		return nil, err
	}
	return yearValues(ctx, func(day int) (float64, error) {
		return EstimateAdvanced(day, lat, axialTiltDeg)
	})
}
