package calibrate

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/chrissnell/daylight/pkg/daylight"
)

var (
	// ErrNoObservations is returned when Fit receives an empty table.
	ErrNoObservations = errors.New("no observations to fit")

	// ErrMixedHemisphere is returned when an observation's latitude does
	// not belong to the hemisphere being fitted.
	ErrMixedHemisphere = errors.New("observation is in the wrong hemisphere")

	// ErrInvalidDegree is returned for a negative polynomial degree.
	ErrInvalidDegree = errors.New("polynomial degree must be non-negative")
)

// phaseEpsilon is the magnitude below which a phase factor is treated as 0.
const phaseEpsilon = 1e-12

// ModelType names a polynomial degree.
type ModelType string

const (
	ModelConstant  ModelType = "constant"
	ModelLinear    ModelType = "linear"
	ModelQuadratic ModelType = "quadratic"
	ModelCubic     ModelType = "cubic"
)

// ModelTypeFor returns the name for a polynomial degree.
func ModelTypeFor(degree int) ModelType {
	switch degree {
	case 0:
		return ModelConstant
	case 1:
		return ModelLinear
	case 2:
		return ModelQuadratic
	case 3:
		return ModelCubic
	default:
		return ModelType(fmt.Sprintf("degree-%d", degree))
	}
}

// Sample is an observation reduced to the quantities the fit uses.
type Sample struct {
	Observation
	X         float64 // latitude, or |latitude| in the south
	Daylight  float64 // hours
	Amplitude float64 // empirical K
	Predicted float64 // fitted K at X
}

// FitResult describes one hemisphere's fit and its quality.
type FitResult struct {
	Hemisphere   daylight.Hemisphere
	ModelType    ModelType
	Degree       int
	ReferenceDay int
	PhaseFactor  float64
	Polynomial   daylight.Polynomial
	Samples      []Sample

	RSquared             float64
	AdjustedRSquared     float64
	MeanAbsoluteError    float64
	RootMeanSquaredError float64
	AIC                  float64 // Akaike Information Criterion (lower is better)
	BIC                  float64 // Bayesian Information Criterion (lower is better)

	// Underdetermined is set when there were no more samples than
	// coefficients; the returned polynomial is then the minimum-norm
	// solution rather than a unique least-squares fit.
	Underdetermined bool
}

// PhaseFactor returns sin(2π/365 * (referenceDay - phase)) for hemisphere h.
// Its sign matches the sinusoid the estimator evaluates, so the fitted
// amplitudes come out positive for both hemispheres.
func PhaseFactor(referenceDay int, h daylight.Hemisphere) float64 {
	return math.Sin(2 * math.Pi / daylight.DaysPerYear * float64(referenceDay-h.Phase()))
}

// Amplitude returns (daylightHours - 12) / phaseFactor. A zero phase factor
// (reference day on the equinox) yields ErrDivisionByZero.
func Amplitude(daylightHours, phaseFactor float64) (float64, error) {
	if math.Abs(phaseFactor) < phaseEpsilon {
		return 0, fmt.Errorf("%w: phase factor is zero, choose a reference day away from the equinox", daylight.ErrDivisionByZero)
	}
	return (daylightHours - 12) / phaseFactor, nil
}

// Fit computes empirical amplitudes for obs and fits a polynomial of the
// given degree through them. All observations must lie in hemisphere h.
// Any malformed observation or a zero phase factor aborts the fit.
func Fit(obs []Observation, referenceDay int, h daylight.Hemisphere, degree int) (*FitResult, error) {
	if degree < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDegree, degree)
	}
	if len(obs) == 0 {
		return nil, ErrNoObservations
	}

	phase := PhaseFactor(referenceDay, h)

	samples := make([]Sample, len(obs))
	for i, o := range obs {
		if err := daylight.ValidateLatitude(o.Latitude); err != nil {
			return nil, fmt.Errorf("observation %s: %w", o.label(), err)
		}
		if daylight.HemisphereOf(o.Latitude) != h {
			return nil, fmt.Errorf("%w: %s is not in the %s", ErrMixedHemisphere, o.label(), h)
		}

		d, err := DaylightSample(o)
		if err != nil {
			return nil, err
		}
		k, err := Amplitude(d, phase)
		if err != nil {
			return nil, err
		}

		samples[i] = Sample{
			Observation: o,
			X:           math.Abs(o.Latitude),
			Daylight:    d,
			Amplitude:   k,
		}
	}

	poly, underdetermined, err := fitPolynomial(samples, degree)
	if err != nil {
		return nil, err
	}

	result := &FitResult{
		Hemisphere:      h,
		ModelType:       ModelTypeFor(degree),
		Degree:          degree,
		ReferenceDay:    referenceDay,
		PhaseFactor:     phase,
		Polynomial:      poly,
		Samples:         samples,
		Underdetermined: underdetermined,
	}
	result.score()

	return result, nil
}

// fitPolynomial solves the Vandermonde least-squares system for the
// coefficients in ascending order.
func fitPolynomial(samples []Sample, degree int) (daylight.Polynomial, bool, error) {
	n := len(samples)
	cols := degree + 1

	X := mat.NewDense(n, cols, nil)
	y := mat.NewVecDense(n, nil)
	for i, s := range samples {
		for j := 0; j < cols; j++ {
			X.Set(i, j, math.Pow(s.X, float64(j)))
		}
		y.SetVec(i, s.Amplitude)
	}

	coeffs := mat.NewVecDense(cols, nil)
	underdetermined := n <= degree

	if !underdetermined {
		// Solve using QR decomposition
		var qr mat.QR
		qr.Factorize(X)
		if err := qr.SolveVecTo(coeffs, false, y); err != nil {
			return nil, false, fmt.Errorf("error solving polynomial regression: %w", err)
		}
	} else {
		// Wide systems get the minimum-norm solution.
		if err := coeffs.SolveVec(X, y); err != nil {
			return nil, true, fmt.Errorf("error solving underdetermined polynomial regression: %w", err)
		}
	}

	poly := make(daylight.Polynomial, cols)
	for i := range poly {
		poly[i] = coeffs.AtVec(i)
	}
	return poly, underdetermined, nil
}

// FitAll fits both hemispheres and returns coefficients ready for
// daylight.NewEstimator.
func FitAll(northern, southern []Observation, referenceDay, degree int) (daylight.Coefficients, error) {
	n, err := Fit(northern, referenceDay, daylight.Northern, degree)
	if err != nil {
		return daylight.Coefficients{}, fmt.Errorf("northern fit: %w", err)
	}
	s, err := Fit(southern, referenceDay, daylight.Southern, degree)
	if err != nil {
		return daylight.Coefficients{}, fmt.Errorf("southern fit: %w", err)
	}
	return daylight.Coefficients{Northern: n.Polynomial, Southern: s.Polynomial}, nil
}
