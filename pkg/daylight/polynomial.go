package daylight

import (
	"fmt"
	"strings"
)

// Polynomial holds coefficients in ascending power order, so that
// p(x) = c0 + c1*x + c2*x² + ...
type Polynomial []float64

// Eval evaluates the polynomial at x using Horner's rule.
func (p Polynomial) Eval(x float64) float64 {
	result := 0.0
	for i := len(p) - 1; i >= 0; i-- {
		result = result*x + p[i]
	}
	return result
}

// Degree returns the polynomial degree, or -1 for an empty polynomial.
func (p Polynomial) Degree() int {
	return len(p) - 1
}

// HighestFirst returns the coefficients ordered from the highest power down,
// the way they are usually published.
func (p Polynomial) HighestFirst() []float64 {
	out := make([]float64, len(p))
	for i, c := range p {
		out[len(p)-1-i] = c
	}
	return out
}

// Format renders the polynomial with the given variable name, highest power
// first, e.g. "-0.000006 * lat^3 + 0.001529 * lat^2 + 0.016594 * lat + 0.103280".
func (p Polynomial) Format(variable string) string {
	if len(p) == 0 {
		return "0"
	}

	var b strings.Builder
	for i := len(p) - 1; i >= 0; i-- {
		c := p[i]
		if i == len(p)-1 {
			fmt.Fprintf(&b, "%.6f", c)
		} else if c < 0 {
			fmt.Fprintf(&b, " - %.6f", -c)
		} else {
			fmt.Fprintf(&b, " + %.6f", c)
		}

		switch i {
		case 0:
		case 1:
			fmt.Fprintf(&b, " * %s", variable)
		default:
			fmt.Fprintf(&b, " * %s^%d", variable, i)
		}
	}
	return b.String()
}

func (p Polynomial) String() string {
	return p.Format("x")
}

// Coefficients is the pair of amplitude polynomials the Estimator is
// configured with. The southern polynomial takes |latitude|.
type Coefficients struct {
	Northern Polynomial
	Southern Polynomial
}

// Published fits from the January 19th observation tables.
var (
	CubicCoefficients = Coefficients{
		Northern: Polynomial{0.103280, 0.016594, 0.001529, -0.000006},
		Southern: Polynomial{0.114980, 0.061293, -0.000446, 0.000017},
	}

	LinearCoefficients = Coefficients{
		Northern: Polynomial{9.8, 0.051},
		Southern: Polynomial{-1.96, 0.225},
	}
)

// PresetCoefficients returns the published coefficients for degree 1 or 3.
func PresetCoefficients(degree int) (Coefficients, error) {
	switch degree {
	case 1:
		return LinearCoefficients, nil
	case 3:
		return CubicCoefficients, nil
	default:
		return Coefficients{}, fmt.Errorf("%w %d", ErrUnknownPreset, degree)
	}
}

// For returns the polynomial for hemisphere h.
func (c Coefficients) For(h Hemisphere) Polynomial {
	if h == Southern {
		return c.Southern
	}
	return c.Northern
}
