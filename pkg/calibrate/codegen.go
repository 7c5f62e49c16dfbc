package calibrate

import (
	"fmt"
	"io"

	"github.com/chrissnell/daylight/pkg/daylight"
)

// GenerateCode writes a Go snippet that hard-codes the fitted coefficients,
// for pasting into a daylight.Coefficients literal.
func GenerateCode(w io.Writer, north, south *FitResult) error {
	if _, err := fmt.Fprintf(w, "// Amplitude polynomials - %s fit on day %d\n", north.ModelType, north.ReferenceDay); err != nil {
		return err
	}
	fmt.Fprintf(w, "// Northern: %d samples, R² = %.4f, RMSE = %.4f\n",
		len(north.Samples), north.RSquared, north.RootMeanSquaredError)
	fmt.Fprintf(w, "// Southern: %d samples, R² = %.4f, RMSE = %.4f\n",
		len(south.Samples), south.RSquared, south.RootMeanSquaredError)
	fmt.Fprintf(w, "var fitted = daylight.Coefficients{\n")
	fmt.Fprintf(w, "\tNorthern: %s,\n", polynomialLiteral(north.Polynomial))
	fmt.Fprintf(w, "\tSouthern: %s,\n", polynomialLiteral(south.Polynomial))
	_, err := fmt.Fprintf(w, "}\n")
	return err
}

func polynomialLiteral(p daylight.Polynomial) string {
	s := "daylight.Polynomial{"
	for i, c := range p {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%.6f", c)
	}
	return s + "}"
}
