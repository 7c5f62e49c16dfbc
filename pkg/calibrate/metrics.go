package calibrate

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/chrissnell/daylight/pkg/daylight"
)

// score fills in predictions and the quality metrics of r.
func (r *FitResult) score() {
	n := float64(len(r.Samples))
	k := float64(r.Degree + 1)

	observed := make([]float64, len(r.Samples))
	predicted := make([]float64, len(r.Samples))
	for i := range r.Samples {
		r.Samples[i].Predicted = r.Polynomial.Eval(r.Samples[i].X)
		observed[i] = r.Samples[i].Amplitude
		predicted[i] = r.Samples[i].Predicted
	}

	r.RSquared = rSquared(predicted, observed)
	r.AdjustedRSquared = adjustedRSquared(r.RSquared, n, k)
	r.MeanAbsoluteError = meanAbsoluteError(predicted, observed)
	r.RootMeanSquaredError = rootMeanSquaredError(predicted, observed)
	r.AIC = aic(n, r.RootMeanSquaredError, k)
	r.BIC = bic(n, r.RootMeanSquaredError, k)
}

// Residuals returns observed minus fitted amplitude per sample.
func (r *FitResult) Residuals() []float64 {
	res := make([]float64, len(r.Samples))
	for i, s := range r.Samples {
		res[i] = s.Amplitude - s.Predicted
	}
	return res
}

func rSquared(predicted, observed []float64) float64 {
	if len(observed) < 2 || stat.Variance(observed, nil) == 0 {
		return 0
	}
	return stat.RSquaredFrom(predicted, observed, nil)
}

func adjustedRSquared(r2, n, k float64) float64 {
	if n-k-1 <= 0 {
		return 0
	}
	return 1 - ((1-r2)*(n-1))/(n-k-1)
}

func meanAbsoluteError(predicted, observed []float64) float64 {
	var sum float64
	for i := range observed {
		sum += math.Abs(observed[i] - predicted[i])
	}
	return sum / float64(len(observed))
}

func rootMeanSquaredError(predicted, observed []float64) float64 {
	var sum float64
	for i := range observed {
		d := observed[i] - predicted[i]
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(observed)))
}

func aic(n, rmse, k float64) float64 {
	// AIC = 2k + n*ln(SSE/n)
	sse := n * rmse * rmse
	if sse <= 0 {
		return math.Inf(1)
	}
	return 2*k + n*math.Log(sse/n)
}

func bic(n, rmse, k float64) float64 {
	// BIC = k*ln(n) + n*ln(SSE/n)
	sse := n * rmse * rmse
	if sse <= 0 {
		return math.Inf(1)
	}
	return k*math.Log(n) + n*math.Log(sse/n)
}

// CompareDegrees fits each degree and returns the results sorted by AIC,
// best first. Exact fits (no residual) sort last since they carry no
// information about fit quality.
func CompareDegrees(obs []Observation, referenceDay int, h daylight.Hemisphere, degrees ...int) ([]*FitResult, error) {
	results := make([]*FitResult, 0, len(degrees))
	for _, d := range degrees {
		r, err := Fit(obs, referenceDay, h, d)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].AIC < results[j].AIC
	})
	return results, nil
}
