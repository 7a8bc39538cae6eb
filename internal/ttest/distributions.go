package ttest

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// StudentsTCDF returns P(T <= t) for a Student's t distribution with df degrees of
// freedom. df may be fractional.
func StudentsTCDF(t, df float64) float64 {
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	return dist.CDF(t)
}

// TwoTailedPValue computes 2 * (1 - CDF(|t|)), evaluated as 2 * CDF(-|t|) so the
// upper tail keeps its precision. Non-positive or NaN df yields 1.
func TwoTailedPValue(t, df float64) float64 {
	if math.IsNaN(df) || df <= 0 || math.IsNaN(t) {
		return 1.0
	}
	if math.IsInf(t, 0) {
		return 0
	}
	p := 2 * StudentsTCDF(-math.Abs(t), df)
	return math.Max(0, math.Min(1, p))
}
