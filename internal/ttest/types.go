// Package ttest compares the means of two independent samples with Student's
// pooled-variance t-test or Welch's unequal-variance t-test.
package ttest

// Sample is an ordered set of observations. Operations never modify it.
type Sample []float64

// Summary holds the descriptive statistics a t-test is built from.
type Summary struct {
	Count    int     `json:"count"`
	Mean     float64 `json:"mean"`
	Variance float64 `json:"variance"` // sample variance, divisor n-1
	StdDev   float64 `json:"std_dev"`
}

// Result is the outcome of one two-sample t-test.
type Result struct {
	Method           string  `json:"method"`
	TStatistic       float64 `json:"t_statistic"`
	PValue           float64 `json:"p_value"`
	DegreesOfFreedom float64 `json:"degrees_of_freedom"`
	StandardError    float64 `json:"standard_error"`
	Sample1          Summary `json:"sample1"`
	Sample2          Summary `json:"sample2"`
}

// Significant reports whether the null hypothesis of equal means is rejected at alpha.
func (r *Result) Significant(alpha float64) bool {
	return r.PValue < alpha
}

// MeanDifference is mean1 - mean2.
func (r *Result) MeanDifference() float64 {
	return r.Sample1.Mean - r.Sample2.Mean
}
