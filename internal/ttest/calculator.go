package ttest

import (
	"math"

	"hypotest/internal"
)

// Compute runs a two-sample t-test. equalVariance selects Student's pooled test,
// otherwise Welch's test is used.
func Compute(sample1, sample2 Sample, equalVariance bool) (*Result, error) {
	return ComputeWith(MethodFor(equalVariance), sample1, sample2)
}

// StudentTTest is Compute with equal variances assumed.
func StudentTTest(sample1, sample2 Sample) (*Result, error) {
	return ComputeWith(Pooled, sample1, sample2)
}

// WelchTTest is Compute without the equal variance assumption.
func WelchTTest(sample1, sample2 Sample) (*Result, error) {
	return ComputeWith(Unpooled, sample1, sample2)
}

// ComputeWith runs the t-test using the given method.
func ComputeWith(method Method, sample1, sample2 Sample) (*Result, error) {
	s1, s2, err := describeBoth(sample1, sample2)
	if err != nil {
		return nil, err
	}

	se, df := method.Estimate(s1, s2)
	internal.DefaultLogger.Trace("ttest: method=%s n1=%d n2=%d se=%g df=%g", method.Name(), s1.Count, s2.Count, se, df)
	if se == 0 {
		return nil, &DegenerateInputError{Reason: "standard error is zero"}
	}
	if math.IsNaN(se) || math.IsInf(se, 0) {
		return nil, &DegenerateInputError{Reason: "standard error is not finite"}
	}
	if math.IsNaN(df) || math.IsInf(df, 0) || df <= 0 {
		return nil, &DegenerateInputError{Reason: "degrees of freedom are not finite and positive"}
	}

	t := (s1.Mean - s2.Mean) / se

	return &Result{
		Method:           method.Name(),
		TStatistic:       t,
		PValue:           TwoTailedPValue(t, df),
		DegreesOfFreedom: df,
		StandardError:    se,
		Sample1:          s1,
		Sample2:          s2,
	}, nil
}
