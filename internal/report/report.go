// Package report turns a pair of t-test results into the console report printed by the CLI.
package report

import (
	"fmt"

	"hypotest/domain/core"
	"hypotest/internal"
	"hypotest/internal/ttest"
)

// DefaultAlpha is the conventional significance level.
const DefaultAlpha = 0.05

// Input is what a report is built from.
type Input struct {
	Label1        string
	Label2        string
	Sample1       []float64
	Sample2       []float64
	Alpha         float64
	EqualVariance bool // selects which test drives the interpretation
}

// Interpretation is the decision against the null hypothesis of equal means.
type Interpretation struct {
	Method     string
	PValue     float64
	Alpha      float64
	Reject     bool
	Result     string
	Conclusion string
}

// Report carries everything the renderers print.
type Report struct {
	ID             core.RunID
	Fingerprint    core.SampleHash
	Label1         string
	Label2         string
	Sample1        []float64
	Sample2        []float64
	Alpha          float64
	Student        *ttest.Result
	Welch          *ttest.Result
	Interpretation Interpretation
	Effect         ttest.EffectSize
}

// Build runs both t-test variants and Cohen's d over the input.
func Build(in Input) (*Report, error) {
	alpha := in.Alpha
	if alpha == 0 {
		alpha = DefaultAlpha
	}
	if !(alpha > 0 && alpha < 1) {
		return nil, fmt.Errorf("alpha must be in (0, 1), got %v", alpha)
	}

	student, err := ttest.StudentTTest(in.Sample1, in.Sample2)
	if err != nil {
		return nil, err
	}
	welch, err := ttest.WelchTTest(in.Sample1, in.Sample2)
	if err != nil {
		return nil, err
	}
	effect, err := student.EffectSize()
	if err != nil {
		return nil, err
	}

	primary := welch
	if in.EqualVariance {
		primary = student
	}

	r := &Report{
		ID:             core.NewRunID(),
		Fingerprint:    core.ComputeSampleHash(in.Sample1, in.Sample2),
		Label1:         labelOr(in.Label1, "Group 1"),
		Label2:         labelOr(in.Label2, "Group 2"),
		Sample1:        in.Sample1,
		Sample2:        in.Sample2,
		Alpha:          alpha,
		Student:        student,
		Welch:          welch,
		Interpretation: Interpret(primary, alpha),
		Effect:         effect,
	}
	internal.DefaultLogger.Debug("report %s: inputs=%s method=%s p=%g reject=%t d=%.4f",
		r.ID, r.Fingerprint.Short(), primary.Method, primary.PValue, r.Interpretation.Reject, effect.D)
	return r, nil
}

// Interpret compares the result's p-value against alpha. p < alpha rejects the null hypothesis.
func Interpret(result *ttest.Result, alpha float64) Interpretation {
	in := Interpretation{
		Method: result.Method,
		PValue: result.PValue,
		Alpha:  alpha,
		Reject: result.Significant(alpha),
	}
	if in.Reject {
		in.Result = "REJECT the null hypothesis"
		in.Conclusion = "There IS a statistically significant difference between the two groups."
	} else {
		in.Result = "FAIL TO REJECT the null hypothesis"
		in.Conclusion = "There is NO statistically significant difference between the two groups."
	}
	return in
}

func labelOr(label, fallback string) string {
	if label == "" {
		return fallback
	}
	return label
}
