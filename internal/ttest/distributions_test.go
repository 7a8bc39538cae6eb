package ttest

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mathext"
)

func TestStudentsTCDF(t *testing.T) {
	for _, df := range []float64{1, 2.5, 10, 15.489756533568217, 200} {
		assert.Equal(t, 0.5, StudentsTCDF(0, df))
		for _, x := range []float64{0.1, 1, 2.5, 7} {
			upper := StudentsTCDF(x, df)
			lower := StudentsTCDF(-x, df)
			assert.InDelta(t, 1.0, upper+lower, 1e-12, "symmetry at t=%v df=%v", x, df)
			assert.Greater(t, upper, 0.5)

			// P(T > x) = I_{df/(df+x^2)}(df/2, 1/2) / 2
			tail := 0.5 * mathext.RegIncBeta(df/2, 0.5, df/(df+x*x))
			assert.InDelta(t, 1-tail, upper, 1e-12, "incomplete beta identity at t=%v df=%v", x, df)
		}
	}
}

func TestTwoTailedPValue(t *testing.T) {
	tests := []struct {
		name  string
		t, df float64
		want  float64
		delta float64
	}{
		{"zero statistic", 0, 10, 1, 0},
		{"critical value df=10", 2.228138851986274, 10, 0.05, 1e-9},
		{"negative critical value", -2.228138851986274, 10, 0.05, 1e-9},
		{"cauchy", 1, 1, 0.5, 1e-12},
		{"infinite statistic", math.Inf(1), 5, 0, 0},
		{"zero df", 3, 0, 1, 0},
		{"negative df", 3, -1, 1, 0},
		{"NaN df", 3, math.NaN(), 1, 0},
		{"NaN statistic", math.NaN(), 4, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, TwoTailedPValue(tt.t, tt.df), tt.delta)
		})
	}
}

func TestTwoTailedPValueDecreasesWithT(t *testing.T) {
	prev := 1.0
	for x := 0.25; x < 10; x += 0.25 {
		p := TwoTailedPValue(x, 7.3)
		assert.Less(t, p, prev)
		assert.GreaterOrEqual(t, p, 0.0)
		prev = p
	}
}

func TestTwoTailedPValueKeepsUpperTail(t *testing.T) {
	tests := []struct {
		t, df float64
		want  float64
	}{
		{20, 30, 6.749083665771233e-19},
		{40, 30, 1.372604519440629e-27},
	}

	for _, tt := range tests {
		assert.InEpsilon(t, tt.want, TwoTailedPValue(tt.t, tt.df), 1e-9, "t=%v df=%v", tt.t, tt.df)
		assert.InEpsilon(t, tt.want, TwoTailedPValue(-tt.t, tt.df), 1e-9, "t=%v df=%v", -tt.t, tt.df)
	}

	for _, x := range []float64{3, 10, 25} {
		want := mathext.RegIncBeta(15, 0.5, 30/(30+x*x))
		assert.InEpsilon(t, want, TwoTailedPValue(x, 30), 1e-12, "t=%v", x)
	}
}
