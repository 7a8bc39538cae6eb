package ttest

import (
	"errors"
	"math"
	"testing"

	"hypotest/domain/core"
	"hypotest/internal/testkit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-9

func TestCompute_ExampleScores(t *testing.T) {
	fx := testkit.ExampleScores()

	student, err := Compute(fx.Sample1, fx.Sample2, true)
	require.NoError(t, err)
	assert.Equal(t, "student", student.Method)
	assert.InDelta(t, 86.8, student.Sample1.Mean, tolerance)
	assert.InDelta(t, 73.3, student.Sample2.Mean, tolerance)
	assert.InDelta(t, 6.0882400303098, student.Sample1.StdDev, 1e-9)
	assert.InDelta(t, 3.973523485382827, student.Sample2.StdDev, 1e-9)
	assert.InDelta(t, 5.8720324580288015, student.TStatistic, 1e-9)
	assert.Equal(t, 18.0, student.DegreesOfFreedom)
	assert.InDelta(t, 1.4662234682249909e-05, student.PValue, 1e-10)
	assert.Less(t, student.PValue, 0.001)
	assert.True(t, student.Significant(0.05))

	welch, err := Compute(fx.Sample1, fx.Sample2, false)
	require.NoError(t, err)
	assert.Equal(t, "welch", welch.Method)
	assert.InDelta(t, student.TStatistic, welch.TStatistic, tolerance) // equal n
	assert.InDelta(t, 15.489756533568217, welch.DegreesOfFreedom, 1e-9)
	assert.InDelta(t, 2.6935012248562345e-05, welch.PValue, 1e-10)
}

// Reference values match R's t.test and the Go perf tooling's two-sample tests.
func TestCompute_ReferenceValues(t *testing.T) {
	s1 := []float64{2, 1, 3, 4}
	s2 := []float64{6, 5, 7, 9}

	tests := []struct {
		name          string
		equalVariance bool
		wantT         float64
		wantP         float64
		wantDF        float64
	}{
		{"student", true, -3.9703446152237674, 0.0073640592242113214, 6},
		{"welch", false, -3.9703446152237674, 0.0085128631313781695, 5.584615384615385},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Compute(s1, s2, tt.equalVariance)
			require.NoError(t, err)
			assert.InDelta(t, tt.wantT, r.TStatistic, 1e-9)
			assert.InDelta(t, tt.wantP, r.PValue, 1e-9)
			assert.InDelta(t, tt.wantDF, r.DegreesOfFreedom, 1e-9)
		})
	}
}

func TestCompute_IdenticalSamplesGiveZeroT(t *testing.T) {
	s := []float64{2, 1, 3, 4}
	for _, equal := range []bool{true, false} {
		r, err := Compute(s, s, equal)
		require.NoError(t, err)
		assert.Equal(t, 0.0, r.TStatistic)
		assert.Equal(t, 1.0, r.PValue)
		assert.Equal(t, 6.0, r.DegreesOfFreedom)
	}
}

func TestCompute_SampleSizeBoundary(t *testing.T) {
	r, err := Compute([]float64{1, 2}, []float64{3, 5}, true)
	require.NoError(t, err)
	assert.InDelta(t, -2.23606797749979, r.TStatistic, 1e-9)
	assert.Equal(t, 2.0, r.DegreesOfFreedom)
	assert.InDelta(t, 0.15484574527148334, r.PValue, 1e-9)

	tests := []struct {
		name       string
		s1, s2     []float64
		wantSample string
		wantSize   int
	}{
		{"first sample of one", []float64{1}, []float64{1, 2, 3}, "sample1", 1},
		{"second sample of one", []float64{1, 2, 3}, []float64{4}, "sample2", 1},
		{"empty first sample", nil, []float64{1, 2}, "sample1", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, equal := range []bool{true, false} {
				r, err := Compute(tt.s1, tt.s2, equal)
				require.Error(t, err)
				assert.Nil(t, r)

				var insufficient *InsufficientDataError
				require.True(t, errors.As(err, &insufficient), "expected InsufficientDataError, got %T", err)
				assert.Equal(t, tt.wantSample, insufficient.Sample)
				assert.Equal(t, tt.wantSize, insufficient.Size)
				assert.ErrorIs(t, err, core.ErrInsufficientData)
			}
		})
	}
}

func TestCompute_DegenerateInput(t *testing.T) {
	fx := testkit.ConstantSamples()

	for _, equal := range []bool{true, false} {
		r, err := Compute(fx.Sample1, fx.Sample2, equal)
		assert.Nil(t, r)

		var degenerate *DegenerateInputError
		require.True(t, errors.As(err, &degenerate), "expected DegenerateInputError, got %v", err)
		assert.ErrorIs(t, err, core.ErrDegenerateInput)
	}

	// Different constants still have zero standard error.
	_, err := Compute([]float64{1, 1}, []float64{2, 2, 2}, false)
	assert.ErrorIs(t, err, core.ErrDegenerateInput)
}

func TestCompute_OneConstantSample(t *testing.T) {
	r, err := Compute([]float64{5, 5, 5, 5}, []float64{1, 2, 3}, false)
	require.NoError(t, err)
	// Welch-Satterthwaite collapses to the varying sample's n-1.
	assert.InDelta(t, 2.0, r.DegreesOfFreedom, tolerance)
	assert.InDelta(t, 3/math.Sqrt(1.0/3.0), r.TStatistic, tolerance)
}

func TestCompute_RejectsNonFiniteObservations(t *testing.T) {
	tests := []struct {
		name   string
		s1, s2 []float64
	}{
		{"NaN", []float64{1, math.NaN(), 3}, []float64{1, 2}},
		{"positive infinity", []float64{1, 2}, []float64{math.Inf(1), 2}},
		{"negative infinity", []float64{math.Inf(-1), 2}, []float64{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compute(tt.s1, tt.s2, true)
			assert.ErrorIs(t, err, core.ErrInvalidSample)
		})
	}
}

func TestCompute_DoesNotModifyInputs(t *testing.T) {
	s1 := []float64{3, 1, 2}
	s2 := []float64{9, 7, 8, 6}

	_, err := Compute(s1, s2, false)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 1, 2}, s1)
	assert.Equal(t, []float64{9, 7, 8, 6}, s2)
}

func TestPooledAndWelchAgreeOnEqualVariances(t *testing.T) {
	// Both samples have variance exactly 1 but different sizes.
	s1 := []float64{10, 11, 12}
	s2 := []float64{0, 0, 1, 2, 2}

	student, err := StudentTTest(s1, s2)
	require.NoError(t, err)
	welch, err := WelchTTest(s1, s2)
	require.NoError(t, err)

	require.Equal(t, student.Sample1.Variance, student.Sample2.Variance)
	assert.InDelta(t, student.TStatistic, welch.TStatistic, tolerance)
	assert.Equal(t, 6.0, student.DegreesOfFreedom)
	assert.NotEqual(t, student.DegreesOfFreedom, welch.DegreesOfFreedom)
}

func TestProperties_GeneratedSamples(t *testing.T) {
	configs := []testkit.SampleGeneratorConfig{
		testkit.DefaultSampleConfig(),
		{N1: 5, N2: 40, Mean1: 0, Mean2: 0.5, SD1: 1, SD2: 4, Seed: 7},
		{N1: 2, N2: 3, Mean1: 100, Mean2: 90, SD1: 10, SD2: 1, Seed: 11},
		{N1: 12, N2: 12, Mean1: -3, Mean2: -3, SD1: 0.5, SD2: 2.5, Seed: 99},
	}

	for _, cfg := range configs {
		for _, fx := range testkit.NewSampleGenerator(cfg).Pairs(20) {
			n1, n2 := float64(len(fx.Sample1)), float64(len(fx.Sample2))

			student, err := StudentTTest(fx.Sample1, fx.Sample2)
			require.NoError(t, err)
			welch, err := WelchTTest(fx.Sample1, fx.Sample2)
			require.NoError(t, err)

			assert.Equal(t, n1+n2-2, student.DegreesOfFreedom)
			assert.LessOrEqual(t, welch.DegreesOfFreedom, n1+n2-2+tolerance)
			assert.GreaterOrEqual(t, welch.DegreesOfFreedom, math.Min(n1, n2)-1-tolerance)

			for _, r := range []*Result{student, welch} {
				assert.GreaterOrEqual(t, r.PValue, 0.0)
				assert.LessOrEqual(t, r.PValue, 1.0)
			}

			if cfg.N1 == cfg.N2 {
				assert.InDelta(t, student.TStatistic, welch.TStatistic, tolerance)
			}

			for _, equal := range []bool{true, false} {
				forward, err := Compute(fx.Sample1, fx.Sample2, equal)
				require.NoError(t, err)
				swapped, err := Compute(fx.Sample2, fx.Sample1, equal)
				require.NoError(t, err)

				assert.Equal(t, -forward.TStatistic, swapped.TStatistic)
				assert.Equal(t, forward.PValue, swapped.PValue)
				assert.Equal(t, forward.DegreesOfFreedom, swapped.DegreesOfFreedom)
			}
		}
	}
}

func TestComputeIsDeterministic(t *testing.T) {
	fx := testkit.ExampleScores()
	first, err := Compute(fx.Sample1, fx.Sample2, false)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := Compute(fx.Sample1, fx.Sample2, false)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func scaled(sample []float64, factor float64) []float64 {
	out := make([]float64, len(sample))
	for i, v := range sample {
		out[i] = v * factor
	}
	return out
}

func TestWelch_ScaleInvariance(t *testing.T) {
	s1 := []float64{0, 1, 2}
	s2 := []float64{5, 6, 8}

	base, err := WelchTTest(s1, s2)
	require.NoError(t, err)
	assert.InDelta(t, 3.448, base.DegreesOfFreedom, 1e-3)
	assert.InDelta(t, 0.0106, base.PValue, 1e-4)

	// Squared variance shares underflow (1e-150) or overflow (1e150) in float64.
	for _, factor := range []float64{1e-150, 1e150} {
		r, err := WelchTTest(scaled(s1, factor), scaled(s2, factor))
		require.NoError(t, err, "factor %g", factor)
		assert.InEpsilon(t, base.TStatistic, r.TStatistic, 1e-12, "factor %g", factor)
		assert.InEpsilon(t, base.DegreesOfFreedom, r.DegreesOfFreedom, 1e-12, "factor %g", factor)
		assert.InEpsilon(t, base.PValue, r.PValue, 1e-10, "factor %g", factor)
	}

	// Subnormal variances lose digits but must still give a usable result.
	r, err := WelchTTest(scaled(s1, 1e-160), scaled(s2, 1e-160))
	require.NoError(t, err)
	assert.InEpsilon(t, base.TStatistic, r.TStatistic, 1e-2)
	assert.InEpsilon(t, base.DegreesOfFreedom, r.DegreesOfFreedom, 1e-2)
	assert.InEpsilon(t, base.PValue, r.PValue, 5e-2)
	assert.GreaterOrEqual(t, r.DegreesOfFreedom, 2.0)
	assert.LessOrEqual(t, r.DegreesOfFreedom, 4.0)
}

type fixedMethod struct{ se, df float64 }

func (fixedMethod) Name() string                               { return "fixed" }
func (m fixedMethod) Estimate(_, _ Summary) (float64, float64) { return m.se, m.df }

func TestComputeWith_RejectsInvalidDegreesOfFreedom(t *testing.T) {
	for _, df := range []float64{math.NaN(), math.Inf(1), 0, -1} {
		r, err := ComputeWith(fixedMethod{se: 1, df: df}, []float64{1, 2}, []float64{3, 4})
		assert.Nil(t, r)

		var degenerate *DegenerateInputError
		require.True(t, errors.As(err, &degenerate), "df=%v: expected DegenerateInputError, got %v", df, err)
	}
}
