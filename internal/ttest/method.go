package ttest

import "math"

// Method derives the standard error of the mean difference and the degrees of freedom
// from two sample summaries.
type Method interface {
	Name() string
	Estimate(s1, s2 Summary) (standardError, degreesOfFreedom float64)
}

var (
	// Pooled assumes equal population variances (Student's t-test).
	Pooled Method = pooledMethod{}
	// Unpooled does not assume equal variances (Welch's t-test with Welch-Satterthwaite df).
	Unpooled Method = welchMethod{}
)

// MethodFor maps the equal-variance flag onto a method.
func MethodFor(equalVariance bool) Method {
	if equalVariance {
		return Pooled
	}
	return Unpooled
}

type pooledMethod struct{}

func (pooledMethod) Name() string { return "student" }

func (pooledMethod) Estimate(s1, s2 Summary) (float64, float64) {
	n1, n2 := float64(s1.Count), float64(s2.Count)
	se := math.Sqrt(pooledVariance(s1, s2) * (1/n1 + 1/n2))
	return se, n1 + n2 - 2
}

type welchMethod struct{}

func (welchMethod) Name() string { return "welch" }

func (welchMethod) Estimate(s1, s2 Summary) (float64, float64) {
	n1, n2 := float64(s1.Count), float64(s2.Count)
	a := s1.Variance / n1
	b := s2.Variance / n2
	se := math.Sqrt(a + b)
	// Welch-Satterthwaite on the shares of a+b, so squaring cannot under- or overflow.
	ra := a / (a + b)
	rb := b / (a + b)
	df := 1 / (ra*ra/(n1-1) + rb*rb/(n2-1))
	return se, df
}

// pooledVariance weights each sample variance by its degrees of freedom.
func pooledVariance(s1, s2 Summary) float64 {
	n1, n2 := float64(s1.Count), float64(s2.Count)
	return ((n1-1)*s1.Variance + (n2-1)*s2.Variance) / (n1 + n2 - 2)
}
