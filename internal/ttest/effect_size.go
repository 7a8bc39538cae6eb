package ttest

import "math"

// Magnitude is Cohen's conventional label for an effect size.
type Magnitude string

const (
	MagnitudeNegligible Magnitude = "negligible"
	MagnitudeSmall      Magnitude = "small"
	MagnitudeMedium     Magnitude = "medium"
	MagnitudeLarge      Magnitude = "large"
)

// Band lower bounds. A value equal to a bound belongs to the band above it.
const (
	SmallEffectThreshold  = 0.2
	MediumEffectThreshold = 0.5
	LargeEffectThreshold  = 0.8
)

// EffectSize pairs Cohen's d with its magnitude label.
type EffectSize struct {
	D         float64   `json:"d"`
	Magnitude Magnitude `json:"magnitude"`
}

// CohensD is the mean difference divided by the pooled standard deviation.
func CohensD(sample1, sample2 Sample) (float64, error) {
	s1, s2, err := describeBoth(sample1, sample2)
	if err != nil {
		return 0, err
	}
	return cohensD(s1, s2)
}

func cohensD(s1, s2 Summary) (float64, error) {
	pooledSD := math.Sqrt(pooledVariance(s1, s2))
	if pooledSD == 0 {
		return 0, &DegenerateInputError{Reason: "pooled standard deviation is zero"}
	}
	return (s1.Mean - s2.Mean) / pooledSD, nil
}

// ClassifyEffect labels |d| using Cohen's 0.2 / 0.5 / 0.8 convention.
func ClassifyEffect(d float64) Magnitude {
	switch abs := math.Abs(d); {
	case abs < SmallEffectThreshold:
		return MagnitudeNegligible
	case abs < MediumEffectThreshold:
		return MagnitudeSmall
	case abs < LargeEffectThreshold:
		return MagnitudeMedium
	default:
		return MagnitudeLarge
	}
}

// EffectSizeOf computes Cohen's d and classifies it.
func EffectSizeOf(sample1, sample2 Sample) (EffectSize, error) {
	d, err := CohensD(sample1, sample2)
	if err != nil {
		return EffectSize{}, err
	}
	return EffectSize{D: d, Magnitude: ClassifyEffect(d)}, nil
}

// EffectSize derives Cohen's d from the summaries already held by the result.
func (r *Result) EffectSize() (EffectSize, error) {
	d, err := cohensD(r.Sample1, r.Sample2)
	if err != nil {
		return EffectSize{}, err
	}
	return EffectSize{D: d, Magnitude: ClassifyEffect(d)}, nil
}
