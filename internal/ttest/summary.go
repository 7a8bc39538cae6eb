package ttest

import (
	"math"

	"hypotest/domain/core"

	"github.com/montanaflynn/stats"
)

// MinSampleSize is the smallest sample with a defined sample variance.
const MinSampleSize = 2

// Describe validates a sample and returns its count, mean and sample variance.
func Describe(sample Sample) (Summary, error) {
	return describe("sample", sample)
}

func describe(name string, sample Sample) (Summary, error) {
	if len(sample) < MinSampleSize {
		return Summary{}, &InsufficientDataError{Sample: name, Size: len(sample)}
	}
	for i, v := range sample {
		if math.IsNaN(v) {
			return Summary{}, core.NewSampleError(name, i, "is NaN")
		}
		if math.IsInf(v, 0) {
			return Summary{}, core.NewSampleError(name, i, "is infinite")
		}
	}

	data := stats.Float64Data(sample)
	mean, err := stats.Mean(data)
	if err != nil {
		return Summary{}, err
	}
	variance, err := stats.SampleVariance(data)
	if err != nil {
		return Summary{}, err
	}
	if math.IsInf(variance, 0) {
		return Summary{}, &DegenerateInputError{Reason: name + " variance overflows"}
	}

	return Summary{
		Count:    len(sample),
		Mean:     mean,
		Variance: variance,
		StdDev:   math.Sqrt(variance),
	}, nil
}

func describeBoth(sample1, sample2 Sample) (Summary, Summary, error) {
	s1, err := describe("sample1", sample1)
	if err != nil {
		return Summary{}, Summary{}, err
	}
	s2, err := describe("sample2", sample2)
	if err != nil {
		return Summary{}, Summary{}, err
	}
	return s1, s2, nil
}
