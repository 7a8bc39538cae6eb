package testkit

import (
	"math/rand"
)

// SampleGeneratorConfig configures a pair of normally distributed samples.
type SampleGeneratorConfig struct {
	N1    int     `json:"n1"`
	N2    int     `json:"n2"`
	Mean1 float64 `json:"mean1"`
	Mean2 float64 `json:"mean2"`
	SD1   float64 `json:"sd1"`
	SD2   float64 `json:"sd2"`
	Seed  int64   `json:"seed"`
}

// DefaultSampleConfig returns two moderately sized groups half a standard deviation apart.
func DefaultSampleConfig() SampleGeneratorConfig {
	return SampleGeneratorConfig{
		N1:    30,
		N2:    30,
		Mean1: 10,
		Mean2: 9,
		SD1:   2,
		SD2:   2,
		Seed:  42,
	}
}

// SampleGenerator draws reproducible normal samples.
type SampleGenerator struct {
	config SampleGeneratorConfig
	rng    *rand.Rand
}

// NewSampleGenerator creates a generator seeded from config.Seed
func NewSampleGenerator(config SampleGeneratorConfig) *SampleGenerator {
	return &SampleGenerator{
		config: config,
		rng:    rand.New(rand.NewSource(config.Seed)),
	}
}

// Generate returns the next pair of samples from the stream.
func (g *SampleGenerator) Generate() ([]float64, []float64) {
	return g.normal(g.config.N1, g.config.Mean1, g.config.SD1),
		g.normal(g.config.N2, g.config.Mean2, g.config.SD2)
}

// Pairs returns count independent sample pairs.
func (g *SampleGenerator) Pairs(count int) []Fixture {
	fixtures := make([]Fixture, count)
	for i := range fixtures {
		s1, s2 := g.Generate()
		fixtures[i] = Fixture{Name: "generated", Label1: "Group 1", Label2: "Group 2", Sample1: s1, Sample2: s2}
	}
	return fixtures
}

func (g *SampleGenerator) normal(n int, mean, sd float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = mean + g.rng.NormFloat64()*sd
	}
	return out
}
