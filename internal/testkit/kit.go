package testkit

// Fixture is a named pair of samples with a known comparison outcome.
type Fixture struct {
	Name    string
	Label1  string
	Label2  string
	Sample1 []float64
	Sample2 []float64
}

// ExampleScores returns the two groups of test scores used by the demonstration report.
// Each call returns fresh slices.
func ExampleScores() Fixture {
	return Fixture{
		Name:    "test_scores",
		Label1:  "Group 1",
		Label2:  "Group 2",
		Sample1: []float64{85, 90, 78, 92, 88, 76, 95, 89, 84, 91},
		Sample2: []float64{70, 75, 68, 80, 72, 74, 78, 71, 69, 76},
	}
}

// ConstantSamples returns two identical zero-variance samples.
func ConstantSamples() Fixture {
	return Fixture{
		Name:    "constant",
		Label1:  "Group 1",
		Label2:  "Group 2",
		Sample1: []float64{5, 5, 5},
		Sample2: []float64{5, 5, 5},
	}
}
