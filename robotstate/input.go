// Package robotstate models joint groups and full robot states for roadmap planning.
package robotstate

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Input wraps the value of a mutable joint, e.g. a joint angle or a gantry position.
//   - revolute inputs should be in radians.
//   - prismatic inputs should be in mm.
type Input struct {
	Value float64
}

// FloatsToInputs wraps a slice of floats in Inputs.
func FloatsToInputs(values []float64) []Input {
	inputs := make([]Input, len(values))
	for i, f := range values {
		inputs[i] = Input{f}
	}
	return inputs
}

// InputsToFloats unwraps Inputs to raw floats.
func InputsToFloats(inputs []Input) []float64 {
	values := make([]float64, len(inputs))
	for i, f := range inputs {
		values[i] = f.Value
	}
	return values
}

// InputsL2Distance returns the two-norm between two Input sets, or +Inf if their lengths differ.
func InputsL2Distance(from, to []Input) float64 {
	if len(from) != len(to) {
		return math.Inf(1)
	}
	diff := make([]float64, 0, len(from))
	for i, f := range from {
		diff = append(diff, f.Value-to[i].Value)
	}
	// 2 is the L value returning a standard L2 Normalization
	return floats.Norm(diff, 2)
}
