package roadmap

import (
	"math"

	"github.com/pathbound/roadmapplan/robotstate"
)

// Config is a single roadmap configuration, one value per active joint, stored at the reduced
// precision used for roadmap matching.
type Config []float32

// ConfigFromFloats narrows a slice of joint positions to roadmap precision.
func ConfigFromFloats(values []float64) Config {
	config := make(Config, len(values))
	for i, v := range values {
		config[i] = float32(v)
	}
	return config
}

// ConfigFromInputs narrows a set of joint inputs to roadmap precision.
func ConfigFromInputs(inputs []robotstate.Input) Config {
	return ConfigFromFloats(robotstate.InputsToFloats(inputs))
}

// Floats widens a config back to request precision.
func (c Config) Floats() []float64 {
	values := make([]float64, len(c))
	for i, v := range c {
		values[i] = float64(v)
	}
	return values
}

// L2Distance returns the two-norm between two configs, or +Inf if their lengths differ.
func L2Distance(a, b Config) float64 {
	if len(a) != len(b) {
		return math.Inf(1)
	}
	dist := 0.
	for i, v := range a {
		diff := float64(v - b[i])
		dist += diff * diff
	}
	return math.Sqrt(dist)
}
