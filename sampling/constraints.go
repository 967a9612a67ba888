// Package sampling builds constraint-satisfying goal configurations by rejection sampling.
package sampling

import (
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"
)

// JointConstraint bounds a single named joint around a target position.
type JointConstraint struct {
	JointName      string
	Position       float64
	ToleranceAbove float64
	ToleranceBelow float64
}

// PositionConstraint bounds the position of a link in the roadmap's base frame.
type PositionConstraint struct {
	LinkName  string
	Target    r3.Vector
	Tolerance float64
}

// OrientationConstraint bounds the orientation of a link, as an angular tolerance in radians.
type OrientationConstraint struct {
	LinkName  string
	Target    quat.Number
	Tolerance float64
}

// Constraints is one symbolic goal constraint: any combination of joint-value bounds and a
// pose region for a link. A Constraints value with no members describes nothing and is skipped
// by goal extraction.
type Constraints struct {
	JointConstraints      []JointConstraint
	PositionConstraint    *PositionConstraint
	OrientationConstraint *OrientationConstraint
}

// Empty reports whether the constraint has no members at all.
func (c *Constraints) Empty() bool {
	return len(c.JointConstraints) == 0 && c.PositionConstraint == nil && c.OrientationConstraint == nil
}
