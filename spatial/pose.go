// Package spatial provides the pose and geometry math used by roadmap planning.
package spatial

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"
)

// Pose represents a position and orientation in 3D space. Orientations are unit quaternions.
type Pose struct {
	Point       r3.Vector
	Orientation quat.Number
}

// NewZeroPose returns a pose at the origin with an identity orientation.
func NewZeroPose() Pose {
	return Pose{Orientation: quat.Number{Real: 1}}
}

// NewPoseFromPoint returns a pose at the given point with an identity orientation.
func NewPoseFromPoint(pt r3.Vector) Pose {
	return Pose{Point: pt, Orientation: quat.Number{Real: 1}}
}

// NewPose returns a pose at the given point with the given orientation, normalized to a unit quaternion.
func NewPose(pt r3.Vector, o quat.Number) Pose {
	return Pose{Point: pt, Orientation: Normalize(o)}
}

// Normalize scales a quaternion to unit length. A zero quaternion becomes the identity.
func Normalize(q quat.Number) quat.Number {
	length := quat.Abs(q)
	if length == 0 {
		return quat.Number{Real: 1}
	}
	return quat.Scale(1/length, q)
}

// OrientationBetween returns the angular distance between two orientations, in radians.
func OrientationBetween(a, b quat.Number) float64 {
	delta := quat.Mul(quat.Conj(Normalize(a)), Normalize(b))
	w := math.Abs(delta.Real)
	if w > 1 {
		w = 1
	}
	return 2 * math.Acos(w)
}

// PoseDistance returns the linear distance between the points of two poses.
func PoseDistance(a, b Pose) float64 {
	return a.Point.Sub(b.Point).Norm()
}
