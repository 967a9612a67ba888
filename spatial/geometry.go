package spatial

import (
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

// Geometry is an occupancy test over 3D space, used to discretize obstacles into collision voxels.
type Geometry interface {
	// ContainsPoint reports whether the given point lies inside the geometry.
	ContainsPoint(pt r3.Vector) bool
}

// Box is an axis-aligned rectangular prism.
type Box struct {
	center      r3.Vector
	halfExtents r3.Vector
}

// NewBox constructs a box from its center and full extents along each axis.
func NewBox(center, dims r3.Vector) (*Box, error) {
	if dims.X <= 0 || dims.Y <= 0 || dims.Z <= 0 {
		return nil, errors.Errorf("box dimensions must be positive, got %v", dims)
	}
	return &Box{center: center, halfExtents: dims.Mul(0.5)}, nil
}

// ContainsPoint reports whether the given point lies inside the box.
func (b *Box) ContainsPoint(pt r3.Vector) bool {
	diff := pt.Sub(b.center)
	return diff.X >= -b.halfExtents.X && diff.X <= b.halfExtents.X &&
		diff.Y >= -b.halfExtents.Y && diff.Y <= b.halfExtents.Y &&
		diff.Z >= -b.halfExtents.Z && diff.Z <= b.halfExtents.Z
}

// Sphere is a ball around a center point.
type Sphere struct {
	center r3.Vector
	radius float64
}

// NewSphere constructs a sphere from its center and radius.
func NewSphere(center r3.Vector, radius float64) (*Sphere, error) {
	if radius <= 0 {
		return nil, errors.Errorf("sphere radius must be positive, got %f", radius)
	}
	return &Sphere{center: center, radius: radius}, nil
}

// ContainsPoint reports whether the given point lies inside the sphere.
func (s *Sphere) ContainsPoint(pt r3.Vector) bool {
	return pt.Sub(s.center).Norm() <= s.radius
}
