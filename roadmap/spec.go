// Package roadmap defines the identity, contents and lookups of precomputed roadmaps.
package roadmap

import (
	"github.com/golang/geo/r3"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Volume is the axis-aligned bounding volume containing every configuration reachable by a roadmap,
// expressed in the given base frame.
type Volume struct {
	BaseFrame   string
	Center      r3.Vector
	HalfExtents r3.Vector
}

func (v Volume) validate() error {
	if v.BaseFrame == "" {
		return errors.New("roadmap volume must name a base frame")
	}
	if v.HalfExtents.X <= 0 || v.HalfExtents.Y <= 0 || v.HalfExtents.Z <= 0 {
		return errors.Errorf("roadmap volume half-extents must be positive, got %v", v.HalfExtents)
	}
	return nil
}

// ContainsPoint reports whether the given point lies inside the volume.
func (v Volume) ContainsPoint(pt r3.Vector) bool {
	diff := pt.Sub(v.Center)
	return diff.X >= -v.HalfExtents.X && diff.X <= v.HalfExtents.X &&
		diff.Y >= -v.HalfExtents.Y && diff.Y <= v.HalfExtents.Y &&
		diff.Z >= -v.HalfExtents.Z && diff.Z <= v.HalfExtents.Z
}

// Specification identifies a preloaded roadmap and its bounding volume. It is immutable after
// construction and may be shared across planning contexts.
type Specification struct {
	id     string
	volume Volume
}

// NewSpecification constructs a roadmap specification. The volume is required; there are no
// meaningful default bounds for a roadmap. An empty id is replaced with a random one.
func NewSpecification(id string, volume Volume) (*Specification, error) {
	if err := volume.validate(); err != nil {
		return nil, err
	}
	if id == "" {
		id = uuid.NewString()
	}
	return &Specification{id: id, volume: volume}, nil
}

// ID returns the roadmap identifier.
func (s *Specification) ID() string {
	return s.id
}

// Volume returns the roadmap's bounding volume.
func (s *Specification) Volume() Volume {
	return s.volume
}
