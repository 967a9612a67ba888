package sampling

import (
	"math/rand"

	"github.com/pathbound/roadmapplan/robotstate"
)

// ConstraintSampler draws constraint-satisfying robot states.
//
// Sample writes the variables it constrains into target and reports success; all other
// variables of target are left untouched, so callers seed target from a full reference
// state before sampling. Implementations give up after maxAttempts internal draws.
type ConstraintSampler interface {
	Sample(target, reference *robotstate.State, maxAttempts int) bool
}

type jointSampler struct {
	group       *robotstate.JointGroup
	constraints []JointConstraint
	random      *rand.Rand
}

// NewJointSampler returns a sampler drawing uniformly within each joint constraint's tolerance
// window, clamped to the joint's limits. Constraints naming joints outside the group are rejected.
func NewJointSampler(group *robotstate.JointGroup, constraints []JointConstraint, random *rand.Rand) (ConstraintSampler, error) {
	if len(constraints) == 0 {
		return nil, NewNoConstraintsError()
	}
	for _, jc := range constraints {
		if _, ok := group.Joint(jc.JointName); !ok {
			return nil, NewUnknownJointError(group.Name(), jc.JointName)
		}
		if jc.ToleranceAbove < 0 || jc.ToleranceBelow < 0 {
			return nil, NewNegativeToleranceError(jc.JointName)
		}
	}
	return &jointSampler{group: group, constraints: constraints, random: random}, nil
}

func (s *jointSampler) Sample(target, reference *robotstate.State, maxAttempts int) bool {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if s.sampleOnce(target) {
			return true
		}
	}
	return false
}

func (s *jointSampler) sampleOnce(target *robotstate.State) bool {
	for _, jc := range s.constraints {
		joint, _ := s.group.Joint(jc.JointName)
		low := jc.Position - jc.ToleranceBelow
		high := jc.Position + jc.ToleranceAbove
		if low < joint.Min {
			low = joint.Min
		}
		if high > joint.Max {
			high = joint.Max
		}
		if high < low {
			// tolerance window lies entirely outside the joint limits
			return false
		}
		target.SetPosition(jc.JointName, low+s.random.Float64()*(high-low))
	}
	return true
}

type unionSampler struct {
	samplers []ConstraintSampler
}

// NewUnionSampler composes sub-samplers behind the single-sampler contract. Each sub-sampler
// must succeed for the union to succeed. An empty union is not constructible.
func NewUnionSampler(samplers []ConstraintSampler) (ConstraintSampler, error) {
	if len(samplers) == 0 {
		return nil, NewEmptyUnionError()
	}
	return &unionSampler{samplers: samplers}, nil
}

func (s *unionSampler) Sample(target, reference *robotstate.State, maxAttempts int) bool {
	for _, sub := range s.samplers {
		if !sub.Sample(target, reference, maxAttempts) {
			return false
		}
	}
	return true
}
