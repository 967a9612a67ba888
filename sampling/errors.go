package sampling

import "github.com/pkg/errors"

// NewNoConstraintsError returns an error for a sampler built with nothing to sample.
func NewNoConstraintsError() error {
	return errors.New("sampler requires at least one constraint")
}

// NewUnknownJointError returns an error for a constraint naming a joint outside the group.
func NewUnknownJointError(group, joint string) error {
	return errors.Errorf("joint constraint names joint %q which is not in group %q", joint, group)
}

// NewNegativeToleranceError returns an error for a joint constraint with a negative tolerance.
func NewNegativeToleranceError(joint string) error {
	return errors.Errorf("joint constraint for %q has a negative tolerance", joint)
}

// NewEmptyUnionError returns an error for a union sampler composed of no sub-samplers.
func NewEmptyUnionError() error {
	return errors.New("union sampler requires at least one sub-sampler")
}

// NewMissingSolverError returns an error for an IK sampler built without a solver.
func NewMissingSolverError() error {
	return errors.New("pose constraints require an inverse kinematics solver")
}
