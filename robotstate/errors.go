package robotstate

import "github.com/pkg/errors"

// NewEmptyGroupNameError returns an error for a joint group constructed without a name.
func NewEmptyGroupNameError() error {
	return errors.New("joint group name cannot be empty")
}

// NewEmptyGroupError returns an error for a joint group constructed with no joints.
func NewEmptyGroupError(group string) error {
	return errors.Errorf("joint group %q must contain at least one joint", group)
}

// NewEmptyJointNameError returns an error for a joint defined without a name.
func NewEmptyJointNameError(group string) error {
	return errors.Errorf("joint group %q contains a joint with an empty name", group)
}

// NewDuplicateJointError returns an error for a joint name appearing twice in one group.
func NewDuplicateJointError(group, joint string) error {
	return errors.Errorf("joint %q appears more than once in joint group %q", joint, group)
}

// NewInvalidLimitError returns an error for a joint whose lower limit exceeds its upper limit.
func NewInvalidLimitError(joint string, min, max float64) error {
	return errors.Errorf("joint %q has lower limit %f greater than upper limit %f", joint, min, max)
}

// NewMissingJointError returns an error for a state that does not cover a joint of the group.
func NewMissingJointError(joint string) error {
	return errors.Errorf("robot state has no position for joint %q", joint)
}

// NewMismatchedVariablesError returns an error for name and position slices of unequal length.
func NewMismatchedVariablesError(names, positions int) error {
	return errors.Errorf("number of variable names (%d) does not match number of positions (%d)", names, positions)
}
