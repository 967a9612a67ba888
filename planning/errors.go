package planning

import "github.com/pkg/errors"

// NewMissingSceneError returns an error for a context configured without a scene.
func NewMissingSceneError() error {
	return errors.New("cannot configure planning context while the scene has not been set")
}

// NewDimensionMismatchError returns an error for a roadmap whose joint dimension does not fit the group.
func NewDimensionMismatchError(roadmapDoF, groupDoF int) error {
	return errors.Errorf("roadmap state dimension (%d) does not fit joint count of planning group (%d)", roadmapDoF, groupDoF)
}

// NewEmptyGoalConstraintsError returns an error for a request carrying no goal constraints.
func NewEmptyGoalConstraintsError() error {
	return errors.New("goal constraints are empty")
}

// NewNoGoalsError returns an error for goal constraints from which no goals could be extracted.
func NewNoGoalsError() error {
	return errors.New("failed to extract any goals from constraints")
}

// NewGoalSampleTimeoutError returns an error for a goal constraint that could not be matched to a
// roadmap node before the deadline.
func NewGoalSampleTimeoutError() error {
	return errors.New("deadline passed before a constraint-satisfying goal was matched to the roadmap")
}

// NewInvalidStartStateError returns an error for a request start state that does not cover the
// full planning group.
func NewInvalidStartStateError() error {
	return errors.New("invalid start state in planning request - joint state does not match the joint group")
}

// NewMissingIKSolverError returns an error for pose goal constraints used without an IK solver.
func NewMissingIKSolverError() error {
	return errors.New("planning context has no inverse kinematics solver for pose constraints")
}

// NewTerminateUnsupportedError returns an error for a request to cancel an in-flight solve.
func NewTerminateUnsupportedError() error {
	return errors.New("terminating a planning attempt is not supported")
}
