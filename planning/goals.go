package planning

import (
	"time"

	"github.com/pathbound/roadmapplan/roadmap"
	"github.com/pathbound/roadmapplan/sampling"
)

// extractGoals turns the request's goal constraints into an ordered list of roadmap goals.
// Constraints with no applicable members are skipped silently; failing to extract any goal at
// all is a request error.
func (pc *PlanningContext) extractGoals(constraints []sampling.Constraints, deadline time.Time) ([]*Goal, error) {
	if len(constraints) == 0 {
		return nil, NewEmptyGoalConstraintsError()
	}
	goals := make([]*Goal, 0, len(constraints))
	for i := range constraints {
		goal, err := pc.sampleGoal(&constraints[i], deadline)
		if err != nil {
			pc.logger.Warnw("skipping goal constraint", "constraint", i, "error", err)
			continue
		}
		if goal != nil {
			goals = append(goals, goal)
		}
	}
	if len(goals) == 0 {
		return nil, NewNoGoalsError()
	}
	return goals, nil
}

// sampleGoal rejection-samples one constraint until a drawn state matches a roadmap node within
// the joint distance bound, or the deadline passes. A nil goal with a nil error means the
// constraint had nothing to sample and is skipped.
func (pc *PlanningContext) sampleGoal(constraint *sampling.Constraints, deadline time.Time) (*Goal, error) {
	sampler, err := pc.buildSampler(constraint)
	if err != nil {
		return nil, err
	}
	if sampler == nil {
		return nil, nil
	}

	reference := pc.scene.CurrentState()
	sampleState := reference.Clone()
	for pc.clock.Now().Before(deadline) {
		if !sampler.Sample(sampleState, reference, defaultSampleAttempts) {
			continue
		}
		positions, err := sampleState.CopyJointGroupPositions(pc.group)
		if err != nil {
			return nil, err
		}
		stateIDs := roadmap.ClosestConfigs(roadmap.ConfigFromFloats(positions), pc.configs, defaultMaxGoalStates, defaultGoalJointDistance)
		if len(stateIDs) > 0 {
			return &Goal{
				Type:         GoalTypeStateIDs,
				StateIDs:     stateIDs,
				SampledState: sampleState.Clone(),
			}, nil
		}
	}
	return nil, NewGoalSampleTimeoutError()
}

// buildSampler composes a constraint sampler from whichever members the constraint carries.
// A constraint with no members yields a nil sampler, not an error.
func (pc *PlanningContext) buildSampler(constraint *sampling.Constraints) (sampling.ConstraintSampler, error) {
	samplers := make([]sampling.ConstraintSampler, 0, 2)
	if len(constraint.JointConstraints) > 0 {
		jointSampler, err := sampling.NewJointSampler(pc.group, constraint.JointConstraints, pc.random)
		if err != nil {
			return nil, err
		}
		samplers = append(samplers, jointSampler)
	}
	if constraint.PositionConstraint != nil || constraint.OrientationConstraint != nil {
		if pc.ikSolver == nil {
			return nil, NewMissingIKSolverError()
		}
		ikSampler, err := sampling.NewIKSampler(pc.group, constraint.PositionConstraint, constraint.OrientationConstraint, pc.ikSolver, pc.random)
		if err != nil {
			return nil, err
		}
		samplers = append(samplers, ikSampler)
	}
	if len(samplers) == 0 {
		return nil, nil
	}
	return sampling.NewUnionSampler(samplers)
}
