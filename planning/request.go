package planning

import (
	"time"

	"github.com/pathbound/roadmapplan/sampling"
)

// JointState is a named set of joint positions supplied with a planning request. The order of
// the names does not need to match the joint group's order; lookup is by name.
type JointState struct {
	Names     []string
	Positions []float64
}

// Empty reports whether the joint state carries no positions.
func (js *JointState) Empty() bool {
	return js == nil || len(js.Positions) == 0
}

// Request describes one motion planning problem.
type Request struct {
	// StartState optionally pins the start configuration. When empty, the current state of the
	// scene is used instead.
	StartState *JointState
	// GoalConstraints are the acceptable goal regions, in priority order.
	GoalConstraints []sampling.Constraints
	// AllowedPlanningTime bounds the whole solve call, goal sampling included.
	AllowedPlanningTime time.Duration
}

// Response is the outcome of one solve call. Trajectory is set only on Success.
type Response struct {
	Code         ErrorCode
	Trajectory   *Trajectory
	PlanningTime time.Duration
}

// DetailedResponse annotates the solve outcome with a description of each planning step.
type DetailedResponse struct {
	Code            ErrorCode
	Trajectories    []*Trajectory
	ProcessingTimes []time.Duration
	Descriptions    []string
}
