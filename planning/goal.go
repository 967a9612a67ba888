package planning

import "github.com/pathbound/roadmapplan/robotstate"

// GoalType tags how a Goal addresses the roadmap.
type GoalType int

// GoalTypeStateIDs addresses the roadmap by a set of candidate node ids.
const GoalTypeStateIDs GoalType = iota

// Goal is one planning target: roadmap node candidates ranked by proximity to a sampled,
// constraint-satisfying robot state. The sampled state is kept for trajectory seeding and
// debugging.
type Goal struct {
	Type         GoalType
	StateIDs     []int
	SampledState *robotstate.State
}
