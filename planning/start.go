package planning

import "github.com/pathbound/roadmapplan/roadmap"

// resolveStart derives the start configuration for a request. An explicit joint state is
// matched to the group by name and must cover every active joint; an unpopulated joint state
// falls back to the current state of the scene.
func (pc *PlanningContext) resolveStart(req *Request) (roadmap.Config, error) {
	if !req.StartState.Empty() {
		values := make([]float64, 0, pc.group.DoF())
		for _, jointName := range pc.group.ActiveJointNames() {
			for i, name := range req.StartState.Names {
				if name == jointName && i < len(req.StartState.Positions) {
					values = append(values, req.StartState.Positions[i])
					break
				}
			}
		}
		if len(values) != pc.group.DoF() {
			return nil, NewInvalidStartStateError()
		}
		return roadmap.ConfigFromFloats(values), nil
	}

	// expected, recoverable path for requests that plan from wherever the robot currently is
	pc.logger.Warn("start state in planning request is not populated - using current state from the scene")
	positions, err := pc.scene.CurrentState().CopyJointGroupPositions(pc.group)
	if err != nil {
		return nil, err
	}
	return roadmap.ConfigFromFloats(positions), nil
}
