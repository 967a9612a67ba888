package planning

import "github.com/pathbound/roadmapplan/roadmap"

// Trajectory is an executable joint-space trajectory over a group's ordered active joints.
type Trajectory struct {
	JointNames []string
	Waypoints  [][]float64
}

// TrajectoryFromPath converts a solution path into a trajectory. Each waypoint is a fresh copy;
// no slice is shared between waypoints or with the input path. Converting the same path twice
// yields identical trajectories.
func TrajectoryFromPath(path []roadmap.Config, jointNames []string) (*Trajectory, error) {
	trajectory := &Trajectory{
		JointNames: make([]string, len(jointNames)),
		Waypoints:  make([][]float64, 0, len(path)),
	}
	copy(trajectory.JointNames, jointNames)
	for _, config := range path {
		if len(config) != len(jointNames) {
			return nil, NewDimensionMismatchError(len(config), len(jointNames))
		}
		trajectory.Waypoints = append(trajectory.Waypoints, config.Floats())
	}
	return trajectory, nil
}
