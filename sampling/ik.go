package sampling

import (
	"math"
	"math/rand"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"

	"github.com/pathbound/roadmapplan/robotstate"
	"github.com/pathbound/roadmapplan/spatial"
)

// InverseKinematics solves for joint positions of a group that reach a goal pose, seeded with
// the current group positions. External collaborator; the solver itself is out of scope here.
type InverseKinematics interface {
	Solve(goal spatial.Pose, seed []float64) ([]float64, error)
}

type ikSampler struct {
	group       *robotstate.JointGroup
	position    *PositionConstraint
	orientation *OrientationConstraint
	solver      InverseKinematics
	random      *rand.Rand
}

// NewIKSampler returns a sampler that draws a pose within the constraint region and asks the
// inverse kinematics solver for a matching set of joint positions. At least one of the position
// or orientation constraints must be present.
func NewIKSampler(
	group *robotstate.JointGroup,
	position *PositionConstraint,
	orientation *OrientationConstraint,
	solver InverseKinematics,
	random *rand.Rand,
) (ConstraintSampler, error) {
	if position == nil && orientation == nil {
		return nil, NewNoConstraintsError()
	}
	if solver == nil {
		return nil, NewMissingSolverError()
	}
	return &ikSampler{group: group, position: position, orientation: orientation, solver: solver, random: random}, nil
}

func (s *ikSampler) Sample(target, reference *robotstate.State, maxAttempts int) bool {
	seed, err := reference.CopyJointGroupPositions(s.group)
	if err != nil {
		return false
	}
	names := s.group.ActiveJointNames()
	for attempt := 0; attempt < maxAttempts; attempt++ {
		solution, err := s.solver.Solve(s.samplePose(), seed)
		if err != nil || len(solution) != s.group.DoF() {
			continue
		}
		if target.SetVariablePositions(names, solution) == nil {
			return true
		}
	}
	return false
}

// samplePose draws one pose from the constraint region: a point uniform within the position
// tolerance ball and an orientation perturbed within the angular tolerance.
func (s *ikSampler) samplePose() spatial.Pose {
	pose := spatial.NewZeroPose()
	if s.position != nil {
		pose.Point = s.position.Target.Add(s.sampleBall(s.position.Tolerance))
	}
	if s.orientation != nil {
		pose.Orientation = spatial.Normalize(quat.Mul(s.orientation.Target, s.sampleRotation(s.orientation.Tolerance)))
	}
	return pose
}

func (s *ikSampler) sampleBall(radius float64) r3.Vector {
	for {
		v := r3.Vector{
			X: (2*s.random.Float64() - 1) * radius,
			Y: (2*s.random.Float64() - 1) * radius,
			Z: (2*s.random.Float64() - 1) * radius,
		}
		if v.Norm() <= radius {
			return v
		}
	}
}

func (s *ikSampler) sampleRotation(tolerance float64) quat.Number {
	angle := (2*s.random.Float64() - 1) * tolerance
	axis := s.sampleBall(1)
	if axis.Norm() == 0 {
		axis = r3.Vector{Z: 1}
	}
	axis = axis.Normalize()
	sin := math.Sin(angle / 2)
	return quat.Number{
		Real: math.Cos(angle / 2),
		Imag: axis.X * sin,
		Jmag: axis.Y * sin,
		Kmag: axis.Z * sin,
	}
}
