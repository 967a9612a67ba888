package sampling

import (
	"math"
	"math/rand"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"go.viam.com/test"
	"gonum.org/v1/gonum/num/quat"

	"github.com/pathbound/roadmapplan/robotstate"
	"github.com/pathbound/roadmapplan/spatial"
)

type stubSolver struct {
	solution []float64
	err      error
	goals    []spatial.Pose
}

func (s *stubSolver) Solve(goal spatial.Pose, seed []float64) ([]float64, error) {
	s.goals = append(s.goals, goal)
	return s.solution, s.err
}

func TestNewIKSampler(t *testing.T) {
	group := testGroup(t)
	random := rand.New(rand.NewSource(1))
	position := &PositionConstraint{LinkName: "tool", Target: r3.Vector{X: 0.4}, Tolerance: 0.1}

	_, err := NewIKSampler(group, nil, nil, &stubSolver{}, random)
	test.That(t, err, test.ShouldNotBeNil)

	_, err = NewIKSampler(group, position, nil, nil, random)
	test.That(t, err, test.ShouldNotBeNil)
}

func TestIKSampler(t *testing.T) {
	group := testGroup(t)
	random := rand.New(rand.NewSource(1))
	position := &PositionConstraint{LinkName: "tool", Target: r3.Vector{X: 0.4}, Tolerance: 0.1}
	orientation := &OrientationConstraint{LinkName: "tool", Target: quat.Number{Real: 1}, Tolerance: 0.2}
	solver := &stubSolver{solution: []float64{0.5, -0.25}}

	sampler, err := NewIKSampler(group, position, orientation, solver, random)
	test.That(t, err, test.ShouldBeNil)

	reference := robotstate.NewState(map[string]float64{"shoulder": 0, "elbow": 0})
	target := reference.Clone()
	test.That(t, sampler.Sample(target, reference, 5), test.ShouldBeTrue)

	shoulder, _ := target.Position("shoulder")
	elbow, _ := target.Position("elbow")
	test.That(t, shoulder, test.ShouldEqual, 0.5)
	test.That(t, elbow, test.ShouldEqual, -0.25)

	// sampled poses stay within the constraint region
	for _, goal := range solver.goals {
		test.That(t, goal.Point.Sub(position.Target).Norm(), test.ShouldBeLessThanOrEqualTo, position.Tolerance)
		test.That(t, spatial.OrientationBetween(orientation.Target, goal.Orientation),
			test.ShouldBeLessThanOrEqualTo, orientation.Tolerance+1e-9)
	}
}

func TestIKSamplerFailures(t *testing.T) {
	group := testGroup(t)
	random := rand.New(rand.NewSource(1))
	position := &PositionConstraint{LinkName: "tool", Target: r3.Vector{X: 0.4}, Tolerance: 0.1}
	reference := robotstate.NewState(map[string]float64{"shoulder": 0, "elbow": 0})

	// solver errors exhaust the attempt budget
	failing := &stubSolver{err: errors.New("out of reach")}
	sampler, err := NewIKSampler(group, position, nil, failing, random)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, sampler.Sample(reference.Clone(), reference, 3), test.ShouldBeFalse)
	test.That(t, failing.goals, test.ShouldHaveLength, 3)

	// solutions of the wrong dimension are rejected
	short := &stubSolver{solution: []float64{math.Pi}}
	sampler, err = NewIKSampler(group, position, nil, short, random)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, sampler.Sample(reference.Clone(), reference, 2), test.ShouldBeFalse)

	// a reference not covering the group cannot seed the solver
	sampler, err = NewIKSampler(group, position, nil, &stubSolver{solution: []float64{0, 0}}, random)
	test.That(t, err, test.ShouldBeNil)
	empty := robotstate.NewState(nil)
	test.That(t, sampler.Sample(empty.Clone(), empty, 2), test.ShouldBeFalse)
}
