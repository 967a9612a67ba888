package robotstate

import (
	"math"
	"testing"

	"go.viam.com/test"
)

func testJoints() []Joint {
	return []Joint{
		{Name: "shoulder", Min: -math.Pi, Max: math.Pi},
		{Name: "elbow", Min: -math.Pi / 2, Max: math.Pi / 2},
		{Name: "wrist", Min: -1, Max: 1},
	}
}

func TestNewJointGroup(t *testing.T) {
	_, err := NewJointGroup("", testJoints())
	test.That(t, err, test.ShouldNotBeNil)

	_, err = NewJointGroup("arm", nil)
	test.That(t, err, test.ShouldNotBeNil)

	_, err = NewJointGroup("arm", []Joint{{Name: "a"}, {Name: "a"}})
	test.That(t, err, test.ShouldNotBeNil)

	_, err = NewJointGroup("arm", []Joint{{Name: "a", Min: 1, Max: -1}})
	test.That(t, err, test.ShouldNotBeNil)

	group, err := NewJointGroup("arm", testJoints())
	test.That(t, err, test.ShouldBeNil)
	test.That(t, group.Name(), test.ShouldEqual, "arm")
	test.That(t, group.DoF(), test.ShouldEqual, 3)
	test.That(t, group.ActiveJointNames(), test.ShouldResemble, []string{"shoulder", "elbow", "wrist"})

	joint, ok := group.Joint("elbow")
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, joint.Max, test.ShouldAlmostEqual, math.Pi/2)
	_, ok = group.Joint("ankle")
	test.That(t, ok, test.ShouldBeFalse)
}

func TestStateProjection(t *testing.T) {
	group, err := NewJointGroup("arm", testJoints())
	test.That(t, err, test.ShouldBeNil)

	state := NewState(map[string]float64{"shoulder": 0.1, "elbow": 0.2, "wrist": 0.3, "gripper": 0.9})
	positions, err := state.CopyJointGroupPositions(group)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, positions, test.ShouldResemble, []float64{0.1, 0.2, 0.3})

	// a state missing a group joint is rejected
	partial := NewState(map[string]float64{"shoulder": 0.1})
	_, err = partial.CopyJointGroupPositions(group)
	test.That(t, err, test.ShouldNotBeNil)
}

func TestStateMutation(t *testing.T) {
	source := map[string]float64{"shoulder": 1}
	state := NewState(source)
	source["shoulder"] = 2
	value, ok := state.Position("shoulder")
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, value, test.ShouldEqual, 1)

	clone := state.Clone()
	clone.SetPosition("shoulder", 3)
	value, _ = state.Position("shoulder")
	test.That(t, value, test.ShouldEqual, 1)

	err := state.SetVariablePositions([]string{"a", "b"}, []float64{1})
	test.That(t, err, test.ShouldNotBeNil)

	err = state.SetVariablePositions([]string{"elbow", "wrist"}, []float64{0.5, -0.5})
	test.That(t, err, test.ShouldBeNil)
	value, _ = state.Position("wrist")
	test.That(t, value, test.ShouldEqual, -0.5)
}

func TestInputs(t *testing.T) {
	values := []float64{1, 2, 3}
	inputs := FloatsToInputs(values)
	test.That(t, InputsToFloats(inputs), test.ShouldResemble, values)

	test.That(t, InputsL2Distance(inputs, inputs), test.ShouldEqual, 0)
	test.That(t, InputsL2Distance(inputs, FloatsToInputs([]float64{1, 2})), test.ShouldEqual, math.Inf(1))
	test.That(t, InputsL2Distance(FloatsToInputs([]float64{0, 0}), FloatsToInputs([]float64{3, 4})), test.ShouldAlmostEqual, 5)
}
