package robotstate

// State holds a full set of named robot variable positions. It is a snapshot, not a live view;
// mutating a State never affects the scene it was read from.
type State struct {
	positions map[string]float64
}

// NewState constructs a state from a map of variable names to positions. The map is copied.
func NewState(positions map[string]float64) *State {
	state := &State{positions: make(map[string]float64, len(positions))}
	for name, value := range positions {
		state.positions[name] = value
	}
	return state
}

// Clone returns a deep copy of the state.
func (s *State) Clone() *State {
	return NewState(s.positions)
}

// Position returns the position of the named variable.
func (s *State) Position(name string) (float64, bool) {
	value, ok := s.positions[name]
	return value, ok
}

// SetPosition writes the position of a single variable.
func (s *State) SetPosition(name string, value float64) {
	s.positions[name] = value
}

// SetVariablePositions writes positions by variable name. The two slices must have equal length.
func (s *State) SetVariablePositions(names []string, positions []float64) error {
	if len(names) != len(positions) {
		return NewMismatchedVariablesError(len(names), len(positions))
	}
	for i, name := range names {
		s.positions[name] = positions[i]
	}
	return nil
}

// CopyJointGroupPositions projects the state onto the group's ordered active joints.
// Every joint in the group must be present in the state.
func (s *State) CopyJointGroupPositions(group *JointGroup) ([]float64, error) {
	values := make([]float64, 0, group.DoF())
	for _, name := range group.ActiveJointNames() {
		value, ok := s.positions[name]
		if !ok {
			return nil, NewMissingJointError(name)
		}
		values = append(values, value)
	}
	return values, nil
}
