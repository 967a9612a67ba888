package robotstate

// Joint describes one active joint and its position limits.
type Joint struct {
	Name string
	Min  float64
	Max  float64
}

// JointGroup is an ordered set of active joints that are planned for together.
// A group is immutable after construction.
type JointGroup struct {
	name   string
	joints []Joint
}

// NewJointGroup constructs a joint group from an ordered list of joints.
func NewJointGroup(name string, joints []Joint) (*JointGroup, error) {
	if name == "" {
		return nil, NewEmptyGroupNameError()
	}
	if len(joints) == 0 {
		return nil, NewEmptyGroupError(name)
	}
	seen := make(map[string]bool, len(joints))
	for _, joint := range joints {
		if joint.Name == "" {
			return nil, NewEmptyJointNameError(name)
		}
		if seen[joint.Name] {
			return nil, NewDuplicateJointError(name, joint.Name)
		}
		if joint.Min > joint.Max {
			return nil, NewInvalidLimitError(joint.Name, joint.Min, joint.Max)
		}
		seen[joint.Name] = true
	}
	group := &JointGroup{name: name, joints: make([]Joint, len(joints))}
	copy(group.joints, joints)
	return group, nil
}

// Name returns the name of the joint group.
func (jg *JointGroup) Name() string {
	return jg.name
}

// DoF returns the number of active joints in the group.
func (jg *JointGroup) DoF() int {
	return len(jg.joints)
}

// Joints returns a copy of the ordered joints in the group.
func (jg *JointGroup) Joints() []Joint {
	joints := make([]Joint, len(jg.joints))
	copy(joints, jg.joints)
	return joints
}

// ActiveJointNames returns the ordered names of the active joints in the group.
func (jg *JointGroup) ActiveJointNames() []string {
	names := make([]string, len(jg.joints))
	for i, joint := range jg.joints {
		names[i] = joint.Name
	}
	return names
}

// Joint returns the named joint, if it is part of the group.
func (jg *JointGroup) Joint(name string) (Joint, bool) {
	for _, joint := range jg.joints {
		if joint.Name == name {
			return joint, true
		}
	}
	return Joint{}, false
}
