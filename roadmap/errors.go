package roadmap

import "github.com/pkg/errors"

// NewEmptyRoadmapError returns an error for a roadmap file containing no configurations.
func NewEmptyRoadmapError(id string) error {
	return errors.Errorf("roadmap %q contains no configurations", id)
}

// NewRaggedConfigError returns an error for a roadmap node whose dimension differs from the rest.
func NewRaggedConfigError(id string, node, got, want int) error {
	return errors.Errorf("roadmap %q node %d has %d joint values, expected %d", id, node, got, want)
}

// NewMissingPosesError returns an error for a roadmap file containing no node poses.
func NewMissingPosesError(id string) error {
	return errors.Errorf("roadmap %q contains no node poses", id)
}

// NewPoseCountError returns an error for a roadmap whose pose count differs from its config count.
func NewPoseCountError(id string, poses, configs int) error {
	return errors.Errorf("roadmap %q has %d poses for %d configurations", id, poses, configs)
}
