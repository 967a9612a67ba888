package roadmap

import (
	"os"
	"path/filepath"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"github.com/yosuke-furukawa/json5/encoding/json5"
	"gonum.org/v1/gonum/num/quat"

	"github.com/pathbound/roadmapplan/spatial"
)

// Loader provides the precomputed contents of a roadmap. Both methods return non-empty
// slices on success.
type Loader interface {
	// Configs returns the roadmap's node configurations, indexed by node id.
	Configs(spec *Specification) ([]Config, error)
	// Poses returns the end-effector pose of each roadmap node, parallel to Configs.
	Poses(spec *Specification) ([]spatial.Pose, error)
}

// FileLoader reads roadmap documents from json5 files in a directory, one file per roadmap id.
type FileLoader struct {
	dir string
}

// NewFileLoader constructs a loader rooted at the given directory.
func NewFileLoader(dir string) *FileLoader {
	return &FileLoader{dir: dir}
}

type roadmapDocument struct {
	Configs [][]float32    `json:"configs"`
	Poses   []poseDocument `json:"poses"`
}

type poseDocument struct {
	Point       [3]float64 `json:"point"`
	Orientation [4]float64 `json:"orientation"` // w, x, y, z
}

func (l *FileLoader) load(id string) (*roadmapDocument, error) {
	path := filepath.Join(l.dir, id+".json5")
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read roadmap file for %q", id)
	}
	var doc roadmapDocument
	if err := json5.Unmarshal(bytes, &doc); err != nil {
		return nil, errors.Wrapf(err, "unable to parse roadmap file for %q", id)
	}
	return &doc, nil
}

// Configs returns the node configurations stored in the roadmap's file.
func (l *FileLoader) Configs(spec *Specification) ([]Config, error) {
	doc, err := l.load(spec.ID())
	if err != nil {
		return nil, err
	}
	if len(doc.Configs) == 0 {
		return nil, NewEmptyRoadmapError(spec.ID())
	}
	dof := len(doc.Configs[0])
	configs := make([]Config, 0, len(doc.Configs))
	for id, values := range doc.Configs {
		if len(values) != dof {
			return nil, NewRaggedConfigError(spec.ID(), id, len(values), dof)
		}
		configs = append(configs, Config(values))
	}
	return configs, nil
}

// Poses returns the node poses stored in the roadmap's file.
func (l *FileLoader) Poses(spec *Specification) ([]spatial.Pose, error) {
	doc, err := l.load(spec.ID())
	if err != nil {
		return nil, err
	}
	if len(doc.Poses) == 0 {
		return nil, NewMissingPosesError(spec.ID())
	}
	if len(doc.Poses) != len(doc.Configs) {
		return nil, NewPoseCountError(spec.ID(), len(doc.Poses), len(doc.Configs))
	}
	poses := make([]spatial.Pose, 0, len(doc.Poses))
	for _, p := range doc.Poses {
		poses = append(poses, spatial.NewPose(
			r3.Vector{X: p.Point[0], Y: p.Point[1], Z: p.Point[2]},
			quat.Number{Real: p.Orientation[0], Imag: p.Orientation[1], Jmag: p.Orientation[2], Kmag: p.Orientation[3]},
		))
	}
	return poses, nil
}
