package planning

import (
	"time"

	"github.com/pathbound/roadmapplan/collision"
	"github.com/pathbound/roadmapplan/roadmap"
	"github.com/pathbound/roadmapplan/robotstate"
	"github.com/pathbound/roadmapplan/spatial"
)

// Searcher dispatches path searches over a preloaded roadmap. External collaborator; graph
// search and collision filtering internals live behind this interface.
type Searcher interface {
	// Ready reports whether the search engine is initialized.
	Ready() bool
	// Initialize prepares the search engine for use. Called once during Configure when the
	// engine is not yet ready.
	Initialize() error
	// Search looks for a path from start to one of the goal's candidate nodes, avoiding the
	// given collision voxels. It must return within the timeout. found=true with an empty path
	// is a legal "trivially no path" outcome, distinct from found=false and from an engine
	// error; the latter two are soft failures for the candidate being attempted.
	Search(
		spec *roadmap.Specification,
		start roadmap.Config,
		goal *Goal,
		voxels []collision.Voxel,
		timeout time.Duration,
	) (bool, []roadmap.Config, error)
}

// Scene is a read-only snapshot of the environment at solve time.
type Scene interface {
	// CurrentState returns the robot's current full state.
	CurrentState() *robotstate.State
	// Geometries returns the obstacle geometry of the environment.
	Geometries() []spatial.Geometry
}
