// Package planning implements a time-bounded, multi-goal planning context over preloaded roadmaps.
//
// A PlanningContext samples candidate goal configurations from symbolic constraints, matches
// them to roadmap nodes, and dispatches path searches to an external roadmap search engine
// until the first solution, a timeout, or goal exhaustion.
package planning

import (
	"math"
	"math/rand"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/edaniels/golog"
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/pathbound/roadmapplan/collision"
	"github.com/pathbound/roadmapplan/roadmap"
	"github.com/pathbound/roadmapplan/robotstate"
	"github.com/pathbound/roadmapplan/sampling"
	"github.com/pathbound/roadmapplan/spatial"
)

const (
	// joint-space L2 distance bound when matching sampled goals to roadmap nodes.
	defaultGoalJointDistance = math.Pi

	// max roadmap node candidates matched per sampled goal.
	defaultMaxGoalStates = 1

	// constraint sampler attempts per draw.
	defaultSampleAttempts = 100
)

// PlanningContext owns the planning lifecycle against a single roadmap and joint group.
// A configured context may serve repeated Solve calls; preloaded roadmap contents are read-only
// across calls. A single context is not designed for concurrent Solve calls on itself.
type PlanningContext struct {
	group    *robotstate.JointGroup
	spec     *roadmap.Specification
	searcher Searcher
	loader   roadmap.Loader
	scene    Scene
	logger   golog.Logger

	clock           clock.Clock
	ikSolver        sampling.InverseKinematics
	voxelResolution float64
	random          *rand.Rand

	configs    []roadmap.Config
	poses      []spatial.Pose
	configured bool
}

// Option configures a PlanningContext beyond its required collaborators.
type Option func(*PlanningContext)

// WithClock injects the clock used for deadline tracking.
func WithClock(c clock.Clock) Option {
	return func(pc *PlanningContext) { pc.clock = c }
}

// WithIKSolver injects the inverse kinematics solver used to sample pose goal constraints.
func WithIKSolver(solver sampling.InverseKinematics) Option {
	return func(pc *PlanningContext) { pc.ikSolver = solver }
}

// WithVoxelResolution overrides the collision voxel edge length.
func WithVoxelResolution(resolution float64) Option {
	return func(pc *PlanningContext) { pc.voxelResolution = resolution }
}

// WithRandomSeed seeds the sampling source, making goal extraction deterministic.
func WithRandomSeed(seed int64) Option {
	return func(pc *PlanningContext) { pc.random = rand.New(rand.NewSource(seed)) }
}

// NewPlanningContext assembles a context from its collaborators. Configure must be called and
// succeed before the first Solve.
func NewPlanningContext(
	group *robotstate.JointGroup,
	spec *roadmap.Specification,
	searcher Searcher,
	loader roadmap.Loader,
	scene Scene,
	logger golog.Logger,
	opts ...Option,
) *PlanningContext {
	pc := &PlanningContext{
		group:           group,
		spec:            spec,
		searcher:        searcher,
		loader:          loader,
		scene:           scene,
		logger:          logger,
		clock:           clock.New(),
		voxelResolution: collision.DefaultResolution,
	}
	for _, opt := range opts {
		opt(pc)
	}
	if pc.random == nil {
		pc.random = rand.New(rand.NewSource(pc.clock.Now().UnixNano()))
	}
	return pc
}

// Configure loads the roadmap contents and validates that the context is able to plan.
func (pc *PlanningContext) Configure() error {
	if pc.scene == nil {
		return NewMissingSceneError()
	}
	if !pc.searcher.Ready() {
		if err := pc.searcher.Initialize(); err != nil {
			return errors.Wrap(err, "unable to initialize roadmap search engine")
		}
	}
	configs, err := pc.loader.Configs(pc.spec)
	if err != nil {
		return errors.Wrap(err, "unable to load config states from roadmap")
	}
	if len(configs) == 0 {
		return roadmap.NewEmptyRoadmapError(pc.spec.ID())
	}
	if len(configs[0]) != pc.group.DoF() {
		return NewDimensionMismatchError(len(configs[0]), pc.group.DoF())
	}
	poses, err := pc.loader.Poses(pc.spec)
	if err != nil {
		return errors.Wrap(err, "unable to load state poses from roadmap")
	}
	if len(poses) == 0 {
		return roadmap.NewMissingPosesError(pc.spec.ID())
	}
	if len(poses) != len(configs) {
		return roadmap.NewPoseCountError(pc.spec.ID(), len(poses), len(configs))
	}
	pc.configs = configs
	pc.poses = poses
	pc.configured = true
	return nil
}

// Solve runs the planning loop: extract goals, build the collision snapshot, resolve the start
// configuration, then iterate goal candidates until the first solution, a timeout, or
// exhaustion. The measured planning time is recorded regardless of outcome.
func (pc *PlanningContext) Solve(req *Request) *Response {
	startTime := pc.clock.Now()
	resp := &Response{Code: Failure}
	defer func() {
		resp.PlanningTime = pc.clock.Now().Sub(startTime)
	}()

	// this should never trigger if Configure succeeded; it is a caller contract violation
	if !pc.configured {
		pc.logger.Error("solve was called but planning context has not been configured successfully")
		return resp
	}

	deadline := startTime.Add(req.AllowedPlanningTime)
	if !deadline.After(startTime) {
		resp.Code = TimedOut
		return resp
	}

	goals, err := pc.extractGoals(req.GoalConstraints, deadline)
	if err != nil {
		pc.logger.Errorw("failed to extract goals", "error", err)
		resp.Code = PlanningFailed
		return resp
	}

	voxels := collision.VoxelizeGeometries(pc.scene.Geometries(), pc.spec.Volume(), pc.voxelResolution)

	start, err := pc.resolveStart(req)
	if err != nil {
		pc.logger.Errorw("failed to resolve start configuration", "error", err)
		return resp
	}

	resp.Code = PlanningFailed
	var softFailures error
	for _, goal := range goals {
		timeout := deadline.Sub(pc.clock.Now())
		if timeout <= 0 {
			resp.Code = TimedOut
			break
		}
		found, path, err := pc.searcher.Search(pc.spec, start, goal, voxels, timeout)
		if err != nil {
			softFailures = multierr.Append(softFailures, err)
			continue
		}
		if !found {
			continue
		}
		if len(path) == 0 {
			pc.logger.Warn("cannot convert empty path to a trajectory")
			continue
		}
		trajectory, err := TrajectoryFromPath(path, pc.group.ActiveJointNames())
		if err != nil {
			softFailures = multierr.Append(softFailures, err)
			continue
		}
		resp.Trajectory = trajectory
		resp.Code = Success
		break
	}
	if resp.Code == PlanningFailed && softFailures != nil {
		pc.logger.Warnw("no goal candidate yielded a path", "error", softFailures)
	}
	return resp
}

// SolveDetailed runs Solve and annotates the outcome with a step description.
func (pc *PlanningContext) SolveDetailed(req *Request) *DetailedResponse {
	resp := pc.Solve(req)
	return &DetailedResponse{
		Code:            resp.Code,
		Trajectories:    []*Trajectory{resp.Trajectory},
		ProcessingTimes: []time.Duration{resp.PlanningTime},
		Descriptions:    []string{"plan"},
	}
}

// Terminate reports that cancelling an in-flight solve is not supported. The search engine has
// no cancellation channel once a search has been dispatched.
func (pc *PlanningContext) Terminate() error {
	pc.logger.Warn("failed to terminate the planning attempt - termination is not supported")
	return NewTerminateUnsupportedError()
}
