package planning

// ErrorCode is the aggregate outcome of one solve call.
type ErrorCode int

const (
	// Failure is returned for configuration and request errors; planning never started.
	Failure ErrorCode = iota
	// Success means a solution path was found and converted to a trajectory.
	Success
	// PlanningFailed means every goal candidate was attempted without finding a path.
	PlanningFailed
	// TimedOut means the allowed planning time ran out before a solution was found.
	TimedOut
)

func (c ErrorCode) String() string {
	switch c {
	case Success:
		return "SUCCESS"
	case PlanningFailed:
		return "PLANNING_FAILED"
	case TimedOut:
		return "TIMED_OUT"
	default:
		return "FAILURE"
	}
}
