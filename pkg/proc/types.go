package proc

import (
	"golang.org/x/sys/unix"
)

// ExitSpawnFailure is the init's own exit code when the workload could not
// be started at all. Distinct from every code a supervised workload can
// produce through the normal propagation path.
const ExitSpawnFailure = 127

// Action is what the init does with a received signal.
type Action int

const (
	ActionForward Action = iota
	ActionTerminate
	ActionSuspend
	ActionResume
	ActionIgnore
)

func (a Action) String() string {
	switch a {
	case ActionForward:
		return "forward"
	case ActionTerminate:
		return "terminate"
	case ActionSuspend:
		return "suspend"
	case ActionResume:
		return "resume"
	case ActionIgnore:
		return "ignore"
	default:
		return "unknown"
	}
}

// SuspendState is the workload's position in the suspend/resume cycle.
type SuspendState int

const (
	StateRunning SuspendState = iota
	StateSuspending
	StateSuspended
	StateResuming
)

func (s SuspendState) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateSuspending:
		return "suspending"
	case StateSuspended:
		return "suspended"
	case StateResuming:
		return "resuming"
	default:
		return "unknown"
	}
}

// ReapedProcess is the exit record of a reparented orphan. Kept for
// diagnostics only; collecting it from the kernel is what mattered.
type ReapedProcess struct {
	Pid    int
	Status unix.WaitStatus
}

// Status is the snapshot served by the control api.
type Status struct {
	Pid           int      `json:"pid"`
	State         string   `json:"state"`
	Generation    uint64   `json:"generation"`
	QueuedSignals []string `json:"queuedSignals,omitempty"`
	Exited        bool     `json:"exited"`
	OrphansReaped int      `json:"orphansReaped"`
}
