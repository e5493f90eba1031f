package proc

import (
	"golang.org/x/sys/unix"
)

// actions lists every signal the init treats specially. Signals without an
// entry are forwarded verbatim to the workload's process group, so no
// control signal an operator sends is ever silently dropped. SIGKILL and
// SIGSTOP cannot be caught and never reach this table.
var actions = map[unix.Signal]Action{
	unix.SIGTERM: ActionTerminate,
	unix.SIGINT:  ActionTerminate,
	unix.SIGQUIT: ActionTerminate,

	unix.SIGUSR1: ActionSuspend,
	unix.SIGUSR2: ActionResume,

	// SIGCHLD only wakes the loop for reaping and means nothing to the
	// workload. SIGURG is claimed by the Go runtime, SIGPIPE is local IO.
	unix.SIGCHLD: ActionIgnore,
	unix.SIGURG:  ActionIgnore,
	unix.SIGPIPE: ActionIgnore,
}

// Classify maps a received signal to the action the init takes for it.
func Classify(sig unix.Signal) Action {
	if action, ok := actions[sig]; ok {
		return action
	}
	return ActionForward
}
