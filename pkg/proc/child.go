package proc

import (
	"os"
	"os/exec"
	"syscall"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"
)

// ErrWorkloadExited is returned when a signal is requested for a workload
// that has already been reaped. Callers treat it as an expected race with
// the reaper, not as a failure.
var ErrWorkloadExited = errors.New("workload has already exited")

// Workload tracks the single supervised child. The pid is assigned exactly
// once at spawn; only the reaper may mark it exited.
type Workload struct {
	Pid    int
	exited bool
	reaped bool
	status unix.WaitStatus
}

// Done reports whether the workload has exited and its status has been
// collected, i.e. the init has nothing left to supervise.
func (w *Workload) Done() bool {
	return w.exited && w.reaped
}

// ExitCode derives the init's own exit code from the workload's terminal
// status: the numeric code for a normal exit, or 128+signo when the
// workload was killed by a signal. Same contract a shell applies to a
// foreground child.
func (w *Workload) ExitCode() int {
	switch {
	case w.status.Exited():
		return w.status.ExitStatus()
	case w.status.Signaled():
		return 128 + int(w.status.Signal())
	default:
		return 1
	}
}

// ChildSupervisor owns the workload's lifecycle: spawning it, signalling
// its process group and recording its exit.
type ChildSupervisor struct {
	workload *Workload
	cmd      *exec.Cmd
}

func NewChildSupervisor() *ChildSupervisor {
	return &ChildSupervisor{}
}

// Spawn starts the workload in its own process group, so group-wide signals
// reach every descendant it creates. Failure to start is unrecoverable for
// an init; the caller exits with ExitSpawnFailure.
func (s *ChildSupervisor) Spawn(command string, args []string) (*Workload, error) {
	if s.workload != nil {
		log.Panicf("workload %q spawned while pid %d is already supervised", command, s.workload.Pid)
	}

	cmd := exec.Command(command, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = os.Environ()
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	if err := cmd.Start(); err != nil {
		return nil, errors.Wrapf(err, "failed to start workload %q", command)
	}

	s.cmd = cmd
	s.workload = &Workload{Pid: cmd.Process.Pid}

	log.WithField("pid", s.workload.Pid).Infof("started workload %q", command)
	return s.workload, nil
}

// Workload returns the handle of the supervised child, nil before Spawn.
func (s *ChildSupervisor) Workload() *Workload {
	return s.workload
}

// Owns reports whether pid belongs to the tracked workload.
func (s *ChildSupervisor) Owns(pid int) bool {
	return s.workload != nil && s.workload.Pid == pid
}

// Signal delivers sig to the workload's entire process group. Signalling an
// already exited workload is a logged no-op, surfaced as ErrWorkloadExited
// so the suspend controller can tell delivery did not happen.
func (s *ChildSupervisor) Signal(sig unix.Signal) error {
	if s.workload == nil || s.workload.exited {
		log.WithField("signal", unix.SignalName(sig)).Info("workload already exited, dropping signal")
		return ErrWorkloadExited
	}

	log.WithField("signal", unix.SignalName(sig)).
		WithField("pgid", s.workload.Pid).
		Debug("signalling workload process group")

	return unix.Kill(-s.workload.Pid, sig)
}

// MarkExited records the workload's terminal status. A second call is a
// logic defect, not an external condition: the tracked pid is never reused
// within one run, so this aborts loudly instead of corrupting state.
func (s *ChildSupervisor) MarkExited(status unix.WaitStatus) {
	if s.workload == nil {
		log.Panic("cannot record exit status, no workload was spawned")
	}
	if s.workload.exited {
		log.Panicf("workload pid %d marked exited twice", s.workload.Pid)
	}

	s.workload.exited = true
	s.workload.reaped = true
	s.workload.status = status

	log.WithField("pid", s.workload.Pid).
		WithField("exitCode", s.workload.ExitCode()).
		Info("workload exited")
}
