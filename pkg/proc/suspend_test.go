package proc_test

import (
	"testing"

	"github.com/hibernite/hibernite/pkg/proc"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

// signalRecorder stands in for the child supervisor so the state machine
// can be exercised without real processes.
type signalRecorder struct {
	sent   []unix.Signal
	failOn map[unix.Signal]error
}

func (r *signalRecorder) Signal(sig unix.Signal) error {
	if err, ok := r.failOn[sig]; ok {
		return err
	}
	r.sent = append(r.sent, sig)
	return nil
}

func TestSuspendIssuesGroupStop(t *testing.T) {
	recorder := &signalRecorder{}
	controller := proc.NewSuspendController(recorder)

	controller.Suspend()

	require.Equal(t, proc.StateSuspended, controller.State())
	require.Equal(t, uint64(1), controller.Generation())
	require.Equal(t, []unix.Signal{unix.SIGSTOP}, recorder.sent)
}

func TestForwardDeliversLiveWhileRunning(t *testing.T) {
	recorder := &signalRecorder{}
	controller := proc.NewSuspendController(recorder)

	controller.Forward(unix.SIGHUP)
	controller.Forward(unix.SIGHUP)

	require.Equal(t, []unix.Signal{unix.SIGHUP, unix.SIGHUP}, recorder.sent)
	require.Empty(t, controller.QueuedSignals())
}

func TestQueuedSignalsReplayInOriginalOrder(t *testing.T) {
	recorder := &signalRecorder{}
	controller := proc.NewSuspendController(recorder)

	controller.Suspend()
	controller.Forward(unix.SIGHUP)
	controller.Forward(unix.SIGWINCH)
	controller.Forward(unix.SIGHUP) // duplicate collapses into the first
	controller.ResumeCurrent()

	require.Equal(t, proc.StateRunning, controller.State())
	require.Equal(t, []unix.Signal{unix.SIGSTOP, unix.SIGCONT, unix.SIGHUP, unix.SIGWINCH}, recorder.sent)
	require.Empty(t, controller.QueuedSignals())
}

func TestTerminateWhileSuspendedResumesFirst(t *testing.T) {
	recorder := &signalRecorder{}
	controller := proc.NewSuspendController(recorder)

	controller.Suspend()
	controller.Forward(unix.SIGHUP)
	controller.Terminate(unix.SIGTERM)

	// continue strictly before terminate, queued signals are dropped
	require.Equal(t, []unix.Signal{unix.SIGSTOP, unix.SIGCONT, unix.SIGTERM}, recorder.sent)
	require.Equal(t, proc.StateRunning, controller.State())
	require.Empty(t, controller.QueuedSignals())
}

func TestTerminateWhileRunningDeliversDirectly(t *testing.T) {
	recorder := &signalRecorder{}
	controller := proc.NewSuspendController(recorder)

	controller.Terminate(unix.SIGINT)

	require.Equal(t, []unix.Signal{unix.SIGINT}, recorder.sent)
}

func TestStaleResumeIsIgnored(t *testing.T) {
	recorder := &signalRecorder{}
	controller := proc.NewSuspendController(recorder)

	controller.Suspend()
	controller.Resume(controller.Generation() + 1)

	require.Equal(t, proc.StateSuspended, controller.State())
	require.Equal(t, []unix.Signal{unix.SIGSTOP}, recorder.sent)
}

func TestResumeWhileRunningIsIgnored(t *testing.T) {
	recorder := &signalRecorder{}
	controller := proc.NewSuspendController(recorder)

	controller.ResumeCurrent()

	require.Equal(t, proc.StateRunning, controller.State())
	require.Empty(t, recorder.sent)
}

func TestSuspendWhileSuspendedIsIgnored(t *testing.T) {
	recorder := &signalRecorder{}
	controller := proc.NewSuspendController(recorder)

	controller.Suspend()
	controller.Suspend()

	require.Equal(t, proc.StateSuspended, controller.State())
	require.Equal(t, uint64(1), controller.Generation())
	require.Equal(t, []unix.Signal{unix.SIGSTOP}, recorder.sent)
}

func TestEachSuspendCycleIncrementsGeneration(t *testing.T) {
	recorder := &signalRecorder{}
	controller := proc.NewSuspendController(recorder)

	controller.Suspend()
	controller.ResumeCurrent()
	controller.Suspend()

	require.Equal(t, uint64(2), controller.Generation())
}

func TestFailedGroupStopResetsToRunning(t *testing.T) {
	recorder := &signalRecorder{failOn: map[unix.Signal]error{unix.SIGSTOP: unix.ESRCH}}
	controller := proc.NewSuspendController(recorder)

	controller.Suspend()

	require.Equal(t, proc.StateRunning, controller.State())
	require.Empty(t, recorder.sent)
	require.Empty(t, controller.QueuedSignals())
}

func TestFailedGroupContinueDiscardsQueue(t *testing.T) {
	recorder := &signalRecorder{failOn: map[unix.Signal]error{unix.SIGCONT: unix.ESRCH}}
	controller := proc.NewSuspendController(recorder)

	controller.Suspend()
	controller.Forward(unix.SIGHUP)
	controller.ResumeCurrent()

	// no replay against a process that is gone
	require.Equal(t, proc.StateRunning, controller.State())
	require.Equal(t, []unix.Signal{unix.SIGSTOP}, recorder.sent)
	require.Empty(t, controller.QueuedSignals())
}
