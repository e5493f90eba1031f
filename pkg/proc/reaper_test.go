package proc_test

import (
	"os/exec"
	"testing"
	"time"

	"github.com/hibernite/hibernite/pkg/proc"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestReapExitedToleratesHavingNothingToReap(t *testing.T) {
	supervisor := proc.NewChildSupervisor()

	require.Empty(t, proc.ReapExited(supervisor))
}

func TestReapExitedCollectsAllPendingChildren(t *testing.T) {
	supervisor := proc.NewChildSupervisor()

	// several children exit between two notifications; one reap pass must
	// collect every one of them
	pids := map[int]bool{}
	for i := 0; i < 3; i++ {
		cmd := exec.Command("true")
		require.NoError(t, cmd.Start())
		pids[cmd.Process.Pid] = false
	}

	require.Eventually(t, func() bool {
		for _, reaped := range proc.ReapExited(supervisor) {
			if _, ok := pids[reaped.Pid]; ok {
				pids[reaped.Pid] = true
			}
		}
		for _, seen := range pids {
			if !seen {
				return false
			}
		}
		return true
	}, 5*time.Second, 50*time.Millisecond)
}

func TestReapExitedMarksTheTrackedWorkload(t *testing.T) {
	supervisor := proc.NewChildSupervisor()

	workload, err := supervisor.Spawn("sh", []string{"-c", "exit 7"})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		proc.ReapExited(supervisor)
		return workload.Done()
	}, 5*time.Second, 50*time.Millisecond)

	require.Equal(t, 7, workload.ExitCode())
}

func TestReapExitedSeparatesOrphansFromTheWorkload(t *testing.T) {
	supervisor := proc.NewChildSupervisor()

	workload, err := supervisor.Spawn("sleep", []string{"30"})
	require.NoError(t, err)

	orphan := exec.Command("true")
	require.NoError(t, orphan.Start())

	var orphanSeen bool
	require.Eventually(t, func() bool {
		for _, reaped := range proc.ReapExited(supervisor) {
			if reaped.Pid == orphan.Process.Pid {
				orphanSeen = true
			}
		}
		return orphanSeen
	}, 5*time.Second, 50*time.Millisecond)

	require.False(t, workload.Done())

	require.NoError(t, supervisor.Signal(unix.SIGKILL))
	require.Eventually(t, func() bool {
		proc.ReapExited(supervisor)
		return workload.Done()
	}, 5*time.Second, 50*time.Millisecond)
}
