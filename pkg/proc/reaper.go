package proc

import (
	log "github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"
)

// ReapExited collects every descendant that has terminated since the last
// call. It polls with WNOHANG until the kernel reports no further exits: a
// single child-state notification may stand for several of them, and each
// must be reaped exactly once or it lingers as a zombie. Finding nothing to
// reap is a normal outcome, the loop calls this speculatively on every
// wake-up.
//
// The tracked workload's status is recorded on the supervisor. Statuses of
// reparented orphans are returned for diagnostics only; collecting them
// from the kernel was the point.
func ReapExited(supervisor *ChildSupervisor) []ReapedProcess {
	var orphans []ReapedProcess

	for {
		var status unix.WaitStatus

		pid, err := unix.Wait4(-1, &status, unix.WNOHANG, nil)
		switch err {
		case nil:
		case unix.EINTR:
			continue
		case unix.ECHILD:
			// no children at all
			return orphans
		default:
			log.WithError(err).Error("failed to wait for child processes")
			return orphans
		}

		if pid == 0 {
			// children exist, none exited
			return orphans
		}

		if supervisor.Owns(pid) {
			supervisor.MarkExited(status)
			continue
		}

		log.WithField("pid", pid).Info("reaped orphaned child")
		orphans = append(orphans, ReapedProcess{Pid: pid, Status: status})
	}
}
