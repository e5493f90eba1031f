//go:build linux

package proc

import (
	"golang.org/x/sys/unix"
)

// BecomeSubreaper makes this process adopt orphaned descendants even when
// it is not PID 1, e.g. during development or in tests.
func BecomeSubreaper() error {
	return unix.Prctl(unix.PR_SET_CHILD_SUBREAPER, 1, 0, 0, 0)
}
