//go:build !linux

package proc

// BecomeSubreaper is a no-op on platforms without subreaper support;
// orphans are only adopted when running as PID 1 there.
func BecomeSubreaper() error {
	return nil
}
