package probe

// Probe checks a single external dependency for readiness.
type Probe interface {
	Exec() error
}
