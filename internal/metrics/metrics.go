// Package metrics provides lightweight hooks for instrumentation.
package metrics

// Recorder captures metric events for the application.
// Implementations can expose these to Prometheus, StatsD, etc.
type Recorder interface {
	// Project management metrics
	IncProjectCreated()
	IncProjectUpdated()
	IncProjectDeleted()

	// Waitlist metrics
	IncWaitlistSignup()
	IncWaitlistDuplicate()

	// Admin gate metrics
	IncAuthFailure()
}

// Snapshotter exposes a snapshot of current metrics.
type Snapshotter interface {
	Snapshot() Snapshot
}
