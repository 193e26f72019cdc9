package metrics

import "sync/atomic"

// Snapshot captures current in-memory counters.
type Snapshot struct {
	ProjectsCreated    uint64
	ProjectsUpdated    uint64
	ProjectsDeleted    uint64
	WaitlistSignups    uint64
	WaitlistDuplicates uint64
	AuthFailures       uint64
}

// InMemoryRecorder stores metrics in process memory.
type InMemoryRecorder struct {
	projectsCreated    uint64
	projectsUpdated    uint64
	projectsDeleted    uint64
	waitlistSignups    uint64
	waitlistDuplicates uint64
	authFailures       uint64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	return Snapshot{
		ProjectsCreated:    atomic.LoadUint64(&m.projectsCreated),
		ProjectsUpdated:    atomic.LoadUint64(&m.projectsUpdated),
		ProjectsDeleted:    atomic.LoadUint64(&m.projectsDeleted),
		WaitlistSignups:    atomic.LoadUint64(&m.waitlistSignups),
		WaitlistDuplicates: atomic.LoadUint64(&m.waitlistDuplicates),
		AuthFailures:       atomic.LoadUint64(&m.authFailures),
	}
}

// IncProjectCreated increments the project created counter.
func (m *InMemoryRecorder) IncProjectCreated() {
	atomic.AddUint64(&m.projectsCreated, 1)
}

// IncProjectUpdated increments the project updated counter.
func (m *InMemoryRecorder) IncProjectUpdated() {
	atomic.AddUint64(&m.projectsUpdated, 1)
}

// IncProjectDeleted increments the project deleted counter.
func (m *InMemoryRecorder) IncProjectDeleted() {
	atomic.AddUint64(&m.projectsDeleted, 1)
}

// IncWaitlistSignup increments the waitlist signup counter.
func (m *InMemoryRecorder) IncWaitlistSignup() {
	atomic.AddUint64(&m.waitlistSignups, 1)
}

// IncWaitlistDuplicate increments the rejected duplicate counter.
func (m *InMemoryRecorder) IncWaitlistDuplicate() {
	atomic.AddUint64(&m.waitlistDuplicates, 1)
}

// IncAuthFailure increments the admin auth failure counter.
func (m *InMemoryRecorder) IncAuthFailure() {
	atomic.AddUint64(&m.authFailures, 1)
}
