package metrics

import "testing"

func TestInMemoryRecorder_Counters(t *testing.T) {
	m := NewInMemory()

	m.IncProjectCreated()
	m.IncProjectCreated()
	m.IncProjectUpdated()
	m.IncProjectDeleted()
	m.IncWaitlistSignup()
	m.IncWaitlistDuplicate()
	m.IncAuthFailure()
	m.IncAuthFailure()
	m.IncAuthFailure()

	snap := m.Snapshot()

	if snap.ProjectsCreated != 2 {
		t.Errorf("ProjectsCreated = %d, want 2", snap.ProjectsCreated)
	}
	if snap.ProjectsUpdated != 1 {
		t.Errorf("ProjectsUpdated = %d, want 1", snap.ProjectsUpdated)
	}
	if snap.ProjectsDeleted != 1 {
		t.Errorf("ProjectsDeleted = %d, want 1", snap.ProjectsDeleted)
	}
	if snap.WaitlistSignups != 1 {
		t.Errorf("WaitlistSignups = %d, want 1", snap.WaitlistSignups)
	}
	if snap.WaitlistDuplicates != 1 {
		t.Errorf("WaitlistDuplicates = %d, want 1", snap.WaitlistDuplicates)
	}
	if snap.AuthFailures != 3 {
		t.Errorf("AuthFailures = %d, want 3", snap.AuthFailures)
	}
}
