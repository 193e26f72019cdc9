package metrics

// NoopRecorder discards all metric events.
type NoopRecorder struct{}

// NewNoop returns a Recorder that does nothing.
func NewNoop() *NoopRecorder {
	return &NoopRecorder{}
}

func (NoopRecorder) IncProjectCreated()    {}
func (NoopRecorder) IncProjectUpdated()    {}
func (NoopRecorder) IncProjectDeleted()    {}
func (NoopRecorder) IncWaitlistSignup()    {}
func (NoopRecorder) IncWaitlistDuplicate() {}
func (NoopRecorder) IncAuthFailure()       {}
