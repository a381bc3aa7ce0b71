package metrics

import "time"

// NoopRecorder implements Recorder with no-op methods.
type NoopRecorder struct{}

// NewNoop returns a Recorder that discards all metrics.
func NewNoop() Recorder {
	return &NoopRecorder{}
}

// IncRegistration is a no-op.
func (n *NoopRecorder) IncRegistration(status string) {}

// IncLogin is a no-op.
func (n *NoopRecorder) IncLogin(status string) {}

// IncLogout is a no-op.
func (n *NoopRecorder) IncLogout() {}

// IncPlanRequest is a no-op.
func (n *NoopRecorder) IncPlanRequest(status string) {}

// ObservePlanDuration is a no-op.
func (n *NoopRecorder) ObservePlanDuration(duration time.Duration) {}
