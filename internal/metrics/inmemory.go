package metrics

import (
	"sync"
	"time"
)

// InMemoryRecorder collects counters in process memory.
// Useful for tests and for the development metrics endpoint.
type InMemoryRecorder struct {
	mu            sync.Mutex
	registrations map[string]int64
	logins        map[string]int64
	logouts       int64
	planRequests  map[string]int64
	planDurations DurationStats
}

// NewInMemory returns a Recorder backed by in-process counters.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{
		registrations: make(map[string]int64),
		logins:        make(map[string]int64),
		planRequests:  make(map[string]int64),
	}
}

// IncRegistration increments the registration counter for a status.
func (m *InMemoryRecorder) IncRegistration(status string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.registrations[status]++
}

// IncLogin increments the login counter for a status.
func (m *InMemoryRecorder) IncLogin(status string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logins[status]++
}

// IncLogout increments the logout counter.
func (m *InMemoryRecorder) IncLogout() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logouts++
}

// IncPlanRequest increments the itinerary request counter for a status.
func (m *InMemoryRecorder) IncPlanRequest(status string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.planRequests[status]++
}

// ObservePlanDuration records one upstream call duration.
func (m *InMemoryRecorder) ObservePlanDuration(duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.planDurations.Count++
	m.planDurations.Total += duration
	if duration > m.planDurations.Max {
		m.planDurations.Max = duration
	}
}

// Snapshot returns a copy of the current counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	snap := Snapshot{
		Registrations: make(map[string]int64, len(m.registrations)),
		Logins:        make(map[string]int64, len(m.logins)),
		Logouts:       m.logouts,
		PlanRequests:  make(map[string]int64, len(m.planRequests)),
		PlanDurations: m.planDurations,
	}
	for k, v := range m.registrations {
		snap.Registrations[k] = v
	}
	for k, v := range m.logins {
		snap.Logins[k] = v
	}
	for k, v := range m.planRequests {
		snap.PlanRequests[k] = v
	}
	return snap
}
