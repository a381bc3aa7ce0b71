// Package metrics provides lightweight hooks for instrumentation.
package metrics

import "time"

// Recorder captures metric events for the application.
// Implementations can expose these to Prometheus, StatsD, etc.
type Recorder interface {
	// Auth metrics
	IncRegistration(status string) // status: "success" or "duplicate"
	IncLogin(status string)        // status: "success" or "failure"
	IncLogout()

	// Itinerary proxy metrics
	IncPlanRequest(status string) // status: "success" or "failure"
	ObservePlanDuration(duration time.Duration)
}

// Snapshotter exposes a snapshot of current metrics.
type Snapshotter interface {
	Snapshot() Snapshot
}

// Snapshot is a point-in-time view of collected counters.
type Snapshot struct {
	Registrations map[string]int64 `json:"registrations"`
	Logins        map[string]int64 `json:"logins"`
	Logouts       int64            `json:"logouts"`
	PlanRequests  map[string]int64 `json:"plan_requests"`
	PlanDurations DurationStats    `json:"plan_durations"`
}

// DurationStats summarizes observed durations.
type DurationStats struct {
	Count int64         `json:"count"`
	Total time.Duration `json:"total"`
	Max   time.Duration `json:"max"`
}
