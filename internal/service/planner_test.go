package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/tripwise/tripwise/internal/metrics"
	"github.com/tripwise/tripwise/internal/testutil"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPlanTrip_Success(t *testing.T) {
	t.Parallel()

	stub := &testutil.StubCompleter{Reply: "Day 1: Eiffel Tower. Day 2: Louvre. Day 3: Versailles."}
	svc := NewPlannerService(stub, discardLogger(), nil)

	reply, err := svc.PlanTrip(context.Background(), "3 day trip to Paris")
	if err != nil {
		t.Fatalf("PlanTrip failed: %v", err)
	}
	if reply != stub.Reply {
		t.Errorf("unexpected reply: %s", reply)
	}

	calls := stub.Calls()
	if len(calls) != 1 || calls[0] != "3 day trip to Paris" {
		t.Errorf("user message should be forwarded verbatim, got %v", calls)
	}
}

func TestPlanTrip_UpstreamFailureCollapsed(t *testing.T) {
	t.Parallel()

	stub := &testutil.StubCompleter{Err: errors.New("dial tcp: connection refused")}
	svc := NewPlannerService(stub, discardLogger(), nil)

	_, err := svc.PlanTrip(context.Background(), "weekend in Rome")
	if !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}

	// The internal detail must not leak through the returned error.
	if got := err.Error(); got != ErrUpstream.Error() {
		t.Errorf("upstream detail leaked: %s", got)
	}
}

func TestPlanTrip_EmptyMessage(t *testing.T) {
	t.Parallel()

	stub := &testutil.StubCompleter{Reply: "unused"}
	svc := NewPlannerService(stub, discardLogger(), nil)

	_, err := svc.PlanTrip(context.Background(), "")
	if !errors.Is(err, ErrEmptyMessage) {
		t.Fatalf("expected ErrEmptyMessage, got %v", err)
	}
	if len(stub.Calls()) != 0 {
		t.Error("empty message must not reach the upstream API")
	}
}

func TestPlanTrip_Metrics(t *testing.T) {
	t.Parallel()

	recorder := metrics.NewInMemory()

	okStub := &testutil.StubCompleter{Reply: "itinerary"}
	svc := NewPlannerService(okStub, discardLogger(), recorder)
	if _, err := svc.PlanTrip(context.Background(), "Lisbon"); err != nil {
		t.Fatalf("PlanTrip failed: %v", err)
	}

	failStub := &testutil.StubCompleter{Err: errors.New("boom")}
	svc = NewPlannerService(failStub, discardLogger(), recorder)
	if _, err := svc.PlanTrip(context.Background(), "Lisbon"); !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}

	snap := recorder.Snapshot()
	if snap.PlanRequests["success"] != 1 {
		t.Errorf("expected 1 success, got %d", snap.PlanRequests["success"])
	}
	if snap.PlanRequests["failure"] != 1 {
		t.Errorf("expected 1 failure, got %d", snap.PlanRequests["failure"])
	}
	if snap.PlanDurations.Count != 2 {
		t.Errorf("expected 2 duration observations, got %d", snap.PlanDurations.Count)
	}
}
