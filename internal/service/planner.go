package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/tripwise/tripwise/internal/metrics"
)

// Planner service errors.
var (
	ErrUpstream     = errors.New("itinerary generation failed")
	ErrEmptyMessage = errors.New("message is empty")
)

// ChatCompleter generates text for a free-form user message.
// *planner.Client satisfies it; tests substitute deterministic stubs.
type ChatCompleter interface {
	Complete(ctx context.Context, userMessage string) (string, error)
}

// PlannerService proxies trip requests to the chat-completion API.
type PlannerService struct {
	completer ChatCompleter
	logger    *slog.Logger
	metrics   metrics.Recorder
}

// NewPlannerService creates a new PlannerService.
func NewPlannerService(completer ChatCompleter, logger *slog.Logger, recorder metrics.Recorder) *PlannerService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &PlannerService{
		completer: completer,
		logger:    logger,
		metrics:   recorder,
	}
}

// PlanTrip forwards the message upstream and returns the itinerary text.
// Any upstream failure collapses to ErrUpstream; the detail is logged for
// operators but never surfaced to the client.
func (s *PlannerService) PlanTrip(ctx context.Context, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", ErrEmptyMessage
	}

	start := time.Now()
	reply, err := s.completer.Complete(ctx, message)
	s.metrics.ObservePlanDuration(time.Since(start))

	if err != nil {
		s.logger.Error("chat completion failed", "error", err)
		s.metrics.IncPlanRequest("failure")
		return "", ErrUpstream
	}

	s.metrics.IncPlanRequest("success")
	return reply, nil
}
