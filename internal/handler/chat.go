package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/tripwise/tripwise/internal/handler/dto"
	"github.com/tripwise/tripwise/internal/service"
)

// genericChatError is the only failure text the client ever sees for an
// upstream problem.
const genericChatError = "Error generating response."

// ChatHandler handles the itinerary proxy endpoint.
type ChatHandler struct {
	svc    *service.PlannerService
	logger *slog.Logger
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(svc *service.PlannerService, logger *slog.Logger) *ChatHandler {
	return &ChatHandler{
		svc:    svc,
		logger: logger,
	}
}

// Plan handles POST /ai-chat.
// Body: {"message": "..."}; response: {"reply": "..."}.
func (h *ChatHandler) Plan(w http.ResponseWriter, r *http.Request) {
	var req dto.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
		return
	}

	reply, err := h.svc.PlanTrip(r.Context(), req.Message)
	if err != nil {
		if errors.Is(err, service.ErrEmptyMessage) {
			writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "message is required"})
			return
		}
		// Upstream detail was already logged by the service.
		writeJSON(w, http.StatusInternalServerError, dto.ChatResponse{Reply: genericChatError})
		return
	}

	writeJSON(w, http.StatusOK, dto.ChatResponse{Reply: reply})
}
