// Package dto defines request/response payloads for the HTTP API.
package dto

// ChatRequest is the body of POST /ai-chat.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is the reply payload for POST /ai-chat.
// On upstream failure Reply carries a generic error text, never the
// internal error detail.
type ChatResponse struct {
	Reply string `json:"reply"`
}

// ErrorResponse is a generic JSON error payload.
type ErrorResponse struct {
	Error string `json:"error"`
}
