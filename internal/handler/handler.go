// Package handler provides HTTP request handlers.
package handler

import (
	"encoding/json"
	"net/http"
)

// homePage is the landing page with the register and login forms.
const homePage = `<!DOCTYPE html>
<html>
<head><title>Tripwise</title></head>
<body>
<h2>Tripwise Travel Planner</h2>

<h3>Register</h3>
<form method="POST" action="/register">
    Name: <input name="name" required /><br/>
    Email: <input name="email" type="email" required /><br/>
    Password: <input name="password" type="password" required /><br/>
    <button type="submit">Register</button>
</form>

<h3>Login</h3>
<form method="POST" action="/login">
    Email: <input name="email" type="email" required /><br/>
    Password: <input name="password" type="password" required /><br/>
    <button type="submit">Login</button>
</form>
</body>
</html>`

// Handler serves the static pages and fallback responses.
type Handler struct{}

// New creates a new Handler instance.
func New() *Handler {
	return &Handler{}
}

// Home serves the landing page with register/login forms.
// GET /
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	writeHTML(w, http.StatusOK, homePage)
}

// NotFound handles 404 responses.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"error": "resource not found",
	}
	writeJSON(w, http.StatusNotFound, response)
}

// MethodNotAllowed handles 405 responses.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"error": "method not allowed",
	}
	writeJSON(w, http.StatusMethodNotAllowed, response)
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		_ = err
	}
}

// writeHTML writes an HTML response with the given status code.
func writeHTML(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}
