package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/tripwise/tripwise/internal/service"
)

// AuthHandler handles registration, login and logout.
type AuthHandler struct {
	svc          *service.AuthService
	logger       *slog.Logger
	cookieName   string
	cookieMaxAge time.Duration
	secureCookie bool
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc *service.AuthService, logger *slog.Logger, cookieName string, cookieMaxAge time.Duration, secureCookie bool) *AuthHandler {
	return &AuthHandler{
		svc:          svc,
		logger:       logger,
		cookieName:   cookieName,
		cookieMaxAge: cookieMaxAge,
		secureCookie: secureCookie,
	}
}

// Register handles POST /register (form-encoded name, email, password).
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeHTML(w, http.StatusBadRequest, "Invalid form submission.")
		return
	}

	name := r.PostFormValue("name")
	email := r.PostFormValue("email")
	password := r.PostFormValue("password")

	user, err := h.svc.Register(r.Context(), name, email, password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailExists):
			writeHTML(w, http.StatusConflict, "Email already registered.")
		case errors.Is(err, service.ErrMissingFields):
			writeHTML(w, http.StatusBadRequest, "All fields are required.")
		default:
			h.logger.Error("registration failed", "error", err)
			writeHTML(w, http.StatusInternalServerError, "Registration failed. Please try again.")
		}
		return
	}

	h.logger.Info("user_registered", "user_id", user.ID)

	writeHTML(w, http.StatusOK, `Registration successful! <a href='/'>Go Back</a>`)
}

// Login handles POST /login (form-encoded email, password).
// On success it sets the session cookie and redirects to the dashboard.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeHTML(w, http.StatusBadRequest, "Invalid form submission.")
		return
	}

	email := r.PostFormValue("email")
	password := r.PostFormValue("password")

	session, err := h.svc.Login(r.Context(), email, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			// Same response whether the email is unknown or the password
			// is wrong.
			writeHTML(w, http.StatusUnauthorized, "Invalid login.")
			return
		}
		h.logger.Error("login failed", "error", err)
		writeHTML(w, http.StatusInternalServerError, "Login failed. Please try again.")
		return
	}

	h.logger.Info("user_logged_in", "user_id", session.UserID)

	http.SetCookie(w, h.sessionCookie(session.Token, int(h.cookieMaxAge.Seconds())))
	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

// Logout handles GET /logout.
// Destroys the session (idempotently), clears the cookie and redirects home.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(h.cookieName); err == nil {
		if err := h.svc.Logout(r.Context(), cookie.Value); err != nil {
			h.logger.Error("logout failed", "error", err)
		}
	}

	http.SetCookie(w, h.sessionCookie("", -1))
	http.Redirect(w, r, "/", http.StatusFound)
}

// sessionCookie builds the session cookie with the house attributes.
func (h *AuthHandler) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     h.cookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	}
}
