package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/tripwise/tripwise/internal/auth"
	"github.com/tripwise/tripwise/internal/model"
)

// SessionGetter looks up a live session by its opaque token.
// *cache.Cache satisfies it; tests substitute fakes.
type SessionGetter interface {
	GetSession(ctx context.Context, token string) (*model.Session, error)
}

// SessionConfig holds configuration for the session middleware.
type SessionConfig struct {
	Logger     *slog.Logger
	Sessions   SessionGetter
	CookieName string
}

// Session returns a middleware that resolves the session cookie.
// The store is consulted on every request - authorization decisions are
// never cached across requests. An absent, malformed or expired token
// simply leaves the request unauthenticated; RequireSession decides what
// that means for the route.
func Session(cfg SessionConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cfg.CookieName)
			if err != nil || !auth.ValidTokenFormat(cookie.Value) {
				next.ServeHTTP(w, r)
				return
			}

			session, err := cfg.Sessions.GetSession(r.Context(), cookie.Value)
			if err != nil {
				cfg.Logger.Error("session lookup failed",
					slog.String("error", err.Error()),
					slog.String("request_id", GetRequestID(r.Context())),
				)
				next.ServeHTTP(w, r)
				return
			}

			if session == nil || session.Expired(time.Now()) {
				next.ServeHTTP(w, r)
				return
			}

			ctx := auth.ContextWithSession(r.Context(), session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireSession gates a browser route on an authenticated session.
// Unauthenticated requests are redirected to redirectTo.
func RequireSession(redirectTo string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if auth.SessionFromContext(r.Context()) == nil {
				http.Redirect(w, r, redirectTo, http.StatusFound)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireSessionJSON gates an API route on an authenticated session.
// Unauthenticated requests get a 401 JSON body instead of a redirect.
func RequireSessionJSON() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if auth.SessionFromContext(r.Context()) == nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":"authentication required"}`))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
