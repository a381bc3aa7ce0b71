package auth

import (
	"context"

	"github.com/tripwise/tripwise/internal/model"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

// sessionContextKey is the context key for storing the request session.
const sessionContextKey contextKey = "session"

// ContextWithSession adds a session to the context.
func ContextWithSession(ctx context.Context, session *model.Session) context.Context {
	return context.WithValue(ctx, sessionContextKey, session)
}

// SessionFromContext retrieves the session from the context.
// Returns nil if the request is unauthenticated.
func SessionFromContext(ctx context.Context) *model.Session {
	session, ok := ctx.Value(sessionContextKey).(*model.Session)
	if !ok {
		return nil
	}
	return session
}

// UserIDFromContext is a convenience function to get the user ID from context.
// Returns empty string if not authenticated.
func UserIDFromContext(ctx context.Context) string {
	session := SessionFromContext(ctx)
	if session == nil {
		return ""
	}
	return session.UserID
}
