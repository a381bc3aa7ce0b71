package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/tripwise/tripwise/internal/model"
)

// sessionKeyPrefix is the Redis key prefix for session records.
const sessionKeyPrefix = "session:"

// SetSession stores a session under its token with the given TTL.
// The token itself is the only thing the client ever sees; the record
// is JSON-encoded server-side state.
func (c *Cache) SetSession(ctx context.Context, session *model.Session, ttl time.Duration) error {
	key := sessionKeyPrefix + session.Token

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("store session: %w", err)
	}

	return nil
}

// GetSession retrieves a session by token.
// Returns nil with no error when the token is unknown or expired - absence
// of a session is not an infrastructure failure.
func (c *Cache) GetSession(ctx context.Context, token string) (*model.Session, error) {
	key := sessionKeyPrefix + token

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		// Miss (redis.Nil) and transient errors both read as "no session";
		// the caller treats that as unauthenticated.
		return nil, nil //nolint:nilerr
	}

	var session model.Session
	if err := json.Unmarshal(data, &session); err != nil {
		// Corrupted entry - treat as miss
		return nil, nil //nolint:nilerr
	}
	session.Token = token

	return &session, nil
}

// DeleteSession removes a session by token.
// Deleting an absent session is not an error, so logout is idempotent.
func (c *Cache) DeleteSession(ctx context.Context, token string) error {
	return c.client.Del(ctx, sessionKeyPrefix+token).Err()
}
