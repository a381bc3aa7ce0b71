package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/tripwise/tripwise/internal/model"
	"github.com/tripwise/tripwise/internal/repository"
)

// FakeUserStore is an in-memory credential store for unit tests.
// It enforces email uniqueness the way the real table does.
type FakeUserStore struct {
	mu      sync.Mutex
	byEmail map[string]*model.User

	// CreateErr, when set, is returned by CreateUser to simulate outages.
	CreateErr error
}

// NewFakeUserStore creates an empty FakeUserStore.
func NewFakeUserStore() *FakeUserStore {
	return &FakeUserStore{byEmail: make(map[string]*model.User)}
}

// CreateUser inserts a user, failing on duplicate email.
func (f *FakeUserStore) CreateUser(ctx context.Context, user *model.User) error {
	if f.CreateErr != nil {
		return f.CreateErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if _, exists := f.byEmail[user.Email]; exists {
		return repository.ErrEmailExists
	}
	clone := *user
	f.byEmail[user.Email] = &clone
	return nil
}

// GetUserByEmail returns the stored user or repository.ErrUserNotFound.
func (f *FakeUserStore) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	user, ok := f.byEmail[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	clone := *user
	return &clone, nil
}

// Count returns the number of stored users.
func (f *FakeUserStore) Count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.byEmail)
}

// FakeSessionStore is an in-memory session store for unit tests.
type FakeSessionStore struct {
	mu       sync.Mutex
	byToken  map[string]*model.Session
	expiries map[string]time.Time
}

// NewFakeSessionStore creates an empty FakeSessionStore.
func NewFakeSessionStore() *FakeSessionStore {
	return &FakeSessionStore{
		byToken:  make(map[string]*model.Session),
		expiries: make(map[string]time.Time),
	}
}

// SetSession stores a session under its token.
func (f *FakeSessionStore) SetSession(ctx context.Context, session *model.Session, ttl time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	clone := *session
	f.byToken[session.Token] = &clone
	f.expiries[session.Token] = time.Now().Add(ttl)
	return nil
}

// GetSession returns the stored session, or nil on miss or TTL expiry.
func (f *FakeSessionStore) GetSession(ctx context.Context, token string) (*model.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	session, ok := f.byToken[token]
	if !ok {
		return nil, nil
	}
	if expiry, ok := f.expiries[token]; ok && time.Now().After(expiry) {
		delete(f.byToken, token)
		delete(f.expiries, token)
		return nil, nil
	}
	clone := *session
	return &clone, nil
}

// DeleteSession removes a session; absent tokens are not an error.
func (f *FakeSessionStore) DeleteSession(ctx context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.byToken, token)
	delete(f.expiries, token)
	return nil
}

// Count returns the number of live sessions.
func (f *FakeSessionStore) Count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.byToken)
}

// StubCompleter is a deterministic ChatCompleter for tests.
type StubCompleter struct {
	Reply string
	Err   error

	mu    sync.Mutex
	calls []string
}

// Complete records the message and returns the configured reply or error.
func (s *StubCompleter) Complete(ctx context.Context, userMessage string) (string, error) {
	s.mu.Lock()
	s.calls = append(s.calls, userMessage)
	s.mu.Unlock()

	if s.Err != nil {
		return "", s.Err
	}
	return s.Reply, nil
}

// Calls returns the messages seen so far.
func (s *StubCompleter) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.calls...)
}
