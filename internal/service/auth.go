// Package service provides business logic for the application.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/tripwise/tripwise/internal/auth"
	"github.com/tripwise/tripwise/internal/metrics"
	"github.com/tripwise/tripwise/internal/model"
	"github.com/tripwise/tripwise/internal/repository"
)

// Service errors.
var (
	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingFields      = errors.New("missing required fields")
)

// UserStore is the credential store the auth service depends on.
// *repository.Repository satisfies it; tests substitute fakes.
type UserStore interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
}

// SessionStore holds server-side sessions keyed by opaque token.
// *cache.Cache satisfies it; tests substitute fakes.
type SessionStore interface {
	SetSession(ctx context.Context, session *model.Session, ttl time.Duration) error
	GetSession(ctx context.Context, token string) (*model.Session, error)
	DeleteSession(ctx context.Context, token string) error
}

// dummyHash is verified against when login hits an unknown email, so the
// "no such user" and "wrong password" paths cost the same hashing effort.
var dummyHash = sync.OnceValue(func() string {
	hash, err := auth.HashPassword("tripwise.invalid")
	if err != nil {
		return ""
	}
	return hash
})

// AuthService handles registration, login and logout.
type AuthService struct {
	users      UserStore
	sessions   SessionStore
	sessionTTL time.Duration
	metrics    metrics.Recorder
}

// NewAuthService creates a new AuthService.
func NewAuthService(users UserStore, sessions SessionStore, sessionTTL time.Duration, recorder metrics.Recorder) *AuthService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &AuthService{
		users:      users,
		sessions:   sessions,
		sessionTTL: sessionTTL,
		metrics:    recorder,
	}
}

// Register creates a new user with an argon2id-hashed password.
// The plaintext password is never stored or logged.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*model.User, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)

	if name == "" || email == "" || password == "" {
		return nil, ErrMissingFields
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		ID:           ulid.Make().String(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			s.metrics.IncRegistration("duplicate")
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.metrics.IncRegistration("success")
	return user, nil
}

// Login verifies the credentials and issues a new session on success.
// Unknown email and wrong password are indistinguishable to the caller:
// both return ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.Session, error) {
	email = normalizeEmail(email)

	if email == "" || password == "" {
		s.metrics.IncLogin("failure")
		return nil, ErrInvalidCredentials
	}

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Burn the same hashing effort as the found-user path.
			_, _ = auth.VerifyPassword(password, dummyHash())
			s.metrics.IncLogin("failure")
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	match, err := auth.VerifyPassword(password, user.PasswordHash)
	if err != nil || !match {
		s.metrics.IncLogin("failure")
		return nil, ErrInvalidCredentials
	}

	token, err := auth.NewSessionToken()
	if err != nil {
		return nil, fmt.Errorf("issue session: %w", err)
	}

	now := time.Now().UTC()
	session := &model.Session{
		Token:     token,
		UserID:    user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionTTL),
	}

	if err := s.sessions.SetSession(ctx, session, s.sessionTTL); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	s.metrics.IncLogin("success")
	return session, nil
}

// Logout destroys the session for the given token.
// Idempotent: an absent session is not an error.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.sessions.DeleteSession(ctx, token); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	s.metrics.IncLogout()
	return nil
}

// normalizeEmail trims whitespace and lowercases the login key.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
