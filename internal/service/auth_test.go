package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/tripwise/tripwise/internal/testutil"
)

func newTestAuthService() (*AuthService, *testutil.FakeUserStore, *testutil.FakeSessionStore) {
	users := testutil.NewFakeUserStore()
	sessions := testutil.NewFakeSessionStore()
	svc := NewAuthService(users, sessions, time.Hour, nil)
	return svc, users, sessions
}

func TestRegister_ThenLogin(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc, _, _ := newTestAuthService()

	user, err := svc.Register(ctx, "Alice", "alice@example.com", "pw123")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if user.ID == "" {
		t.Error("registered user should have an ID")
	}
	if user.PasswordHash == "pw123" || !strings.HasPrefix(user.PasswordHash, "$argon2id$") {
		t.Error("password must be stored as an argon2id hash, never plaintext")
	}

	session, err := svc.Login(ctx, "alice@example.com", "pw123")
	if err != nil {
		t.Fatalf("Login after Register failed: %v", err)
	}
	if session.UserID != user.ID {
		t.Errorf("session bound to wrong user: %s != %s", session.UserID, user.ID)
	}
	if session.Name != "Alice" {
		t.Errorf("session should carry the display name, got %s", session.Name)
	}
	if session.Token == "" {
		t.Error("session should have an opaque token")
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc, users, _ := newTestAuthService()

	if _, err := svc.Register(ctx, "Alice", "alice@example.com", "pw123"); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}

	_, err := svc.Register(ctx, "Mallory", "alice@example.com", "other")
	if !errors.Is(err, ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}

	// Original record untouched, no duplicate rows
	if users.Count() != 1 {
		t.Errorf("expected 1 stored user, got %d", users.Count())
	}
	stored, err := users.GetUserByEmail(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail failed: %v", err)
	}
	if stored.Name != "Alice" {
		t.Errorf("original record should be unchanged, got name %s", stored.Name)
	}
}

func TestRegister_MissingFields(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc, users, _ := newTestAuthService()

	tests := []struct {
		name, userName, email, password string
	}{
		{"empty name", "", "a@example.com", "pw"},
		{"empty email", "Alice", "", "pw"},
		{"empty password", "Alice", "a@example.com", ""},
		{"whitespace name", "   ", "a@example.com", "pw"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tt.userName, tt.email, tt.password)
			if !errors.Is(err, ErrMissingFields) {
				t.Errorf("expected ErrMissingFields, got %v", err)
			}
		})
	}

	if users.Count() != 0 {
		t.Errorf("no user should be created, got %d", users.Count())
	}
}

func TestLogin_InvalidCredentialsIndistinguishable(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc, _, _ := newTestAuthService()

	if _, err := svc.Register(ctx, "Alice", "alice@example.com", "pw123"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	// Unknown email and wrong password must fail with the same error.
	_, unknownErr := svc.Login(ctx, "nobody@example.com", "pw123")
	_, wrongPwErr := svc.Login(ctx, "alice@example.com", "wrong")

	if !errors.Is(unknownErr, ErrInvalidCredentials) {
		t.Errorf("unknown email: expected ErrInvalidCredentials, got %v", unknownErr)
	}
	if !errors.Is(wrongPwErr, ErrInvalidCredentials) {
		t.Errorf("wrong password: expected ErrInvalidCredentials, got %v", wrongPwErr)
	}
	if unknownErr.Error() != wrongPwErr.Error() {
		t.Error("the two failure modes must be indistinguishable from the error alone")
	}
}

func TestLogin_EmailNormalized(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc, _, _ := newTestAuthService()

	if _, err := svc.Register(ctx, "Alice", "Alice@Example.COM", "pw123"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if _, err := svc.Login(ctx, "alice@example.com", "pw123"); err != nil {
		t.Errorf("login with normalized email should succeed, got %v", err)
	}
}

func TestLogout_Idempotent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc, _, sessions := newTestAuthService()

	if _, err := svc.Register(ctx, "Alice", "alice@example.com", "pw123"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	session, err := svc.Login(ctx, "alice@example.com", "pw123")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	if err := svc.Logout(ctx, session.Token); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	if sessions.Count() != 0 {
		t.Errorf("session should be destroyed, %d remain", sessions.Count())
	}

	// Destroying an already-absent session is not an error.
	if err := svc.Logout(ctx, session.Token); err != nil {
		t.Errorf("second Logout should be a no-op, got %v", err)
	}
	if err := svc.Logout(ctx, ""); err != nil {
		t.Errorf("Logout with empty token should be a no-op, got %v", err)
	}
}

func TestLogin_SessionExpiry(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	users := testutil.NewFakeUserStore()
	sessions := testutil.NewFakeSessionStore()
	svc := NewAuthService(users, sessions, 10*time.Millisecond, nil)

	if _, err := svc.Register(ctx, "Alice", "alice@example.com", "pw123"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	session, err := svc.Login(ctx, "alice@example.com", "pw123")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	time.Sleep(20 * time.Millisecond)

	got, err := sessions.GetSession(ctx, session.Token)
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}
	if got != nil {
		t.Error("expired session should read as absent")
	}
}
