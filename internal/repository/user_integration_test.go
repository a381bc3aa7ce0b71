//go:build integration

package repository

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/tripwise/tripwise/internal/testutil"
)

func newUserTestEnv(t *testing.T) (context.Context, *Repository) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}

	ctx := context.Background()
	dbURL := testutil.RequireEnv(t, "DATABASE_URL")

	repo, err := New(ctx, dbURL)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	t.Cleanup(repo.Close)

	unlock, err := testutil.AcquireDBLock(ctx, repo.Pool())
	if err != nil {
		t.Fatalf("acquire db lock: %v", err)
	}
	t.Cleanup(func() {
		_ = unlock()
	})

	if err := testutil.ResetUsersSchema(ctx, repo.Pool()); err != nil {
		t.Fatalf("reset users schema: %v", err)
	}

	return ctx, repo
}

func TestIntegrationUserRepository_CreateUser(t *testing.T) {
	ctx, repo := newUserTestEnv(t)

	user := testutil.NewTestUser(t, testutil.UniqueEmail("create"))

	if err := repo.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	retrieved, err := repo.GetUserByEmail(ctx, user.Email)
	if err != nil {
		t.Fatalf("GetUserByEmail failed: %v", err)
	}

	if retrieved.ID != user.ID {
		t.Errorf("ID mismatch: got %q, want %q", retrieved.ID, user.ID)
	}
	if retrieved.PasswordHash != user.PasswordHash {
		t.Errorf("PasswordHash mismatch: got %q, want %q", retrieved.PasswordHash, user.PasswordHash)
	}
	if retrieved.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestIntegrationUserRepository_CreateUser_DuplicateEmail(t *testing.T) {
	ctx, repo := newUserTestEnv(t)

	email := testutil.UniqueEmail("dup")
	first := testutil.NewTestUser(t, email)
	second := testutil.NewTestUser(t, email)
	second.ID = first.ID + "-2"

	if err := repo.CreateUser(ctx, first); err != nil {
		t.Fatalf("CreateUser (first) failed: %v", err)
	}

	err := repo.CreateUser(ctx, second)
	if !errors.Is(err, ErrEmailExists) {
		t.Errorf("Expected ErrEmailExists, got: %v", err)
	}
}

func TestIntegrationUserRepository_GetUserByEmail_NotFound(t *testing.T) {
	ctx, repo := newUserTestEnv(t)

	_, err := repo.GetUserByEmail(ctx, testutil.UniqueEmail("missing"))
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("Expected ErrUserNotFound, got: %v", err)
	}
}

func TestIntegrationUserRepository_GetUserByID(t *testing.T) {
	ctx, repo := newUserTestEnv(t)

	user := testutil.NewTestUser(t, testutil.UniqueEmail("byid"))
	if err := repo.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	retrieved, err := repo.GetUserByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetUserByID failed: %v", err)
	}
	if retrieved.Email != user.Email {
		t.Errorf("Email mismatch: got %q, want %q", retrieved.Email, user.Email)
	}

	if _, err := repo.GetUserByID(ctx, "missing-id"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("Expected ErrUserNotFound, got: %v", err)
	}
}

// Concurrent registrations on the same email must produce exactly one row;
// the unique constraint is the source of truth, not application-level checks.
func TestIntegrationUserRepository_ConcurrentDuplicateCreate(t *testing.T) {
	ctx, repo := newUserTestEnv(t)

	email := testutil.UniqueEmail("race")
	const workers = 8

	var wg sync.WaitGroup
	results := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			user := testutil.NewTestUser(t, email)
			user.ID = user.ID + string(rune('a'+n))
			results <- repo.CreateUser(ctx, user)
		}(i)
	}
	wg.Wait()
	close(results)

	var successes, duplicates int
	for err := range results {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, ErrEmailExists):
			duplicates++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}

	if successes != 1 {
		t.Errorf("expected exactly 1 successful insert, got %d", successes)
	}
	if duplicates != workers-1 {
		t.Errorf("expected %d duplicate errors, got %d", workers-1, duplicates)
	}
}
