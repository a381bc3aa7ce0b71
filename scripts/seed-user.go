package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/tripwise/tripwise/internal/auth"
	"github.com/tripwise/tripwise/internal/model"
	"github.com/tripwise/tripwise/internal/repository"
)

type output struct {
	UserID   string `json:"user_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func main() {
	var (
		databaseURL = flag.String("database-url", os.Getenv("DATABASE_URL"), "PostgreSQL connection string")
		name        = flag.String("name", "Demo User", "Display name")
		email       = flag.String("email", "demo@tripwise.local", "User email")
		password    = flag.String("password", "", "Password (random if empty)")
		format      = flag.String("format", "plain", "Output format: plain or json")
	)
	flag.Parse()

	if *databaseURL == "" {
		fmt.Fprintln(os.Stderr, "DATABASE_URL is required")
		os.Exit(1)
	}

	plaintext := *password
	if plaintext == "" {
		generated, err := randomPassword()
		if err != nil {
			fmt.Fprintln(os.Stderr, "generate password:", err)
			os.Exit(1)
		}
		plaintext = generated
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	repo, err := repository.New(ctx, *databaseURL)
	if err != nil {
		fmt.Fprintln(os.Stderr, "connect database:", err)
		os.Exit(1)
	}
	defer repo.Close()

	hash, err := auth.HashPassword(plaintext)
	if err != nil {
		fmt.Fprintln(os.Stderr, "hash password:", err)
		os.Exit(1)
	}

	user := &model.User{
		ID:           ulid.Make().String(),
		Name:         *name,
		Email:        strings.ToLower(strings.TrimSpace(*email)),
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			fmt.Fprintln(os.Stderr, "email already registered:", user.Email)
		} else {
			fmt.Fprintln(os.Stderr, "create user:", err)
		}
		os.Exit(1)
	}

	out := output{
		UserID:   user.ID,
		Name:     user.Name,
		Email:    user.Email,
		Password: plaintext,
	}

	switch strings.ToLower(*format) {
	case "plain":
		fmt.Printf("%s %s\n", out.Email, out.Password)
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(out)
	default:
		fmt.Fprintln(os.Stderr, "invalid format; use plain or json")
		os.Exit(1)
	}
}

func randomPassword() (string, error) {
	buf := make([]byte, 12)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
