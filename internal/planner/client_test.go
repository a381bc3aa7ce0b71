package planner

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newTestClient(baseURL string) *Client {
	return NewClient(Config{
		BaseURL:     baseURL,
		APIKey:      "gsk_test_key",
		Model:       "llama-3.3-70b-versatile",
		Temperature: 0.8,
		Timeout:     5 * time.Second,
	})
}

func TestComplete_Success(t *testing.T) {
	t.Parallel()

	var gotPath, gotAuth string
	var gotBody chatRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request body: %v", err)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"Day 1: Louvre. Day 2: Montmartre. Day 3: Versailles."}}]}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)

	reply, err := client.Complete(context.Background(), "3 day trip to Paris")
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}

	if !strings.Contains(reply, "Day 1") {
		t.Errorf("unexpected reply: %s", reply)
	}

	if gotPath != "/chat/completions" {
		t.Errorf("expected path /chat/completions, got %s", gotPath)
	}
	if gotAuth != "Bearer gsk_test_key" {
		t.Errorf("unexpected Authorization header: %s", gotAuth)
	}
	if gotBody.Model != "llama-3.3-70b-versatile" {
		t.Errorf("unexpected model: %s", gotBody.Model)
	}
	if gotBody.Temperature != 0.8 {
		t.Errorf("unexpected temperature: %f", gotBody.Temperature)
	}
	if len(gotBody.Messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(gotBody.Messages))
	}
	if gotBody.Messages[0].Role != "system" || gotBody.Messages[0].Content != SystemPrompt {
		t.Errorf("first message should be the fixed system prompt")
	}
	if gotBody.Messages[1].Role != "user" || gotBody.Messages[1].Content != "3 day trip to Paris" {
		t.Errorf("second message should be the user message verbatim, got %+v", gotBody.Messages[1])
	}
}

func TestComplete_UpstreamError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"invalid api key"}}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)

	_, err := client.Complete(context.Background(), "3 day trip to Paris")
	if err == nil {
		t.Fatal("expected error for upstream 401")
	}
	if !strings.Contains(err.Error(), "status 401") {
		t.Errorf("error should carry upstream status, got: %v", err)
	}
}

func TestComplete_MalformedResponse(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)

	_, err := client.Complete(context.Background(), "anywhere")
	if err == nil {
		t.Fatal("expected error for malformed response")
	}
}

func TestComplete_EmptyChoices(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)

	_, err := client.Complete(context.Background(), "anywhere")
	if !errors.Is(err, ErrEmptyCompletion) {
		t.Errorf("expected ErrEmptyCompletion, got: %v", err)
	}
}

func TestComplete_ContextCancelled(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Complete(ctx, "anywhere")
	if err == nil {
		t.Fatal("expected error for cancelled context")
	}
}
