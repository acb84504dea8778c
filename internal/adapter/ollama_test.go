package adapter

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

func TestOllamaAdapterComplete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/api/chat" {
			t.Errorf("expected /api/chat, got %s", r.URL.Path)
		}

		var req ollamaChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}

		if req.Model != "qwen2.5:7b" {
			t.Errorf("model: got %q, want %q", req.Model, "qwen2.5:7b")
		}
		if req.Stream {
			t.Error("expected stream=false")
		}
		if req.Format != "json" {
			t.Errorf("format: got %q, want %q", req.Format, "json")
		}
		if req.Options.Temperature != 0.2 {
			t.Errorf("temperature: got %v, want 0.2", req.Options.Temperature)
		}
		if len(req.Messages) != 2 {
			t.Fatalf("expected 2 messages, got %d", len(req.Messages))
		}
		if req.Messages[0].Role != "system" {
			t.Errorf("first message role: got %q, want %q", req.Messages[0].Role, "system")
		}
		if req.Messages[1].Role != "user" {
			t.Errorf("second message role: got %q, want %q", req.Messages[1].Role, "user")
		}

		resp := ollamaChatResponse{
			Message: ollamaMessage{Role: "assistant", Content: `{"rows": []}`},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	a := &OllamaAdapter{
		BaseURL: srv.URL,
		Model:   "qwen2.5:7b",
		Client:  &http.Client{Timeout: 5 * time.Second},
	}

	got, err := a.Complete(context.Background(), Request{
		System:   "You audit translations.",
		User:     "Check this pair.",
		JSONMode: true,
	})
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if got != `{"rows": []}` {
		t.Errorf("got %q, want %q", got, `{"rows": []}`)
	}
}

func TestOllamaAdapterCompleteNoSystem(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req ollamaChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}

		if req.Format != "" {
			t.Errorf("format: got %q, want empty", req.Format)
		}
		if len(req.Messages) != 1 {
			t.Fatalf("expected 1 message, got %d", len(req.Messages))
		}
		if req.Messages[0].Role != "user" {
			t.Errorf("message role: got %q, want %q", req.Messages[0].Role, "user")
		}

		resp := ollamaChatResponse{
			Message: ollamaMessage{Role: "assistant", Content: "reply"},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	a := &OllamaAdapter{
		BaseURL: srv.URL,
		Model:   "qwen2.5:7b",
		Client:  &http.Client{Timeout: 5 * time.Second},
	}

	got, err := a.Complete(context.Background(), Request{User: "Check this pair."})
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if got != "reply" {
		t.Errorf("got %q, want %q", got, "reply")
	}
}

func TestOllamaAdapterCompleteServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer srv.Close()

	a := &OllamaAdapter{
		BaseURL: srv.URL,
		Model:   "qwen2.5:7b",
		Client:  &http.Client{Timeout: 5 * time.Second},
	}

	_, err := a.Complete(context.Background(), Request{User: "hello"})
	if err == nil {
		t.Fatal("expected error on 404 response, got nil")
	}
	if !strings.Contains(err.Error(), "model not found") {
		t.Errorf("error %q does not carry the response body", err)
	}
}

func TestOllamaAdapterNotConfigured(t *testing.T) {
	a := &OllamaAdapter{
		BaseURL: "",
		Model:   "qwen2.5:7b",
		Client:  &http.Client{Timeout: 5 * time.Second},
	}

	_, err := a.Complete(context.Background(), Request{User: "hello"})
	if !errors.Is(err, ErrNotConfigured) {
		t.Errorf("got %v, want ErrNotConfigured", err)
	}
}

func TestOllamaAdapterCompleteContextCancel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(5 * time.Second)
	}))
	defer srv.Close()

	a := &OllamaAdapter{
		BaseURL: srv.URL,
		Model:   "qwen2.5:7b",
		Client:  &http.Client{Timeout: 5 * time.Second},
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := a.Complete(ctx, Request{User: "hello"})
	if err == nil {
		t.Error("expected error on cancelled context, got nil")
	}
}

func TestOllamaAdapterAvailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := &OllamaAdapter{
		BaseURL: srv.URL,
		Model:   "qwen2.5:7b",
		Client:  &http.Client{Timeout: 1 * time.Second},
	}

	if !a.Available() {
		t.Error("expected available when server is up")
	}
}

func TestOllamaAdapterNotAvailable(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
	}{
		{"unreachable server", "http://localhost:99999"},
		{"no base URL", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &OllamaAdapter{
				BaseURL: tt.baseURL,
				Model:   "qwen2.5:7b",
				Client:  &http.Client{Timeout: 1 * time.Second},
			}
			if a.Available() {
				t.Error("expected not available")
			}
		})
	}
}

func TestOllamaAdapterName(t *testing.T) {
	a := &OllamaAdapter{Model: "qwen2.5:7b"}
	if a.Name() != "Ollama (qwen2.5:7b)" {
		t.Errorf("got %q, want %q", a.Name(), "Ollama (qwen2.5:7b)")
	}
}
