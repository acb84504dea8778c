package adapter

import (
	"context"
	"errors"
)

// Sampling temperature for every audit call. Kept low so repeated audits of
// the same text grade consistently.
const samplingTemperature = 0.2

// ErrNotConfigured marks an adapter whose credential or endpoint is missing.
// Handlers map it to a server configuration error rather than a client error.
var ErrNotConfigured = errors.New("adapter not configured")

// Request carries one audit prompt to an LLM backend.
type Request struct {
	// System is the system prompt. Empty for free-form prompts, where the
	// whole instruction travels in User.
	System string
	// User is the user message.
	User string
	// JSONMode asks the backend for strict JSON output where the API
	// supports it. Backends without a JSON switch rely on the prompt alone.
	JSONMode bool
}

// LLMAdapter defines the contract for LLM backends.
type LLMAdapter interface {
	Name() string
	Complete(ctx context.Context, req Request) (string, error)
	Available() bool
}

// ModelInfo is exposed via GET /api/models.
type ModelInfo struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Provider string `json:"provider"`
}
