package adapter

import (
	"context"
	"fmt"
	"time"
)

// mockReply is a small but complete audit report, shaped like a real model
// reply for a short Spanish-to-English translation.
const mockReply = `{
  "rows": [
    {
      "index": 1,
      "source": "Buenos días a todos.",
      "translation": "Good morning to everyone.",
      "issues": "Slightly literal; \"a todos\" is normally dropped in English greetings.",
      "fix": "Good morning, everyone.",
      "score": "5/3/5",
      "severity": "minor"
    },
    {
      "index": 2,
      "source": "Gracias por su atención.",
      "translation": "Thanks for your attention.",
      "issues": "Register mismatch: the source is formal, the translation casual.",
      "fix": "Thank you for your attention.",
      "score": "5/4/4",
      "severity": "minor"
    }
  ],
  "summary": "The translation is accurate but leans literal in places.",
  "style_rules": [
    "Prefer idiomatic phrasing over word-for-word renderings.",
    "Match the register of the source text."
  ]
}`

// MockAdapter returns a canned report with a configurable delay.
// Used for development and testing without a real LLM backend.
type MockAdapter struct {
	Delay time.Duration
	Reply string // overrides the built-in sample report when non-empty
}

func (m *MockAdapter) Name() string { return "Mock" }

func (m *MockAdapter) Complete(ctx context.Context, req Request) (string, error) {
	if m.Delay > 0 {
		select {
		case <-time.After(m.Delay):
		case <-ctx.Done():
			return "", fmt.Errorf("mock: %w", ctx.Err())
		}
	}

	if m.Reply != "" {
		return m.Reply, nil
	}
	return mockReply, nil
}

func (m *MockAdapter) Available() bool { return true }
