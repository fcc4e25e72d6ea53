// Package llm brokers text generation calls to hosted model providers.
// The browser never talks to a provider directly; requests come through
// the proxy handler so API keys stay out of cross-origin traffic.
package llm

import (
	"context"
	"errors"
	"strings"
)

// Client generates a single text completion for a prompt.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

var ErrUnknownModel = errors.New("llm: unknown model")

// NewClient picks a provider from the model name prefix.
func NewClient(model, apiKey string) (Client, error) {
	switch {
	case strings.HasPrefix(model, "gemini"):
		return NewGemini(model, apiKey), nil
	case strings.HasPrefix(model, "claude"):
		return NewAnthropic(model, apiKey), nil
	}
	return nil, ErrUnknownModel
}

// CleanJSONReply strips markdown code fences that models wrap around
// JSON payloads, returning the bare document.
func CleanJSONReply(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if i := strings.LastIndex(s, "```"); i >= 0 {
			s = s[:i]
		}
	}
	return strings.TrimSpace(s)
}
