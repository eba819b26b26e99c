// Package llm wraps the language-model service the pipeline talks to.
//
// The pipeline only ever needs three operations, so the collaborator surface
// is kept that narrow. Failure is always signaled by an error return, never
// by stale or placeholder content; degradation decisions belong to callers.
package llm

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Client is the language-model collaborator. Implementations must be safe
// for concurrent use; the word processor calls them from parallel workers.
type Client interface {
	// Explain returns the detailed labeled-section explanation for a word.
	Explain(ctx context.Context, word string) (string, error)

	// Monologue returns a short narrated passage using the word repeatedly,
	// in the fixed Monologue/Explanation/Pronunciation layout.
	Monologue(ctx context.Context, word string) (string, error)

	// Generate runs a free-form prompt and returns the raw model text.
	Generate(ctx context.Context, prompt string) (string, error)
}

// ErrNoContent is returned when the model answered but produced no usable
// text (empty choices, empty candidates).
var ErrNoContent = errors.New("no content in model response")

// Config selects and configures the model provider.
type Config struct {
	Provider string // "openai" or "gemini"
	APIKey   string
	Model    string // provider-specific model name, empty for the default

	// Timeout bounds each individual model call. Zero means the provider
	// default of 60s.
	Timeout time.Duration
}

const defaultTimeout = 60 * time.Second

// NewClient creates the configured model client wrapped in a circuit
// breaker.
func NewClient(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("llm config is required")
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%s API key is required", cfg.Provider)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	var inner Client
	var err error
	switch cfg.Provider {
	case "openai":
		inner = newOpenAIClient(cfg)
	case "gemini":
		inner, err = newGeminiClient(cfg)
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", cfg.Provider)
	}
	if err != nil {
		return nil, err
	}
	return newBreaker(cfg.Provider, inner), nil
}

// callContext applies the configured per-call timeout on top of the caller's
// context.
func callContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return context.WithTimeout(ctx, timeout)
}
