package llmprovider

import (
	"context"
	"time"
)

const (
	// DefaultTemperature keeps classification deterministic.
	DefaultTemperature = 0.0

	// DefaultMaxTokens caps the completion length of every backend call.
	DefaultMaxTokens = 500

	// DefaultTimeout bounds a single backend call when the provider config has none.
	DefaultTimeout = 30 * time.Second
)

// Backend turns a prompt into raw model text.
// Failures are returned as *BackendError.
type Backend interface {
	Invoke(ctx context.Context, prompt string) (string, error)
}

// BackendFunc adapts a plain function to the Backend interface.
type BackendFunc func(ctx context.Context, prompt string) (string, error)

// Invoke calls f(ctx, prompt).
func (f BackendFunc) Invoke(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

// Provider is a Backend bound to a named vendor and model.
type Provider interface {
	Backend

	// Name returns the provider name (e.g., "openai", "gemini")
	Name() string

	// Model returns the model being used
	Model() string
}
