package llmprovider

import (
	"context"
	"strings"
	"time"

	"clinic-support-router/pkg/anthropic"
	"clinic-support-router/pkg/deepseek"
	"clinic-support-router/pkg/gemini"
	"clinic-support-router/pkg/openai"
)

// OpenAIAdapter adapts pkg/openai to the Provider interface.
// The same adapter serves every OpenAI-compatible vendor (openai, groq, qwen).
type OpenAIAdapter struct {
	name   string
	client *openai.Client
}

// NewOpenAIAdapter creates an adapter reported under name.
func NewOpenAIAdapter(name string, client *openai.Client) *OpenAIAdapter {
	return &OpenAIAdapter{name: name, client: client}
}

// Invoke implements Backend
func (a *OpenAIAdapter) Invoke(ctx context.Context, prompt string) (string, error) {
	text, err := a.client.GenerateText(ctx, prompt)
	return checkText(a.name, text, err)
}

// Name returns provider name
func (a *OpenAIAdapter) Name() string {
	return a.name
}

// Model returns model name
func (a *OpenAIAdapter) Model() string {
	return a.client.Model()
}

// AnthropicAdapter adapts pkg/anthropic to the Provider interface.
type AnthropicAdapter struct {
	client *anthropic.Client
}

// NewAnthropicAdapter creates a new Anthropic adapter
func NewAnthropicAdapter(client *anthropic.Client) *AnthropicAdapter {
	return &AnthropicAdapter{client: client}
}

// Invoke implements Backend
func (a *AnthropicAdapter) Invoke(ctx context.Context, prompt string) (string, error) {
	text, err := a.client.GenerateText(ctx, prompt)
	return checkText(a.Name(), text, err)
}

// Name returns provider name
func (a *AnthropicAdapter) Name() string {
	return "anthropic"
}

// Model returns model name
func (a *AnthropicAdapter) Model() string {
	return a.client.Model()
}

// GeminiAdapter adapts pkg/gemini to the Provider interface.
type GeminiAdapter struct {
	client *gemini.Client
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client *gemini.Client) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// Invoke implements Backend
func (a *GeminiAdapter) Invoke(ctx context.Context, prompt string) (string, error) {
	text, err := a.client.GenerateText(ctx, prompt, DefaultTemperature, DefaultMaxTokens)
	return checkText(a.Name(), text, err)
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

// DeepSeekAdapter adapts pkg/deepseek to the Provider interface.
type DeepSeekAdapter struct {
	client deepseek.IDeepSeek
}

// NewDeepSeekAdapter creates a new DeepSeek adapter
func NewDeepSeekAdapter(client deepseek.IDeepSeek) *DeepSeekAdapter {
	return &DeepSeekAdapter{client: client}
}

// Invoke implements Backend
func (a *DeepSeekAdapter) Invoke(ctx context.Context, prompt string) (string, error) {
	resp, err := a.client.GenerateContent(ctx, &deepseek.Request{
		Messages:    []deepseek.Message{{Role: "user", Content: prompt}},
		Temperature: DefaultTemperature,
		MaxTokens:   DefaultMaxTokens,
	})
	if err != nil {
		return "", NewBackendError(a.Name(), err)
	}

	var text string
	if len(resp.Choices) > 0 {
		text = resp.Choices[0].Message.Content
	}
	return checkText(a.Name(), text, nil)
}

// Name returns provider name
func (a *DeepSeekAdapter) Name() string {
	return "deepseek"
}

// Model returns model name
func (a *DeepSeekAdapter) Model() string {
	return a.client.Model()
}

func checkText(provider, text string, err error) (string, error) {
	if err != nil {
		return "", NewBackendError(provider, err)
	}
	if strings.TrimSpace(text) == "" {
		return "", &BackendError{Provider: provider, Kind: KindUnknown, Err: ErrEmptyResponse}
	}
	return text, nil
}

// timeoutProvider bounds every call of the wrapped provider.
type timeoutProvider struct {
	Provider
	timeout time.Duration
}

// WithTimeout wraps p so that each Invoke gets its own deadline.
// A call cut off by that deadline fails with KindTimeout.
func WithTimeout(p Provider, timeout time.Duration) Provider {
	if timeout <= 0 {
		return p
	}
	return &timeoutProvider{Provider: p, timeout: timeout}
}

func (t *timeoutProvider) Invoke(ctx context.Context, prompt string) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	text, err := t.Provider.Invoke(callCtx, prompt)
	if err != nil && callCtx.Err() == context.DeadlineExceeded && ctx.Err() == nil {
		return "", &BackendError{Provider: t.Name(), Kind: KindTimeout, Err: err}
	}
	return text, err
}
