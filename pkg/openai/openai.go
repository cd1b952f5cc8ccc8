// Package openai wraps the OpenAI chat completions API. Any OpenAI-compatible
// endpoint (Groq, DashScope/Qwen) is reached by setting BaseURL.
package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	openaisdk "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const (
	DefaultModel     = "gpt-4o-mini"
	DefaultMaxTokens = 500

	GroqBaseURL = "https://api.groq.com/openai/v1"
	QwenBaseURL = "https://dashscope-intl.aliyuncs.com/compatible-mode/v1"
)

// ErrNoChoices is returned when the completion carries no choices.
var ErrNoChoices = errors.New("openai: completion has no choices")

// Config holds client configuration.
type Config struct {
	APIKey      string
	Model       string
	BaseURL     string
	MaxTokens   int
	Temperature float64
	HTTPClient  *http.Client
}

// Client sends single-prompt chat completions.
type Client struct {
	client      openaisdk.Client
	model       string
	maxTokens   int
	temperature float64
}

// New creates a client. SDK-level retries are disabled; callers decide on retries.
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai: APIKey is required")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = DefaultMaxTokens
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.HTTPClient != nil {
		opts = append(opts, option.WithHTTPClient(cfg.HTTPClient))
	}

	return &Client{
		client:      openaisdk.NewClient(opts...),
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
	}, nil
}

// Model returns the model being used.
func (c *Client) Model() string {
	return c.model
}

// GenerateText sends prompt as a single user message and returns the first choice.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	completion, err := c.client.Chat.Completions.New(ctx, openaisdk.ChatCompletionNewParams{
		Model: openaisdk.ChatModel(c.model),
		Messages: []openaisdk.ChatCompletionMessageParamUnion{
			openaisdk.UserMessage(prompt),
		},
		Temperature: openaisdk.Float(c.temperature),
		MaxTokens:   openaisdk.Int(int64(c.maxTokens)),
	})
	if err != nil {
		return "", fmt.Errorf("openai generate: %w", err)
	}

	if len(completion.Choices) == 0 {
		return "", ErrNoChoices
	}
	return completion.Choices[0].Message.Content, nil
}

// StatusCode extracts the HTTP status of an API error, if err carries one.
func StatusCode(err error) (int, bool) {
	var apiErr *openaisdk.Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode, true
	}
	return 0, false
}
