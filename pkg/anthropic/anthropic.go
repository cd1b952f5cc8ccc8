// Package anthropic wraps the Anthropic messages API for single-prompt calls.
package anthropic

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	anthropicsdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const (
	DefaultModel     = "claude-sonnet-4-20250514"
	DefaultMaxTokens = 500
)

// ErrNoText is returned when the message has no text block.
var ErrNoText = errors.New("anthropic: message has no text content")

// Config holds client configuration.
type Config struct {
	APIKey      string
	Model       string
	BaseURL     string
	MaxTokens   int
	Temperature float64
	HTTPClient  *http.Client
}

// Client sends single-prompt message requests.
type Client struct {
	client      anthropicsdk.Client
	model       string
	maxTokens   int
	temperature float64
}

// New creates a client. SDK-level retries are disabled; callers decide on retries.
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("anthropic: APIKey is required")
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
		client:      anthropicsdk.NewClient(opts...),
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
	}, nil
}

// Model returns the model being used.
func (c *Client) Model() string {
	return c.model
}

// GenerateText sends prompt as a single user message and joins the text blocks.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	msg, err := c.client.Messages.New(ctx, anthropicsdk.MessageNewParams{
		Model:     anthropicsdk.Model(c.model),
		MaxTokens: int64(c.maxTokens),
		Messages: []anthropicsdk.MessageParam{
			anthropicsdk.NewUserMessage(anthropicsdk.NewTextBlock(prompt)),
		},
		Temperature: anthropicsdk.Float(c.temperature),
	})
	if err != nil {
		return "", fmt.Errorf("anthropic generate: %w", err)
	}

	var text string
	found := false
	for _, block := range msg.Content {
		if b, ok := block.AsAny().(anthropicsdk.TextBlock); ok {
			text += b.Text
			found = true
		}
	}
	if !found {
		return "", ErrNoText
	}
	return text, nil
}

// StatusCode extracts the HTTP status of an API error, if err carries one.
func StatusCode(err error) (int, bool) {
	var apiErr *anthropicsdk.Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode, true
	}
	return 0, false
}
