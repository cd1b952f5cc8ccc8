package llmprovider

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"clinic-support-router/config"
	"clinic-support-router/pkg/anthropic"
	"clinic-support-router/pkg/deepseek"
	"clinic-support-router/pkg/gemini"
	"clinic-support-router/pkg/log"
	"clinic-support-router/pkg/openai"
)

// InitializeProviders creates Provider instances from config.LLMConfig.
// Returns providers sorted by priority (ascending) with disabled providers filtered out.
// Providers that fail to initialize are skipped instead of failing the whole run.
func InitializeProviders(ctx context.Context, cfg *config.LLMConfig, l log.Logger) ([]Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("LLM config is nil")
	}

	var enabled []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabled = append(enabled, p)
		}
	}
	if len(enabled) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	sort.SliceStable(enabled, func(i, j int) bool {
		return enabled[i].Priority < enabled[j].Priority
	})

	var providers []Provider
	var initErrors []string
	for _, p := range enabled {
		provider, err := NewProvider(p)
		if err != nil {
			errMsg := fmt.Sprintf("failed to initialize provider %s (priority %d): %v", p.Name, p.Priority, err)
			initErrors = append(initErrors, errMsg)
			l.Warnf(ctx, "pkg.llmprovider.InitializeProviders: %s", errMsg)
			continue
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		return nil, fmt.Errorf("no providers successfully initialized: %s", strings.Join(initErrors, "; "))
	}

	if len(initErrors) > 0 {
		l.Warnf(ctx, "pkg.llmprovider.InitializeProviders: %d provider(s) failed to initialize, continuing with %d",
			len(initErrors), len(providers))
	}

	return providers, nil
}

// NewProvider builds one provider from its config and applies its call timeout.
func NewProvider(cfg config.ProviderConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("provider %s: API key is required", cfg.Name)
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("provider %s: model is required", cfg.Name)
	}

	timeout := DefaultTimeout
	if cfg.Timeout != "" {
		d, err := time.ParseDuration(cfg.Timeout)
		if err != nil {
			return nil, fmt.Errorf("provider %s: invalid timeout: %w", cfg.Name, err)
		}
		timeout = d
	}

	provider, err := createProvider(cfg)
	if err != nil {
		return nil, err
	}
	return WithTimeout(provider, timeout), nil
}

// createProvider creates a concrete provider instance based on the provider config
func createProvider(cfg config.ProviderConfig) (Provider, error) {
	switch strings.ToLower(cfg.Name) {
	case "openai", "groq", "qwen", "alibaba":
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = defaultBaseURL(cfg.Name)
		}
		client, err := openai.New(openai.Config{
			APIKey:      cfg.APIKey,
			Model:       cfg.Model,
			BaseURL:     baseURL,
			MaxTokens:   DefaultMaxTokens,
			Temperature: DefaultTemperature,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create %s client: %w", cfg.Name, err)
		}
		return NewOpenAIAdapter(strings.ToLower(cfg.Name), client), nil

	case "anthropic", "claude":
		client, err := anthropic.New(anthropic.Config{
			APIKey:      cfg.APIKey,
			Model:       cfg.Model,
			BaseURL:     cfg.BaseURL,
			MaxTokens:   DefaultMaxTokens,
			Temperature: DefaultTemperature,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create anthropic client: %w", err)
		}
		return NewAnthropicAdapter(client), nil

	case "gemini":
		client, err := gemini.New(gemini.Config{
			APIKey: cfg.APIKey,
			Model:  cfg.Model,
			APIURL: cfg.BaseURL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		return NewGeminiAdapter(client), nil

	case "deepseek":
		client, err := deepseek.New(deepseek.Config{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			BaseURL: cfg.BaseURL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create deepseek client: %w", err)
		}
		return NewDeepSeekAdapter(client), nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, cfg.Name)
	}
}

func defaultBaseURL(name string) string {
	switch strings.ToLower(name) {
	case "groq":
		return openai.GroqBaseURL
	case "qwen", "alibaba":
		return openai.QwenBaseURL
	default:
		return ""
	}
}
