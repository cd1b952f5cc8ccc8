package llmprovider

import (
	"context"
	"errors"
	"testing"

	"clinic-support-router/config"
	"clinic-support-router/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeProviders(t *testing.T) {
	cfg := &config.LLMConfig{
		Providers: []config.ProviderConfig{
			{Name: "anthropic", Enabled: true, Priority: 3, APIKey: "a", Model: "claude-sonnet-4-20250514"},
			{Name: "openai", Enabled: true, Priority: 1, APIKey: "o", Model: "gpt-4o-mini", Timeout: "5s"},
			{Name: "groq", Enabled: false, Priority: 4, APIKey: "g", Model: "llama3-70b-8192"},
			{Name: "gemini", Enabled: true, Priority: 2, APIKey: "", Model: "gemini-2.0-flash"},
			{Name: "mystery", Enabled: true, Priority: 5, APIKey: "m", Model: "m"},
		},
	}

	providers, err := InitializeProviders(context.Background(), cfg, log.NewNop())
	require.NoError(t, err)
	require.Len(t, providers, 2)
	assert.Equal(t, "openai", providers[0].Name())
	assert.Equal(t, "gpt-4o-mini", providers[0].Model())
	assert.Equal(t, "anthropic", providers[1].Name())
}

func TestInitializeProviders_NoneEnabled(t *testing.T) {
	cfg := &config.LLMConfig{
		Providers: []config.ProviderConfig{{Name: "openai", Enabled: false, APIKey: "k", Model: "m"}},
	}
	_, err := InitializeProviders(context.Background(), cfg, log.NewNop())
	assert.True(t, errors.Is(err, ErrNoProvidersConfigured))
}

func TestInitializeProviders_AllFail(t *testing.T) {
	cfg := &config.LLMConfig{
		Providers: []config.ProviderConfig{{Name: "openai", Enabled: true, Priority: 1, Model: "m"}},
	}
	_, err := InitializeProviders(context.Background(), cfg, log.NewNop())
	assert.Error(t, err)
}

func TestNewProvider(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.ProviderConfig
		wantName string
		wantErr  error
	}{
		{"groq uses openai client", config.ProviderConfig{Name: "groq", APIKey: "k", Model: "llama3-70b-8192"}, "groq", nil},
		{"qwen uses openai client", config.ProviderConfig{Name: "qwen", APIKey: "k", Model: "qwen-plus"}, "qwen", nil},
		{"claude alias", config.ProviderConfig{Name: "claude", APIKey: "k", Model: "claude-sonnet-4-20250514"}, "anthropic", nil},
		{"deepseek", config.ProviderConfig{Name: "deepseek", APIKey: "k", Model: "deepseek-chat"}, "deepseek", nil},
		{"unknown", config.ProviderConfig{Name: "mystery", APIKey: "k", Model: "m"}, "", ErrUnknownProvider},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewProvider(tt.cfg)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, p.Name())
			assert.Equal(t, tt.cfg.Model, p.Model())
		})
	}
}

func TestNewProvider_BadTimeout(t *testing.T) {
	_, err := NewProvider(config.ProviderConfig{Name: "openai", APIKey: "k", Model: "m", Timeout: "soon"})
	assert.Error(t, err)
}

func TestNewConfig(t *testing.T) {
	got, err := NewConfig(config.LLMConfig{RetryAttempts: 0, RetryDelay: "2s", MaxTotalTimeout: "1m"})
	require.NoError(t, err)
	assert.Equal(t, 1, got.RetryAttempts)
	assert.Equal(t, "2s", got.RetryDelay.String())
	assert.Equal(t, "1m0s", got.MaxTotalTimeout.String())

	_, err = NewConfig(config.LLMConfig{RetryDelay: "x"})
	assert.Error(t, err)
}
