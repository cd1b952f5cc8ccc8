package llmprovider

import (
	"context"
	"fmt"
	"strings"
	"time"

	"clinic-support-router/config"
	"clinic-support-router/pkg/log"
)

// Manager orchestrates provider selection, fallback and retry logic.
// It is itself a Provider, so the router can use the whole chain as one backend.
type Manager struct {
	providers []Provider
	config    *Config
	logger    log.Logger
}

// Config defines configuration for the Provider Manager
type Config struct {
	FallbackEnabled bool
	RetryAttempts   int
	RetryDelay      time.Duration
	MaxTotalTimeout time.Duration // bound for the entire fallback chain
}

// NewConfig converts the llm config section into a manager Config.
func NewConfig(cfg config.LLMConfig) (*Config, error) {
	out := &Config{
		FallbackEnabled: cfg.FallbackEnabled,
		RetryAttempts:   cfg.RetryAttempts,
	}
	if out.RetryAttempts < 1 {
		out.RetryAttempts = 1
	}

	var err error
	if cfg.RetryDelay != "" {
		if out.RetryDelay, err = time.ParseDuration(cfg.RetryDelay); err != nil {
			return nil, fmt.Errorf("invalid retry_delay: %w", err)
		}
	}
	if cfg.MaxTotalTimeout != "" {
		if out.MaxTotalTimeout, err = time.ParseDuration(cfg.MaxTotalTimeout); err != nil {
			return nil, fmt.Errorf("invalid max_total_timeout: %w", err)
		}
	}
	return out, nil
}

// NewManager creates a new Provider Manager with the given providers, config, and logger
func NewManager(providers []Provider, config *Config, logger log.Logger) *Manager {
	if config == nil {
		config = &Config{RetryAttempts: 1}
	}
	return &Manager{
		providers: providers,
		config:    config,
		logger:    logger,
	}
}

// Name returns "chain".
func (m *Manager) Name() string {
	return "chain"
}

// Model lists the chained models in priority order.
func (m *Manager) Model() string {
	names := make([]string, 0, len(m.providers))
	for _, p := range m.providers {
		names = append(names, p.Model())
	}
	return strings.Join(names, ",")
}

// Invoke iterates through providers in priority order with fallback logic.
func (m *Manager) Invoke(ctx context.Context, prompt string) (string, error) {
	if len(m.providers) == 0 {
		return "", ErrNoProvidersConfigured
	}

	if m.config.MaxTotalTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.config.MaxTotalTimeout)
		defer cancel()
	}

	var lastErr error
	for i, provider := range m.providers {
		select {
		case <-ctx.Done():
			return "", fmt.Errorf("%w: global timeout exceeded after trying %d provider(s): %w",
				ErrAllProvidersFailed, i, &BackendError{Provider: m.Name(), Kind: KindTimeout, Err: ctx.Err()})
		default:
		}

		text, err := m.invokeWithRetry(ctx, provider, prompt)
		if err == nil {
			m.logger.Debugf(ctx, "pkg.llmprovider.Manager.Invoke: provider=%s model=%s succeeded",
				provider.Name(), provider.Model())
			return text, nil
		}

		m.logger.Warnf(ctx, "pkg.llmprovider.Manager.Invoke: provider=%s model=%s failed: %v",
			provider.Name(), provider.Model(), err)
		lastErr = err

		if !m.config.FallbackEnabled {
			break
		}
	}

	return "", fmt.Errorf("%w: %w", ErrAllProvidersFailed, lastErr)
}

// invokeWithRetry retries one provider with linear backoff.
// Auth failures are not retried.
func (m *Manager) invokeWithRetry(ctx context.Context, provider Provider, prompt string) (string, error) {
	var lastErr error

	for attempt := 0; attempt < m.config.RetryAttempts; attempt++ {
		if attempt > 0 {
			delay := time.Duration(attempt) * m.config.RetryDelay
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return "", &BackendError{Provider: provider.Name(), Kind: KindTimeout, Err: ctx.Err()}
			}
		}

		text, err := provider.Invoke(ctx, prompt)
		if err == nil {
			return text, nil
		}
		lastErr = err

		if KindOf(err) == KindAuth {
			break
		}
	}

	return "", lastErr
}
