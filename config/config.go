package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// LLM Provider Abstraction
	LLM LLMConfig

	// Support router specifics
	Router     RouterConfig
	Evaluation EvaluationConfig
	Responder  ResponderConfig

	// Chat channels
	Telegram TelegramConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	PerMin int
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"`
}

// ProviderConfig holds configuration for a single LLM provider.
// Label is the display name used in evaluation reports (e.g. "GPT-4o-mini").
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Label    string `yaml:"label,omitempty"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

// RouterConfig selects the backend used by the router.
// An empty Provider routes through the priority-ordered provider chain.
type RouterConfig struct {
	Provider  string
	MatchMode string
}

type EvaluationConfig struct {
	CasesFile  string
	ReportPath string
	Pause      time.Duration
	Providers  []string
}

type ResponderConfig struct {
	CatalogFile string
}

// TelegramConfig enables the Telegram support channel when BotToken is set.
// WebhookURL is registered with Telegram on startup when not empty.
type TelegramConfig struct {
	BotToken    string
	SecretToken string
	WebhookURL  string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")

	if viper.IsSet("llm.providers") {
		cfg.LLM.Providers = parseProviders(viper.Get("llm.providers"))
	}

	if err := validateLLMConfig(&cfg.LLM); err != nil {
		return nil, fmt.Errorf("invalid llm config - please check the llm.providers section of config.yaml: %w", err)
	}

	// Router
	cfg.Router.Provider = viper.GetString("router.provider")
	cfg.Router.MatchMode = viper.GetString("router.match_mode")

	// Evaluation
	cfg.Evaluation.CasesFile = viper.GetString("evaluation.cases_file")
	cfg.Evaluation.ReportPath = viper.GetString("evaluation.report_path")
	cfg.Evaluation.Pause = viper.GetDuration("evaluation.pause")
	cfg.Evaluation.Providers = splitList(viper.GetStringSlice("evaluation.providers"))

	// Responders
	cfg.Responder.CatalogFile = viper.GetString("responder.catalog_file")

	// Telegram
	cfg.Telegram.BotToken = expandEnvVar(viper.GetString("telegram.bot_token"))
	cfg.Telegram.SecretToken = expandEnvVar(viper.GetString("telegram.secret_token"))
	cfg.Telegram.WebhookURL = viper.GetString("telegram.webhook_url")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("rate_limit.per_min", 120)

	// LLM defaults: one call per route, no cross-provider fallback
	viper.SetDefault("llm.fallback_enabled", false)
	viper.SetDefault("llm.retry_attempts", 1)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "60s")

	viper.SetDefault("router.match_mode", "contains")

	viper.SetDefault("evaluation.report_path", "all_results.txt")
	viper.SetDefault("evaluation.pause", "1s")
}

func parseProviders(raw interface{}) []ProviderConfig {
	providersList, ok := raw.([]interface{})
	if !ok {
		return nil
	}

	var providers []ProviderConfig
	for _, p := range providersList {
		providerMap, ok := p.(map[string]interface{})
		if !ok {
			continue
		}
		providers = append(providers, ProviderConfig{
			Name:     getStringFromMap(providerMap, "name"),
			Label:    getStringFromMap(providerMap, "label"),
			Enabled:  getBoolFromMap(providerMap, "enabled"),
			Priority: getIntFromMap(providerMap, "priority"),
			APIKey:   expandEnvVar(getStringFromMap(providerMap, "api_key")),
			BaseURL:  getStringFromMap(providerMap, "base_url"),
			Model:    getStringFromMap(providerMap, "model"),
			Timeout:  getStringFromMap(providerMap, "timeout"),
		})
	}
	return providers
}

// splitList accepts both YAML lists and comma separated env values.
func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		// Try viper first (handles both env and config)
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if provider.Model == "" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}
		if provider.Timeout != "" {
			if _, err := time.ParseDuration(provider.Timeout); err != nil {
				return fmt.Errorf("provider %s: invalid timeout %q: %w", provider.Name, provider.Timeout, err)
			}
		}

		if provider.Enabled {
			enabledCount++

			if provider.Priority <= 0 {
				return fmt.Errorf("provider %s: priority must be positive", provider.Name)
			}

			if priorityMap[provider.Priority] {
				return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
			}
			priorityMap[provider.Priority] = true
		}
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}

	return nil
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		// Handle float64 from JSON unmarshaling
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
