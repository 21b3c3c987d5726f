package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
	Moderation ModerationConfig `mapstructure:"moderation"`
}

type ServerConfig struct {
	Host        string `mapstructure:"host"`
	Port        int    `mapstructure:"port"`
	MetricsPort int    `mapstructure:"metrics_port"`
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type ModerationConfig struct {
	MaxMessageLength int `mapstructure:"max_message_length"`
	HistoryWindow    int `mapstructure:"history_window"`
	BusBuffer        int `mapstructure:"bus_buffer"`
	// Provider settings stay loosely typed here and are decoded per
	// provider, so a malformed entry fails with a useful name attached.
	Providers []map[string]interface{} `mapstructure:"providers"`
}

// ProviderSettings is one external moderation back-end selected by
// configuration.
type ProviderSettings struct {
	Provider       string `mapstructure:"provider"`
	Model          string `mapstructure:"model"`
	FallbackModel  string `mapstructure:"fallback_model"`
	APIKey         string `mapstructure:"api_key"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	MaxTokens      int    `mapstructure:"max_tokens"`
	Enabled        bool   `mapstructure:"enabled"`
}

func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.metrics_port", 9090)
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("moderation.max_message_length", 500)
	v.SetDefault("moderation.history_window", 5)
	v.SetDefault("moderation.bus_buffer", 64)

	v.SetEnvPrefix("CHATGUARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// No config file is fine; defaults plus env cover local runs.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// ProviderSettings decodes the raw provider entries, skipping disabled
// ones, and validates the fields the adapters cannot default.
func (c *ModerationConfig) ProviderSettings() ([]ProviderSettings, error) {
	out := make([]ProviderSettings, 0, len(c.Providers))
	for i, raw := range c.Providers {
		var settings ProviderSettings
		if err := mapstructure.Decode(raw, &settings); err != nil {
			return nil, fmt.Errorf("failed to decode provider %d: %w", i, err)
		}
		if !settings.Enabled {
			continue
		}
		if settings.Provider == "" {
			return nil, fmt.Errorf("provider %d: provider name must be specified", i)
		}
		if settings.APIKey == "" {
			return nil, fmt.Errorf("provider %q: api_key must be specified", settings.Provider)
		}
		if settings.Model == "" {
			return nil, fmt.Errorf("provider %q: model must be specified", settings.Provider)
		}
		out = append(out, settings)
	}
	return out, nil
}
