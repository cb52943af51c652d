// internal/common/config/config.go
package config

import "fmt"

// Config is the main application configuration struct.
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Catalog   CatalogConfig   `mapstructure:"catalog"`
	Assistant AssistantConfig `mapstructure:"assistant"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type CatalogConfig struct {
	Path string `mapstructure:"path"`
}

// AssistantConfig tunes presentation-level behavior of the voice assistant.
// Result caps are host concerns, not engine contracts.
type AssistantConfig struct {
	WakePhrase        string  `mapstructure:"wake_phrase"`
	ResultLimit       int     `mapstructure:"result_limit"`
	FallbackLimit     int     `mapstructure:"fallback_limit"`
	SearchHistoryCap  int     `mapstructure:"search_history_cap"`
	CommandHistoryCap int     `mapstructure:"command_history_cap"`
	NearbyRadiusKm    float64 `mapstructure:"nearby_radius_km"`
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Port    int  `mapstructure:"port"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

func validateConfig(cfg *Config) error {
	if cfg.Catalog.Path == "" {
		return fmt.Errorf("catalog.path is required")
	}
	if cfg.Assistant.ResultLimit <= 0 {
		return fmt.Errorf("assistant.result_limit must be positive, got %d", cfg.Assistant.ResultLimit)
	}
	if cfg.Assistant.FallbackLimit <= 0 {
		return fmt.Errorf("assistant.fallback_limit must be positive, got %d", cfg.Assistant.FallbackLimit)
	}
	if cfg.Metrics.Enabled && (cfg.Metrics.Port <= 0 || cfg.Metrics.Port > 65535) {
		return fmt.Errorf("metrics.port out of range: %d", cfg.Metrics.Port)
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "yummport-voice"
	}
	if cfg.App.Environment == "" {
		cfg.App.Environment = "development"
	}
	if cfg.Catalog.Path == "" {
		cfg.Catalog.Path = "configs/catalog.json"
	}
	if cfg.Assistant.WakePhrase == "" {
		cfg.Assistant.WakePhrase = "hey yummport"
	}
	if cfg.Assistant.ResultLimit == 0 {
		cfg.Assistant.ResultLimit = 8
	}
	if cfg.Assistant.FallbackLimit == 0 {
		cfg.Assistant.FallbackLimit = 6
	}
	if cfg.Assistant.SearchHistoryCap == 0 {
		cfg.Assistant.SearchHistoryCap = 10
	}
	if cfg.Assistant.CommandHistoryCap == 0 {
		cfg.Assistant.CommandHistoryCap = 12
	}
	if cfg.Assistant.NearbyRadiusKm == 0 {
		cfg.Assistant.NearbyRadiusKm = 50
	}
	if cfg.Metrics.Port == 0 {
		cfg.Metrics.Port = 9105
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "console"
	}
}
