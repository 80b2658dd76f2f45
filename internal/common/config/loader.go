// internal/common/config/loader.go
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load reads configs/config.yaml (plus an environment-specific overlay) and
// applies environment variable overrides, .env included.
func Load() (*Config, error) {
	// Best-effort: a missing .env just means the process environment wins.
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("../../configs")
	viper.AddConfigPath(".")

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	// Booleans defaulting to true have to come from viper, not applyDefaults:
	// once unmarshalled, false and unset are indistinguishable.
	viper.SetDefault("matching.listing_skills_in_text", true)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading base config: %w", err)
		}
	}

	env := os.Getenv("APP_ENVIRONMENT")
	if env == "" {
		env = "development"
	}
	viper.SetConfigName(fmt.Sprintf("config.%s", env))
	_ = viper.MergeInConfig() // overlay is optional

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "futureintern-recommender"
	}
	if cfg.App.Environment == "" {
		cfg.App.Environment = "development"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "console"
	}
	if cfg.Database.Postgres.MaxConnections == 0 {
		cfg.Database.Postgres.MaxConnections = 10
	}
	if cfg.Database.Postgres.MaxIdle == 0 {
		cfg.Database.Postgres.MaxIdle = 5
	}
	if cfg.Database.Postgres.SSLMode == "" {
		cfg.Database.Postgres.SSLMode = "disable"
	}
	if cfg.Matching.Strategy == "" {
		cfg.Matching.Strategy = "fuzzy"
	}
	if cfg.Matching.WeightProfile == "" {
		cfg.Matching.WeightProfile = "default"
	}
	if cfg.Matching.Workers == 0 {
		cfg.Matching.Workers = 4
	}
	if cfg.Matching.DefaultLimit == 0 {
		cfg.Matching.DefaultLimit = 10
	}
	if cfg.Matching.ProfileCacheTTLSecs == 0 {
		cfg.Matching.ProfileCacheTTLSecs = 300
	}
	if cfg.Metrics.Address == "" {
		cfg.Metrics.Address = ":9102"
	}
}

func validateConfig(cfg *Config) error {
	switch cfg.Matching.Strategy {
	case "simple", "fuzzy":
	default:
		return fmt.Errorf("matching.strategy must be \"simple\" or \"fuzzy\", got %q", cfg.Matching.Strategy)
	}
	switch cfg.Matching.WeightProfile {
	case "default", "legacy":
	default:
		return fmt.Errorf("matching.weight_profile must be \"default\" or \"legacy\", got %q", cfg.Matching.WeightProfile)
	}
	return nil
}
