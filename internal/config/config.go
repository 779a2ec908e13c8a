// Package config loads runtime configuration for the activities service.
package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config captures everything the daemon needs at startup.
type Config struct {
	HTTPAddress string  `mapstructure:"http_address"`
	Logging     Logging `mapstructure:"logging"`
}

// Logging controls the zap logger.
type Logging struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads an optional config.yaml plus ACTIVITIES_-prefixed environment
// variables (e.g. ACTIVITIES_HTTP_ADDRESS, ACTIVITIES_LOGGING_LEVEL).
// A .env file in the working directory is applied first, best-effort.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")

	v.SetEnvPrefix("ACTIVITIES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("http_address", ":8000")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if cfg.HTTPAddress == "" {
		return nil, fmt.Errorf("http_address must not be empty")
	}
	return &cfg, nil
}
