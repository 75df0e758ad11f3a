package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. CATALOG_SERVER_PORT.
const EnvPrefix = "CATALOG"

var defaults = map[string]any{
	"server.port":                        3000,
	"server.log_level":                   "info",
	"server.shutdown_timeout_seconds":    10,
	"database.url":                       "",
	"database.max_open_conns":            10,
	"database.max_idle_conns":            5,
	"database.conn_max_lifetime_minutes": 5,
	"database.ping_timeout_seconds":      5,
	"database.auto_migrate":              true,
}

// Load reads configuration from, in increasing precedence: built-in
// defaults, an optional config.yaml in the working directory, an optional
// .env file, and the process environment. The result is validated before
// it is returned.
func Load() (*Config, error) {
	return load(".env", ".")
}

func load(envFile, configDir string) (*Config, error) {
	// godotenv never overrides variables that are already set.
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}
