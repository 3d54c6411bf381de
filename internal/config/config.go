package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces every environment variable read by Load.
const EnvPrefix = "PUNKAPI"

// Config holds the application configuration loaded from files and environment variables.
type Config struct {
	AppName       string `mapstructure:"app_name"`
	Env           string `mapstructure:"app_env"`
	LogLevel      string `mapstructure:"log_level"`
	EndpointsFile string `mapstructure:"endpoints_file"`
	Endpoint      string `mapstructure:"endpoint"`
}

// Load reads configuration from environment variables and the optional configs/.env file.
func Load() (*Config, error) {
	_ = godotenv.Load("configs/.env")

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)

	v.SetDefault("app_name", "punkapi")
	v.SetDefault("app_env", "production")
	v.SetDefault("log_level", "warn")
	v.SetDefault("endpoints_file", "")
	v.SetDefault("endpoint", "punkapi")

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	switch cfg.LogLevel {
	case "debug", "info", "warn", "warning", "error":
	default:
		return nil, fmt.Errorf("invalid log_level %q (want debug, info, warn or error)", cfg.LogLevel)
	}

	cfg.EndpointsFile = strings.TrimSpace(cfg.EndpointsFile)
	cfg.Endpoint = strings.TrimSpace(cfg.Endpoint)
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("invalid endpoint (must not be empty)")
	}

	return &cfg, nil
}
