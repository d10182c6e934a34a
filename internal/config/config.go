package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	ServerAddress    string        `mapstructure:"SERVER_ADDRESS"`
	PredictorURL     string        `mapstructure:"PREDICTOR_URL"`
	PredictorTimeout time.Duration `mapstructure:"PREDICTOR_TIMEOUT"`
	LogLevel         string        `mapstructure:"LOG_LEVEL"`
}

// LoadConfig reads app.env from path, if present, and overrides it with
// environment variables.
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	v.SetDefault("SERVER_ADDRESS", ":8080")
	v.SetDefault("PREDICTOR_URL", "http://127.0.0.1:8000")
	v.SetDefault("PREDICTOR_TIMEOUT", "0s")
	v.SetDefault("LOG_LEVEL", "info")

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: failed to decode config: %w", err)
	}

	if cfg.PredictorURL == "" {
		return Config{}, fmt.Errorf("config: PREDICTOR_URL cannot be empty")
	}

	if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
		return Config{}, fmt.Errorf("config: invalid LOG_LEVEL: %w", err)
	}

	return cfg, nil
}
