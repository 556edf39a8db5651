package config

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	// WebServer Configuration
	WebServerPort int `mapstructure:"WEBSERVER_PORT"`

	// YouTube Data API Configuration. An absent key is not fatal: the manual
	// path still works, and the operator is told lookups are unavailable.
	YouTubeAPIKey         string `mapstructure:"YOUTUBE_API_KEY"`
	YouTubeTimeoutSeconds int    `mapstructure:"YOUTUBE_API_TIMEOUT_SECONDS"`

	// Revenue model artifact
	ModelPath string `mapstructure:"MODEL_PATH" validate:"required"`
}

// use reflect to bind environment variables based on mapstructure tags
func bindEnv(c Config) {
	val := reflect.ValueOf(c)
	typ := val.Type()

	for i := 0; i < val.NumField(); i++ {
		field := typ.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag != "" {
			viper.BindEnv(tag)
		}
	}
}

func LoadConfig(ctx context.Context) (*Config, error) {
	bindEnv(Config{})
	viper.AutomaticEnv()

	// Defaults
	viper.SetDefault("WEBSERVER_PORT", 8080)
	viper.SetDefault("YOUTUBE_API_TIMEOUT_SECONDS", 10)

	cfg := Config{}
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	// The API key never goes to the log.
	slog.Info("Loaded configuration", "port", cfg.WebServerPort, "model_path", cfg.ModelPath, "api_key_set", cfg.YouTubeAPIKey != "")

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}
