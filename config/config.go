package config

import (
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds the client configuration, sourced from the environment.
//
// APIKey is intentionally not required: a missing key is passed through to
// the provider and surfaces as an authentication error on the first call.
type Config struct {
	APIKey  string        `envconfig:"OPENWEATHER_API_KEY"`
	BaseURL string        `envconfig:"OPENWEATHER_BASE_URL" default:"https://api.openweathermap.org/data/2.5" validate:"required,url"`
	Timeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s" validate:"gt=0"`
}

// Load reads configuration from the environment, after loading an optional
// .env file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
