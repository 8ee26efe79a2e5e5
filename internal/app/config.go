package app

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the application.
type Config struct {
	AppEnv            string        `envconfig:"APP_ENV" default:"development"`
	AppAddr           string        `envconfig:"APP_ADDR" default:":8080"`
	AppReadTimeout    time.Duration `envconfig:"APP_READ_TIMEOUT" default:"15s"`
	AppWriteTimeout   time.Duration `envconfig:"APP_WRITE_TIMEOUT" default:"15s"`
	AppRequestTimeout time.Duration `envconfig:"APP_REQUEST_TIMEOUT" default:"30s"`

	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`

	DataDir string `envconfig:"DATA_DIR" default:"./data"`

	AuthEmail        string `envconfig:"AUTH_EMAIL" default:"owner@veewell.com"`
	AuthPasswordHash string `envconfig:"AUTH_PASSWORD_HASH"`

	OpenAIAPIKey    string        `envconfig:"OPENAI_API_KEY"`
	OpenAIModel     string        `envconfig:"OPENAI_MODEL"`
	AdvisoryTimeout time.Duration `envconfig:"ADVISORY_TIMEOUT" default:"15s"`
}

// LoadConfig reads configuration from a .env file if present, then the
// environment.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// IsProduction returns true when the application runs in production.
func (c *Config) IsProduction() bool {
	return c != nil && c.AppEnv == "production"
}
