package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	HttpPort        uint16 `envconfig:"TIDEPOOL_HTTP_SERVER_PORT" default:"8080" required:"true"`
	LogLevel        string `envconfig:"LOG_LEVEL" default:"info"`
	AuthTokenSecret string `envconfig:"TIDEPOOL_AUTH_TOKEN_SECRET"`
	AuthTokenIssuer string `envconfig:"TIDEPOOL_AUTH_TOKEN_ISSUER"`
}

func New() *Config {
	return &Config{}
}

// NewConfig loads the service configuration from the environment. Variables defined
// in a .env file in the working directory are loaded first, without overriding the
// ones already set.
func NewConfig() (*Config, error) {
	cfg := New()
	if err := cfg.LoadFromEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) LoadFromEnv() error {
	if err := LoadDotEnv(); err != nil {
		return err
	}
	return envconfig.Process("", c)
}

func (c *Config) ServerAddress() string {
	return fmt.Sprintf(":%d", c.HttpPort)
}

func LoadDotEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("unable to load .env file: %w", err)
	}
	return nil
}
