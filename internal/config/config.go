package config

import (
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	// PostgresDSN may be empty: the service then starts on the synthetic
	// backend instead of refusing to boot.
	PostgresDSN string `env:"POSTGRES_DSN"`

	HTTPAddr         string        `env:"HTTP_ADDR" envDefault:":8080"`
	DBConnectTimeout time.Duration `env:"DB_CONNECT_TIMEOUT" envDefault:"5s"`
	LogLevel         string        `env:"LOG_LEVEL" envDefault:"info"`
}

func New() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
