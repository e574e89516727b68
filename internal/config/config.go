package config

import (
	"github.com/kelseyhightower/envconfig"

	_ "github.com/joho/godotenv/autoload"
)

// Config is read from CART_* environment variables, with a .env file loaded
// automatically when present.
type Config struct {
	Port        int    `envconfig:"PORT" default:"8080"`
	Environment string `envconfig:"ENVIRONMENT" default:"development"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"debug"`
}

func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("cart", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
