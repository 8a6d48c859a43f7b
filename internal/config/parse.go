package config

import (
	"errors"
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

func Parse() (Config, error) {
	// .env is optional outside of local development.
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse cfg: %v", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("validate cfg: %v", err)
	}

	return cfg, nil
}

func (c Config) validate() error {
	switch c.Database.Driver {
	case DriverPostgres:
		if c.Database.Password == "" {
			return errors.New("DB_PASSWORD is required for postgres driver")
		}
	case DriverSQLite:
		if c.Database.SQLitePath == "" {
			return errors.New("DB_SQLITE_PATH is required for sqlite driver")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver)
	}

	if c.Auth.Required && len(c.Auth.Tokens) == 0 {
		return errors.New("AUTH_TOKENS must be set when AUTH_REQUIRED is true")
	}

	return nil
}
