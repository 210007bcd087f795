package main

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds server configuration, read from the environment. A local .env
// file is loaded first when present; variables already set win.
type Config struct {
	Addr        string     `env:"ADDR" envDefault:":8081"`
	DatabaseDSN string     `env:"DB_DSN,required"`
	AutoMigrate bool       `env:"DB_AUTO_MIGRATE" envDefault:"true"`
	LogLevel    slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
}

func loadConfig() (*Config, error) {
	_ = godotenv.Load()
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
