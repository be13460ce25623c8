package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	PostgresDSN string
	Port        string
	Environment string
	// Operating window for free-slot computation, "HH:MM" 24-hour.
	DayStart string
	DayEnd   string
}

func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err == nil {
		log.Println("loaded configuration from .env file")
	}

	cfg := &Config{
		PostgresDSN: os.Getenv("POSTGRES_DSN"),
		Port:        os.Getenv("PORT"),
		Environment: os.Getenv("ENV"),
		DayStart:    os.Getenv("DAY_START"),
		DayEnd:      os.Getenv("DAY_END"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.DayStart == "" {
		cfg.DayStart = "00:00"
	}
	if cfg.DayEnd == "" {
		cfg.DayEnd = "24:00"
	}

	if cfg.PostgresDSN == "" {
		return nil, fmt.Errorf("POSTGRES_DSN is required but not set")
	}

	return cfg, nil
}
