package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every runtime setting, loaded from the environment
// (optionally seeded from a .env file in development).
type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD" envDefault:"postgres"`
	DBName     string `env:"DB_NAME" envDefault:"listening_trainer"`

	// Timezone is the canonical zone for all day-boundary logic:
	// streaks, daily activity and the reminder batch.
	Timezone string `env:"TIMEZONE" envDefault:"Asia/Tokyo"`

	// ReminderHour is the local hour (0-23) the daily reminder batch runs at.
	ReminderHour int `env:"REMINDER_HOUR" envDefault:"20"`

	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUser     string `env:"SMTP_USER"`
	SMTPPassword string `env:"SMTP_PASSWORD"`
	SMTPFrom     string `env:"SMTP_FROM" envDefault:"noreply@listening-trainer.app"`
}

// LoadConfig reads the environment into a Config. A missing .env file
// is not an error; real deployments set variables directly.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.ReminderHour < 0 || cfg.ReminderHour > 23 {
		return nil, fmt.Errorf("REMINDER_HOUR must be between 0 and 23, got %d", cfg.ReminderHour)
	}

	return cfg, nil
}
