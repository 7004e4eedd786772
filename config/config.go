package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env  string `env:"ENV" env-default:"development"`
	Port string `env:"PORT" env-default:"8080"`

	DatabaseURL string `env:"DB_URL" env-required:"true"`

	JWTSecret        string `env:"JWT_SECRET" env-required:"true"`
	JWTExpiryMinutes int    `env:"JWT_EXPIRY_MINUTES" env-default:"60"`

	ActivationTTLMinutes int    `env:"ACTIVATION_TTL_MINUTES" env-default:"15"`
	ActivationCodeLength int    `env:"ACTIVATION_CODE_LENGTH" env-default:"6"`
	ActivationURL        string `env:"ACTIVATION_URL" env-default:"http://localhost:4200/activate-account"`

	SMTPHost     string `env:"SMTP_HOST" env-default:"localhost"`
	SMTPPort     int    `env:"SMTP_PORT" env-default:"587"`
	SMTPUsername string `env:"SMTP_USERNAME" env-default:""`
	SMTPPassword string `env:"SMTP_PASSWORD" env-default:""`
	SMTPFrom     string `env:"SMTP_FROM" env-default:"no-reply@book-network.local"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}
