package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Env             string        `env:"APP_ENV" envDefault:"development"`
	HTTPAddr        string        `env:"HTTP_ADDR" envDefault:":8080"`
	DatabaseDriver  string        `env:"DATABASE_DRIVER" envDefault:"postgres"`
	DatabaseURL     string        `env:"DATABASE_URL" envDefault:"postgres://localhost:5432/fmpa?sslmode=disable"`
	SQLitePath      string        `env:"SQLITE_PATH" envDefault:"fmpa.db"`
	JWTSecret       string        `env:"JWT_SECRET"`
	DefaultLocale   string        `env:"DEFAULT_LOCALE" envDefault:"fr"`
	RateLimit       float64       `env:"RATE_LIMIT" envDefault:"5"`
	RateBurst       int           `env:"RATE_BURST" envDefault:"10"`
	DiscordWebhook  string        `env:"DISCORD_WEBHOOK_ID"`
	DiscordToken    string        `env:"DISCORD_WEBHOOK_TOKEN"`
	RollbarToken    string        `env:"ROLLBAR_TOKEN"`
	OTelEndpoint    string        `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// Load charge la configuration depuis les variables d'environnement et la valide.
func Load() (*Config, error) {
	// .env est optionnel lorsque les variables sont fournies par l'environnement (Docker, CI, etc.).
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DiscordEnabled reports whether both webhook credentials are set.
func (c *Config) DiscordEnabled() bool {
	return c.DiscordWebhook != "" && c.DiscordToken != ""
}

// validate applique toutes les règles métier sur la configuration chargée.
func (c *Config) validate() error {
	if strings.TrimSpace(c.JWTSecret) == "" {
		return fmt.Errorf("config: JWT_SECRET est requis et ne peut pas être vide")
	}
	if len(c.JWTSecret) < 32 && c.Env == "production" {
		return fmt.Errorf("config: JWT_SECRET doit contenir au moins 32 caractères en production")
	}

	c.DatabaseDriver = strings.ToLower(strings.TrimSpace(c.DatabaseDriver))
	switch c.DatabaseDriver {
	case DriverPostgres:
		parsed, err := url.Parse(c.DatabaseURL)
		if err != nil {
			return fmt.Errorf("config: DATABASE_URL invalide (%q): %w", c.DatabaseURL, err)
		}
		if parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("config: DATABASE_URL invalide (%q): scheme ou host manquant", c.DatabaseURL)
		}
	case DriverSQLite:
		if strings.TrimSpace(c.SQLitePath) == "" {
			return fmt.Errorf("config: SQLITE_PATH est requis avec DATABASE_DRIVER=sqlite")
		}
	default:
		return fmt.Errorf("config: DATABASE_DRIVER inconnu (%q), attendu postgres ou sqlite", c.DatabaseDriver)
	}

	if (c.DiscordWebhook == "") != (c.DiscordToken == "") {
		return fmt.Errorf("config: DISCORD_WEBHOOK_ID et DISCORD_WEBHOOK_TOKEN vont ensemble")
	}
	for _, r := range c.DiscordWebhook {
		if r < '0' || r > '9' {
			return fmt.Errorf("config: DISCORD_WEBHOOK_ID doit être un ID Discord (chiffres uniquement)")
		}
	}

	if c.RateLimit <= 0 || c.RateBurst <= 0 {
		return fmt.Errorf("config: RATE_LIMIT et RATE_BURST doivent être positifs")
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("config: SHUTDOWN_TIMEOUT doit être positif")
	}
	return nil
}
