package config

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port        string `envconfig:"PORT" default:"8080"`
	PostgresURL string `envconfig:"POSTGRES_URL" required:"true"`

	JWTSecret string `envconfig:"JWT_SECRET" required:"true"`

	SentryDSN string `envconfig:"SENTRY_DSN"`

	// Cron spec for the nightly counter reconciliation.
	ReconcileSchedule string `envconfig:"RECONCILE_SCHEDULE" default:"0 3 * * *"`

	PulseCacheTTLSeconds int `envconfig:"PULSE_CACHE_TTL_SECONDS" default:"60"`
	PulseWindowDays      int `envconfig:"PULSE_WINDOW_DAYS" default:"7"`
	PriceIndexDays       int `envconfig:"PRICE_INDEX_DAYS" default:"30"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
