package config

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	Instance string `env:"INSTANCE" envDefault:"instances/small.json"`
	Output   string `env:"OUTPUT" envDefault:"results/runs.csv"`
	Strict   bool   `env:"STRICT" envDefault:"true"`

	Search struct {
		Runs          int     `env:"RUNS" envDefault:"1"`
		Population    int     `env:"POPULATION" envDefault:"100"`
		Generations   int     `env:"GENERATIONS" envDefault:"250"`
		CrossoverRate float64 `env:"CROSSOVER_RATE" envDefault:"0.9"`
		MutationRate  float64 `env:"MUTATION_RATE" envDefault:"0.1"`
		Seed          int64   `env:"SEED" envDefault:"1"`
		Workers       int     `env:"WORKERS" envDefault:"0"`
		CacheSize     int     `env:"CACHE_SIZE" envDefault:"4096"`
		TimeoutSec    int     `env:"TIMEOUT_SEC" envDefault:"0"`
	} `envPrefix:"SEARCH_"`
}

// LoadConfig reads a .env file when present, then the TASKS_ prefixed environment.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	if err := env.ParseWithOptions(
		cfg,
		env.Options{
			Prefix: "TASKS_",
		},
	); err != nil {
		aggErr := env.AggregateError{}
		if ok := errors.As(err, &aggErr); ok {
			return nil, aggErr.Errors[0]
		}

		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) SlogLevel() slog.Level {
	switch strings.ToLower(cfg.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
