package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/pflag"

	"github.com/KirkDiggler/rpg-babele/internal/compendium"
)

// Config is the process configuration. Environment variables set the
// baseline; command-line flags win when given.
type Config struct {
	GRPCPort        int           `env:"BABELE_GRPC_PORT" envDefault:"50051"`
	RedisAddrs      []string      `env:"BABELE_REDIS_ADDRS" envSeparator:"," envDefault:"localhost:6379"`
	RedisTimeout    time.Duration `env:"BABELE_REDIS_TIMEOUT" envDefault:"5s"`
	ShutdownTimeout time.Duration `env:"BABELE_SHUTDOWN_TIMEOUT" envDefault:"30s"`
	FlagNamespace   string        `env:"BABELE_FLAG_NAMESPACE" envDefault:"babele"`
	LogLevel        string        `env:"BABELE_LOG_LEVEL" envDefault:"info"`

	ModuleName string `env:"BABELE_MODULE_NAME" envDefault:"dnd5e-es"`
	ModuleLang string `env:"BABELE_MODULE_LANG" envDefault:"es"`
	ModuleDir  string `env:"BABELE_MODULE_DIR" envDefault:"compendium"`
}

// Module returns the translation module described by the configuration
func (c *Config) Module() compendium.Module {
	return compendium.Module{
		Name: c.ModuleName,
		Lang: c.ModuleLang,
		Dir:  c.ModuleDir,
	}
}

func loadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// overrideString copies a flag value over the env value when the flag was set
func overrideString(flags *pflag.FlagSet, name string, dst *string) {
	if flags.Changed(name) {
		if v, err := flags.GetString(name); err == nil {
			*dst = v
		}
	}
}

func overrideInt(flags *pflag.FlagSet, name string, dst *int) {
	if flags.Changed(name) {
		if v, err := flags.GetInt(name); err == nil {
			*dst = v
		}
	}
}

func overrideStrings(flags *pflag.FlagSet, name string, dst *[]string) {
	if flags.Changed(name) {
		if v, err := flags.GetStringSlice(name); err == nil {
			*dst = v
		}
	}
}

func setupLogging(level string) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
	return nil
}
