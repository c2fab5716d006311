// Package config loads the command line tool's settings from the
// environment.
package config

import (
	"flag"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v6"
)

// Config holds settings shared by every subcommand. Flags registered with
// [Config.RegisterFlags] take precedence over the environment.
type Config struct {
	LogLevel string `env:"URLENC_LOG_LEVEL" envDefault:"WARN"`
	Format   string `env:"URLENC_FORMAT" envDefault:"text"`
}

// New reads the configuration from the environment.
func New() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg.LogLevel = strings.ToUpper(cfg.LogLevel)
	cfg.Format = strings.ToLower(cfg.Format)
	return &cfg, nil
}

// RegisterFlags binds -format and -log-level to c, using the current values
// as defaults.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.Format, "format", c.Format, "output format: text, json or yaml")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level written to stderr")
}
