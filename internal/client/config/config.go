package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the gophdash CLI.
//
// Fields:
//   - APIBaseURL: root of the REST API serving /comments and /users.
//   - DatabasePath: SQLite file holding persisted view settings.
//   - RequestTimeout: per-request HTTP timeout; 0 disables it.
//   - LogLevel: debug, info, warn or error.
//   - NoColor: disable ANSI colours even on a terminal.
type Config struct {
	APIBaseURL     string        `validate:"required,http_url"`
	DatabasePath   string        `validate:"required"`
	RequestTimeout time.Duration `validate:"gte=0"`
	LogLevel       string        `validate:"oneof=debug info warn warning error"`
	NoColor        bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "https://jsonplaceholder.typicode.com"
	c.DatabasePath = "gophdash.db"
	c.RequestTimeout = 0
	c.LogLevel = "info"
	c.NoColor = false
}

// DotEnvFile is loaded from the working directory when present.
const DotEnvFile = ".env"

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the config file, the environment and command-line flags, each if present.
// Later sources take precedence over earlier ones. The result is not
// validated; call Validate.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg, os.Args[1:])
	parseEnv(cfg, DotEnvFile)
	parseFlags(cfg, os.Args[1:])
	return cfg
}
