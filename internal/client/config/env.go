package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables read by parseEnv.
const (
	EnvAPIBaseURL     = "GOPHDASH_API_BASE_URL"
	EnvDatabasePath   = "GOPHDASH_DATABASE_PATH"
	EnvRequestTimeout = "GOPHDASH_REQUEST_TIMEOUT"
	EnvLogLevel       = "GOPHDASH_LOG_LEVEL"
	EnvNoColor        = "GOPHDASH_NO_COLOR"
)

// parseEnv overlays cfg with GOPHDASH_* variables. The given dotenv files
// are loaded first; they never override variables already set in the
// process environment, and missing files are skipped. Malformed values
// panic.
func parseEnv(cfg *Config, envFiles ...string) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			panic(fmt.Errorf("env file %s: %w", f, err))
		}
	}

	if v, ok := os.LookupEnv(EnvAPIBaseURL); ok {
		cfg.APIBaseURL = v
	}
	if v, ok := os.LookupEnv(EnvDatabasePath); ok {
		cfg.DatabasePath = v
	}
	if v, ok := os.LookupEnv(EnvRequestTimeout); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(fmt.Errorf("%s: %w", EnvRequestTimeout, err))
		}
		cfg.RequestTimeout = d
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		cfg.LogLevel = v
	}
	if v, ok := os.LookupEnv(EnvNoColor); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			panic(fmt.Errorf("%s: %w", EnvNoColor, err))
		}
		cfg.NoColor = b
	}
}
