package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/gophdash/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-u string   API base URL
//	-d string   SQLite database path
//	-t int      request timeout in seconds (0 = none)
//	-l string   log level
//	-nocolor    disable ANSI colours
//
// Only these flags are considered (see flagx.FilterArgs); -c/-config belong
// to the config file loader.
func parseFlags(cfg *Config, args []string) {
	filtered := flagx.FilterArgs(args, []string{"-u", "-d", "-t", "-l"}, "-nocolor")

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "u", cfg.APIBaseURL, "API base URL")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the local settings database")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds, 0 = none)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.BoolVar(&cfg.NoColor, "nocolor", cfg.NoColor, "disable colours")

	if err := fs.Parse(filtered); err != nil {
		panic(err)
	}

	// Sub-second JSON timeouts survive unless -t is given explicitly.
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.RequestTimeout = time.Duration(*timeout) * time.Second
		}
	})
}
