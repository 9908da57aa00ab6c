// Package config loads runtime configuration for the gophdash CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file (see parseFile) selected via flags: -c or -config.
//     Files ending in .yaml or .yml are YAML; anything else is JSON.
//  3. GOPHDASH_* environment variables, with an optional .env file (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-u string   API base URL
//	-d string   SQLite database path
//	-t int      request timeout (seconds, 0 = none)
//	-l string   log level
//	-nocolor    disable colours
//
// # File schema
//
// request_timeout uses timex.Duration, so it can be a string like "5s" or
// integer nanoseconds. Keys missing from the file keep their earlier value:
//
//	{
//	  "api_base_url": "https://jsonplaceholder.typicode.com",
//	  "database_path": "gophdash.db",
//	  "request_timeout": "10s",
//	  "log_level": "info",
//	  "no_color": false
//	}
//
// # Environment
//
//	GOPHDASH_API_BASE_URL, GOPHDASH_DATABASE_PATH, GOPHDASH_LOG_LEVEL
//	GOPHDASH_REQUEST_TIMEOUT   duration string, e.g. "5s"
//	GOPHDASH_NO_COLOR          any strconv.ParseBool value
//
// Malformed files, variables or flags panic. (*Config).Validate reports
// values that parse but make no sense.
package config
