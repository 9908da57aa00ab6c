package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/gophdash/internal/flagx"
	"github.com/dmitrijs2005/gophdash/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is a DTO used exclusively for config file unmarshalling.
// Pointer fields tell "absent" from "zero", so a partial file only overrides
// what it names.
type FileConfig struct {
	APIBaseURL     *string         `json:"api_base_url" yaml:"api_base_url"`
	DatabasePath   *string         `json:"database_path" yaml:"database_path"`
	RequestTimeout *timex.Duration `json:"request_timeout" yaml:"request_timeout"`
	LogLevel       *string         `json:"log_level" yaml:"log_level"`
	NoColor        *bool           `json:"no_color" yaml:"no_color"`
}

// decodeFile picks the decoder from the file extension. Anything other than
// .yaml or .yml is read as JSON.
func decodeFile(path string, data []byte, fc *FileConfig) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, fc)
	default:
		return json.Unmarshal(data, fc)
	}
}

// parseFile overlays cfg with the config file named by -c or -config in
// args. Without either flag nothing happens. Read and decode errors panic.
func parseFile(cfg *Config, args []string) {
	configFile := flagx.ConfigPath(args)
	if configFile == "" {
		return
	}

	var fc FileConfig

	data, err := os.ReadFile(configFile)
	if err != nil {
		panic(err)
	}
	if err := decodeFile(configFile, data, &fc); err != nil {
		panic(fmt.Errorf("config file %s: %w", configFile, err))
	}

	if fc.APIBaseURL != nil {
		cfg.APIBaseURL = *fc.APIBaseURL
	}
	if fc.DatabasePath != nil {
		cfg.DatabasePath = *fc.DatabasePath
	}
	if fc.RequestTimeout != nil {
		cfg.RequestTimeout = fc.RequestTimeout.Duration
	}
	if fc.LogLevel != nil {
		cfg.LogLevel = *fc.LogLevel
	}
	if fc.NoColor != nil {
		cfg.NoColor = *fc.NoColor
	}
}
