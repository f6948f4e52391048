package app

import (
	"fmt"
)

// Output formats understood by Run.
const (
	FormatJSON     = "json"
	FormatHCL      = "hcl"
	FormatSolcArgs = "solc-args"
	FormatSolcJSON = "solc-json"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	EnvFile     string   // .env file, missing is fine
	ConfigPaths []string // hcl override files or directories

	Format      string
	Get         string // single dotted key to print instead of the record
	ShowSecrets bool

	LogFormat string
	LogLevel  string
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.Format == "" {
		cfg.Format = FormatJSON
	}
	switch cfg.Format {
	case FormatJSON, FormatHCL, FormatSolcArgs, FormatSolcJSON:
	default:
		return nil, fmt.Errorf("unsupported output format %q", cfg.Format)
	}

	if cfg.Get != "" && cfg.Format != FormatJSON {
		return nil, fmt.Errorf("-get cannot be combined with format %q", cfg.Format)
	}

	return &cfg, nil
}
