package app

import (
	"errors"
	"fmt"
)

// Output formats accepted by Config.OutputFormat.
const (
	FormatHCL  = "hcl"
	FormatYAML = "yaml"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Paths        []string // seed and script files or directories
	OutputFormat string

	// HistoryLimit overrides the file setting when set.
	HistoryLimit *int

	LogFormat       string
	LogLevel        string
	HealthcheckPort int
	// Serve keeps the health check server up after the script has been
	// replayed, until the run context is cancelled.
	Serve bool
}

func NewConfig(cfg Config) (*Config, error) {
	if len(cfg.Paths) == 0 {
		return nil, errors.New("at least one configuration path is required")
	}

	switch cfg.OutputFormat {
	case "":
		cfg.OutputFormat = FormatHCL
	case FormatHCL, FormatYAML:
	default:
		return nil, fmt.Errorf("invalid output format %q: must be %q or %q", cfg.OutputFormat, FormatHCL, FormatYAML)
	}

	if cfg.HistoryLimit != nil && *cfg.HistoryLimit < 0 {
		return nil, fmt.Errorf("invalid history limit %d: must not be negative", *cfg.HistoryLimit)
	}
	if cfg.HealthcheckPort < 0 || cfg.HealthcheckPort > 65535 {
		return nil, fmt.Errorf("invalid healthcheck port %d", cfg.HealthcheckPort)
	}
	if cfg.Serve && cfg.HealthcheckPort == 0 {
		return nil, errors.New("serve requires a healthcheck port")
	}

	return &cfg, nil
}
