package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/specialistvlad/fdtdscene/internal/catalog"
	"github.com/specialistvlad/fdtdscene/internal/document"
)

// DefaultDocumentPath is read when no document is named on the command line.
const DefaultDocumentPath = "config.toml"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	DocumentPath string
	// DefaultDocument is set when DocumentPath was not chosen by the user.
	DefaultDocument bool
	Format          document.Format

	LogFormat string
	LogLevel  string

	StrictNames bool
}

// NewConfig validates cfg and returns a copy with defaults applied.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.DocumentPath == "" {
		return nil, errors.New("DocumentPath is a required configuration field and cannot be empty")
	}

	if cfg.Format == "" {
		cfg.Format = document.FormatAuto
	}
	format, err := document.ParseFormat(string(cfg.Format))
	if err != nil {
		return nil, err
	}
	cfg.Format = format

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	switch cfg.LogLevel {
	case "":
		cfg.LogLevel = "info"
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}

	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	switch cfg.LogFormat {
	case "":
		cfg.LogFormat = "text"
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid log format %q: must be 'text' or 'json'", cfg.LogFormat)
	}

	return &cfg, nil
}

// CatalogOptions returns the catalog settings derived from the config.
func (c *Config) CatalogOptions() catalog.Options {
	return catalog.Options{RequireUniqueNames: c.StrictNames}
}
