package config

import (
	"fmt"
	"strings"

	"github.com/anonkit/propview/internal/properties"
	"github.com/anonkit/propview/internal/render"
)

// Validate checks all fields in the config and returns all errors at once.
func Validate(cfg *Config) error {
	var errs []string

	if cfg.Format != "" {
		if _, err := render.Get(cfg.Format); err != nil {
			errs = append(errs, fmt.Sprintf("format: %v", err))
		}
	}

	if cfg.Mode != "" {
		if _, err := properties.ParseMode(cfg.Mode); err != nil {
			errs = append(errs, fmt.Sprintf("mode: %v", err))
		}
	}

	if cfg.ZeroRange != "" {
		if _, err := properties.ParseZeroRangePolicy(cfg.ZeroRange); err != nil {
			errs = append(errs, fmt.Sprintf("zero_range: %v", err))
		}
	}

	if cfg.Messages != "" {
		if _, err := FS.Stat(cfg.Messages); err != nil {
			errs = append(errs, fmt.Sprintf("messages: %v", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
