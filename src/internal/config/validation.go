// FILE: src/internal/config/validation.go
package config

import "fmt"

func (c *Config) validate() error {
	validModes := map[string]bool{
		ModeAll: true, ModeErrors: true, ModeMarker: true, ModeTimed: true,
	}
	if !validModes[c.Collector.Mode] {
		return fmt.Errorf("invalid collector mode: %s", c.Collector.Mode)
	}

	if c.Collector.Mode == ModeMarker && c.Collector.Marker == "" {
		return fmt.Errorf("marker mode requires a non-empty marker")
	}

	if c.Collector.MaxLogs < 0 {
		return fmt.Errorf("max_logs must not be negative: %d", c.Collector.MaxLogs)
	}

	validFormats := map[string]bool{"iso": true, "epoch": true}
	if !validFormats[c.Collector.TimestampFormat] {
		return fmt.Errorf("invalid timestamp format: %s", c.Collector.TimestampFormat)
	}

	return validateLogConfig(&c.Logging)
}

func validateLogConfig(cfg *LogConfig) error {
	validOutputs := map[string]bool{
		"stdout": true, "stderr": true, "none": true,
	}
	if !validOutputs[cfg.Output] {
		return fmt.Errorf("invalid log output mode: %s", cfg.Output)
	}

	validLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true,
	}
	if !validLevels[cfg.Level] {
		return fmt.Errorf("invalid log level: %s", cfg.Level)
	}

	validFormats := map[string]bool{
		"txt": true, "json": true, "": true,
	}
	if !validFormats[cfg.Format] {
		return fmt.Errorf("invalid log format: %s", cfg.Format)
	}

	return nil
}
