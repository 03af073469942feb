// FILE: src/internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	lconfig "github.com/lixenwraith/config"
)

// Collector run modes for the logtap binary.
const (
	ModeAll    = "all"
	ModeErrors = "errors"
	ModeMarker = "marker"
	ModeTimed  = "timed"
)

type Config struct {
	Collector CollectorConfig `toml:"collector"`
	Logging   LogConfig       `toml:"logging"`
}

type CollectorConfig struct {
	// Mode selects the collector preset: all, errors, marker, timed.
	Mode string `toml:"mode"`

	// Marker is the substring gate used by marker mode.
	Marker string `toml:"marker"`

	CaptureAll        bool   `toml:"capture_all"`
	IncludeStackTrace bool   `toml:"include_stack_trace"`
	MaxLogs           int    `toml:"max_logs"`
	TimestampFormat   string `toml:"timestamp_format"`
}

func defaults() *Config {
	return &Config{
		Collector: CollectorConfig{
			Mode:            ModeAll,
			CaptureAll:      true,
			MaxLogs:         1000,
			TimestampFormat: "iso",
		},
		Logging: *DefaultLogConfig(),
	}
}

// Load builds the layered configuration: CLI args over environment over
// TOML file over defaults.
func Load(cliArgs []string) (*Config, error) {
	configPath := GetConfigPath()

	cfg, err := lconfig.NewBuilder().
		WithDefaults(defaults()).
		WithEnvPrefix("LOGTAP_").
		WithFile(configPath).
		WithArgs(cliArgs).
		WithEnvTransform(customEnvTransform).
		WithSources(
			lconfig.SourceCLI,
			lconfig.SourceEnv,
			lconfig.SourceFile,
			lconfig.SourceDefault,
		).
		Build()

	if err != nil {
		if !strings.Contains(err.Error(), "not found") {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	finalConfig := &Config{}
	if err := cfg.Scan(finalConfig, ""); err != nil {
		return nil, fmt.Errorf("failed to scan config: %w", err)
	}

	return finalConfig, finalConfig.validate()
}

func customEnvTransform(path string) string {
	env := strings.ReplaceAll(path, ".", "_")
	env = strings.ToUpper(env)
	return "LOGTAP_" + env
}

// GetConfigPath resolves the TOML file location from the environment,
// falling back to the user config directory.
func GetConfigPath() string {
	if configFile := os.Getenv("LOGTAP_CONFIG_FILE"); configFile != "" {
		if filepath.IsAbs(configFile) {
			return configFile
		}
		if configDir := os.Getenv("LOGTAP_CONFIG_DIR"); configDir != "" {
			return filepath.Join(configDir, configFile)
		}
		return configFile
	}

	if configDir := os.Getenv("LOGTAP_CONFIG_DIR"); configDir != "" {
		return filepath.Join(configDir, "logtap.toml")
	}

	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".config", "logtap.toml")
	}

	return "logtap.toml"
}
