// FILE: src/internal/config/logging.go
package config

// LogConfig configures logtap's own diagnostic logging.
type LogConfig struct {
	// Output mode: "stdout", "stderr", "none"
	Output string `toml:"output"`

	// Log level: "debug", "info", "warn", "error"
	Level string `toml:"level"`

	// Format: "txt" or "json"
	Format string `toml:"format"`
}

// DefaultLogConfig returns sensible logging defaults. Diagnostics go to
// stderr so they never mix with captured output on stdout.
func DefaultLogConfig() *LogConfig {
	return &LogConfig{
		Output: "stderr",
		Level:  "warn",
		Format: "txt",
	}
}
