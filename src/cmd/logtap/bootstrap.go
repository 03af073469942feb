// FILE: src/cmd/logtap/bootstrap.go
package main

import (
	"fmt"
	"strings"

	"logtap/src/internal/config"

	"github.com/lixenwraith/log"
)

// initializeLogger sets up the diagnostic logger from configuration.
func initializeLogger(cfg *config.Config) error {
	logger = log.NewLogger()

	levelValue, err := parseLogLevel(cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	configArgs := []string{
		fmt.Sprintf("level=%d", levelValue),
		"disable_file=true",
	}

	switch cfg.Logging.Output {
	case "none":
		configArgs = append(configArgs, "enable_stdout=false")
	case "stdout":
		configArgs = append(configArgs, "enable_stdout=true", "stdout_target=stdout")
	case "stderr":
		configArgs = append(configArgs, "enable_stdout=true", "stdout_target=stderr")
	default:
		return fmt.Errorf("invalid log output mode: %s", cfg.Logging.Output)
	}

	if cfg.Logging.Format != "" {
		configArgs = append(configArgs, fmt.Sprintf("format=%s", cfg.Logging.Format))
	}

	if err := logger.ApplyConfigString(configArgs...); err != nil {
		return err
	}
	return logger.Start()
}

func parseLogLevel(level string) (int, error) {
	switch strings.ToLower(level) {
	case "debug":
		return int(log.LevelDebug), nil
	case "info":
		return int(log.LevelInfo), nil
	case "warn", "warning":
		return int(log.LevelWarn), nil
	case "error":
		return int(log.LevelError), nil
	default:
		return 0, fmt.Errorf("unknown log level: %s", level)
	}
}
