// FILE: src/cmd/logtap/main.go
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"logtap/src/internal/channel"
	"logtap/src/internal/collector"
	"logtap/src/internal/config"
	"logtap/src/internal/core"
	"logtap/src/internal/version"

	"github.com/lixenwraith/log"
)

var logger *log.Logger

func main() {
	if err := parseFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *showVersion {
		fmt.Println(version.String())
		os.Exit(0)
	}

	if *configFile != "" {
		os.Setenv("LOGTAP_CONFIG_FILE", *configFile)
	}

	cfg, err := config.Load(nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := initializeLogger(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer shutdownLogger()

	logger.Info("msg", "logtap starting",
		"version", version.Short(),
		"mode", cfg.Collector.Mode)

	board := channel.New(os.Stdout)
	col := buildCollector(board, cfg)

	token := col.Start()
	readLoop(board)
	if err := col.Stop(token); err != nil {
		logger.Error("msg", "Failed to stop collector", "error", err)
	}

	if !*quiet {
		printSummary(col)
	}
}

// buildCollector maps the configured mode onto a collector preset.
func buildCollector(board *channel.Board, cfg *config.Config) *collector.Collector {
	opts := collector.Options{
		CaptureAll:        cfg.Collector.CaptureAll,
		IncludeStackTrace: cfg.Collector.IncludeStackTrace,
		MaxLogs:           cfg.Collector.MaxLogs,
		TimestampFormat:   core.TimestampFormat(cfg.Collector.TimestampFormat),
	}

	switch cfg.Collector.Mode {
	case config.ModeErrors:
		return collector.NewErrorOnly(board, opts, logger)
	case config.ModeMarker:
		return collector.NewMarkerFiltered(board, cfg.Collector.Marker, opts, logger)
	case config.ModeTimed:
		return collector.NewTimed(board, opts, logger)
	default:
		return collector.New(board, opts, logger)
	}
}

// readLoop feeds stdin lines through the board until EOF. A line may
// pick its channel with a "level:" prefix; everything else goes to the
// log channel.
func readLoop(board *channel.Board) {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		level, message := parseLine(scanner.Text())
		board.Emit(level, core.Text(message))
	}
	if err := scanner.Err(); err != nil {
		logger.Error("msg", "Failed to read stdin", "error", err)
	}
}

func parseLine(line string) (core.Level, string) {
	if prefix, rest, found := strings.Cut(line, ":"); found {
		level := core.Level(strings.ToLower(strings.TrimSpace(prefix)))
		if level.Valid() {
			return level, strings.TrimSpace(rest)
		}
	}
	return core.LevelLog, line
}

func printSummary(col *collector.Collector) {
	stats := col.Stats()

	fmt.Fprintf(os.Stderr, "\ncaptured %d entries\n", stats.Total)
	for _, level := range core.Levels() {
		if count, ok := stats.ByLevel[level]; ok {
			fmt.Fprintf(os.Stderr, "  %-5s %d\n", level, count)
		}
	}
	if stats.Earliest != "" {
		fmt.Fprintf(os.Stderr, "  earliest %s\n  latest   %s\n", stats.Earliest, stats.Latest)
	}

	if *noExport {
		return
	}

	out, err := col.ExportJSON()
	if err != nil {
		logger.Error("msg", "Failed to export logs", "error", err)
		return
	}
	fmt.Fprintln(os.Stderr, string(out))
}

func shutdownLogger() {
	if logger != nil {
		if err := logger.Shutdown(2 * time.Second); err != nil {
			fmt.Fprintf(os.Stderr, "Logger shutdown error: %v\n", err)
		}
	}
}
