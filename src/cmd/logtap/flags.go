// FILE: src/cmd/logtap/flags.go
package main

import (
	"flag"
	"fmt"
	"os"
)

// Command-line flags
var (
	configFile  = flag.String("config", "", "Config file path")
	showVersion = flag.Bool("version", false, "Show version information")
	quiet       = flag.Bool("quiet", false, "Suppress the summary and export output")
	noExport    = flag.Bool("no-export", false, "Skip the JSON export at end of input")
)

func init() {
	flag.Usage = customUsage
}

func customUsage() {
	fmt.Fprintf(os.Stderr, "logtap - In-Process Log Capture and Query\n\n")
	fmt.Fprintf(os.Stderr, "Reads LEVEL-prefixed lines from stdin, emits them through an\n")
	fmt.Fprintf(os.Stderr, "intercepted console board, and prints capture statistics and a\n")
	fmt.Fprintf(os.Stderr, "JSON export when input ends.\n\n")
	fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Options:\n")
	fmt.Fprintf(os.Stderr, "  -config string\n\tConfig file path\n")
	fmt.Fprintf(os.Stderr, "  -version\n\tShow version information\n")
	fmt.Fprintf(os.Stderr, "  -quiet\n\tSuppress the summary and export output\n")
	fmt.Fprintf(os.Stderr, "  -no-export\n\tSkip the JSON export at end of input\n")

	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  # Capture everything from a piped log stream\n")
	fmt.Fprintf(os.Stderr, "  tail -f app.log | %s\n\n", os.Args[0])

	fmt.Fprintf(os.Stderr, "  # Capture only error-channel lines\n")
	fmt.Fprintf(os.Stderr, "  %s --config errors.toml < app.log\n\n", os.Args[0])

	fmt.Fprintf(os.Stderr, "Environment Variables:\n")
	fmt.Fprintf(os.Stderr, "  LOGTAP_CONFIG_FILE  Config file path\n")
	fmt.Fprintf(os.Stderr, "  LOGTAP_CONFIG_DIR   Config directory\n")
}

func parseFlags() error {
	flag.Parse()

	if args := flag.Args(); len(args) > 0 {
		return fmt.Errorf("unexpected arguments: %v", args)
	}
	return nil
}
