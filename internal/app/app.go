// Package app wires the CLI commands around the classification and
// trend-aggregation core.
package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"tenguard.watch/trends/internal/cli"
	"tenguard.watch/trends/internal/config"
	"tenguard.watch/trends/internal/logging"
)

// Run executes the CLI command and returns a process exit code.
func Run(args []string) int {
	if len(args) == 0 {
		printUsage()
		return 2
	}

	switch strings.ToLower(strings.TrimSpace(args[0])) {
	case "help", "--help", "-h":
		printUsage()
		return 0
	case "update":
		return runUpdate(args[1:])
	case "trends":
		return runTrends(args[1:])
	case "validate":
		return runValidate(args[1:])
	case "sample":
		return runSample(args[1:])
	case "serve":
		return runServe(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", args[0])
		printUsage()
		return 2
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "tenguard CLI")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  tenguard <command> [flags]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  update    Classify, dedupe, and persist a day's raw articles")
	fmt.Fprintln(os.Stderr, "  trends    Aggregate daily snapshots into trend metrics")
	fmt.Fprintln(os.Stderr, "  validate  Validate snapshot JSON files against the schema")
	fmt.Fprintln(os.Stderr, "  sample    Write sample trend metrics for dashboard preview")
	fmt.Fprintln(os.Stderr, "  serve     Start the read-only trends API server")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Use \"tenguard <command> -h\" for command-specific flags.")
}

// bootstrap loads .env, config, and the logger shared by every command.
func bootstrap(envLoader *cli.EnvLoader) (*config.Config, zerolog.Logger, error) {
	if envLoader != nil {
		if _, err := envLoader.Load(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, zerolog.Logger{}, fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(cfg.Environment, cfg.LogLevel)
	if err != nil {
		return nil, zerolog.Logger{}, fmt.Errorf("initialize logger: %w", err)
	}

	return cfg, logger, nil
}
