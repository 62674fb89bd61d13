package app

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"tenguard.watch/trends/internal/cli"
	"tenguard.watch/trends/internal/trends"
)

func runSample(args []string) int {
	fs := flag.NewFlagSet("sample", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	envLoader := cli.AddEnvFlag(fs, ".env", "Path to the .env file")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "sample does not accept positional arguments")
		return 2
	}

	cfg, logger, err := bootstrap(envLoader)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}

	writer := trends.NewWriter(cfg.StatsDir, logger)
	path, err := writer.PersistSample(trends.SampleMetrics())
	if err != nil {
		logger.Error().Err(err).Msg("sample persist failed")
		fmt.Fprintf(os.Stderr, "Failed to write sample trends: %v\n", err)
		return 1
	}

	fmt.Printf("sample written to %s\n", path)
	return 0
}
