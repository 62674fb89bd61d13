package app

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"tenguard.watch/trends/internal/cli"
	"tenguard.watch/trends/internal/globaltime"
	"tenguard.watch/trends/internal/snapshot"
	"tenguard.watch/trends/internal/trends"
)

func runTrends(args []string) int {
	fs := flag.NewFlagSet("trends", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	envLoader := cli.AddEnvFlag(fs, ".env", "Path to the .env file")
	days := fs.Int("days", 0, "Number of days to analyze (default: TG_WINDOW_DAYS)")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "trends does not accept positional arguments")
		return 2
	}

	cfg, logger, err := bootstrap(envLoader)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}

	windowDays := *days
	if windowDays <= 0 {
		windowDays = cfg.WindowDays
	}

	loader := snapshot.NewLoader(cfg.NewsDir, logger)
	allItems := loader.Load(windowDays)

	items7 := trends.Window(allItems, globaltime.DaysAgo(cfg.ShortWindowDays))
	items30 := trends.Window(allItems, globaltime.DaysAgo(cfg.WindowDays))

	aggregator := trends.NewAggregator(trends.Options{
		KeywordMinLength: cfg.KeywordMinLength,
	}, logger)
	metrics := aggregator.Aggregate(allItems, items7, items30)

	writer := trends.NewWriter(cfg.StatsDir, logger)
	if err := writer.Persist(metrics); err != nil {
		logger.Error().Err(err).Msg("trends persist failed")
		fmt.Fprintf(os.Stderr, "Failed to persist trends: %v\n", err)
		return 1
	}

	fmt.Printf(
		"trends days=%d items=%d total_7_days=%d total_30_days=%d top_tag=%s\n",
		windowDays,
		len(allItems),
		metrics.KPIs.Total7Days,
		metrics.KPIs.Total30Days,
		metrics.KPIs.TopTag,
	)
	return 0
}
