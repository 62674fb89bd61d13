package app

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"tenguard.watch/trends/internal/classify"
	"tenguard.watch/trends/internal/cli"
	"tenguard.watch/trends/internal/dedupe"
	"tenguard.watch/trends/internal/globaltime"
	"tenguard.watch/trends/internal/runstatus"
	"tenguard.watch/trends/internal/similarity"
	"tenguard.watch/trends/internal/snapshot"
	snapshotschema "tenguard.watch/trends/schema"
)

func runUpdate(args []string) int {
	fs := flag.NewFlagSet("update", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	envLoader := cli.AddEnvFlag(fs, ".env", "Path to the .env file")
	input := fs.String("input", "", "Path to the raw articles JSON file produced by the scrapers")
	date := fs.String("date", "", "Snapshot date YYYY-MM-DD (default: today)")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "update does not accept positional arguments")
		return 2
	}
	if strings.TrimSpace(*input) == "" {
		fmt.Fprintln(os.Stderr, "--input is required")
		return 2
	}

	cfg, logger, err := bootstrap(envLoader)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}

	runDate := strings.TrimSpace(*date)
	if runDate == "" {
		runDate = globaltime.Today()
	}

	raw, err := os.ReadFile(*input)
	if err != nil {
		logger.Error().Err(err).Str("path", *input).Msg("failed to read input file")
		fmt.Fprintf(os.Stderr, "Failed to read input: %v\n", err)
		return 1
	}

	payload, err := snapshotschema.ParseSnapshotPayload(raw)
	if err != nil {
		logger.Error().Err(err).Str("path", *input).Msg("failed to parse input file")
		fmt.Fprintf(os.Stderr, "Invalid input: %v\n", err)
		return 1
	}
	if len(payload.Items) == 0 {
		logger.Error().Str("path", *input).Msg("no articles in input, aborting update")
		fmt.Fprintln(os.Stderr, "No articles in input. Aborting update.")
		return 1
	}

	rules := classify.DefaultRules()
	if strings.TrimSpace(cfg.RulesFile) != "" {
		rules, err = classify.LoadRules(cfg.RulesFile)
		if err != nil {
			logger.Error().Err(err).Str("path", cfg.RulesFile).Msg("failed to load rules file")
			fmt.Fprintf(os.Stderr, "Failed to load rules: %v\n", err)
			return 1
		}
	}

	classifier := classify.New(rules)
	classified := classifier.ApplyAll(payload.Items, runDate)

	scorer := similarity.NewScorer(similarity.Options{Threshold: cfg.SimilarityCutoff})
	deduped := dedupe.New(scorer, logger).Dedupe(classified)

	logger.Info().
		Int("raw", len(payload.Items)).
		Int("classified", len(classified)).
		Int("deduped", len(deduped)).
		Str("date", runDate).
		Msg("batch processed")

	writer := snapshot.NewWriter(cfg.NewsDir, logger)

	backupFile, err := writer.Backup(runDate)
	if err != nil {
		logger.Warn().Err(err).Msg("backup failed, continuing")
	}

	if _, err := writer.Write(runDate, deduped); err != nil {
		logger.Error().Err(err).Msg("snapshot write failed")
		fmt.Fprintf(os.Stderr, "Failed to write snapshot: %v\n", err)
		return 1
	}

	status := runstatus.New(len(deduped), backupFile)
	if err := runstatus.Write(cfg.StatusFile, status); err != nil {
		logger.Error().Err(err).Str("path", cfg.StatusFile).Msg("run status write failed")
		fmt.Fprintf(os.Stderr, "Failed to write run status: %v\n", err)
		return 1
	}

	fmt.Printf("update date=%s articles=%d dropped=%d\n", runDate, len(deduped), len(classified)-len(deduped))
	return 0
}
