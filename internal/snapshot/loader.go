package snapshot

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"tenguard.watch/trends/internal/article"
	"tenguard.watch/trends/internal/globaltime"
	snapshotschema "tenguard.watch/trends/schema"
)

type Loader struct {
	dir    string
	logger zerolog.Logger
}

func NewLoader(dir string, logger zerolog.Logger) *Loader {
	return &Loader{dir: dir, logger: logger}
}

// Load reads every snapshot in the window [today-windowDays, today] and
// returns the flattened item list in ascending date order. Missing files are
// skipped silently; malformed or oddly-shaped files are logged and skipped
// without aborting the load. Items missing a date are stamped with their
// file's date.
func (l *Loader) Load(windowDays int) []article.Article {
	now := globaltime.Now()
	start := now.AddDate(0, 0, -windowDays)

	var all []article.Article
	filesLoaded := 0

	for day := start; !day.After(now); day = day.AddDate(0, 0, 1) {
		date := day.Format(globaltime.ISODate)
		path := filepath.Join(l.dir, date+".json")

		raw, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				l.logger.Error().Err(err).Str("path", path).Msg("failed to read snapshot")
			}
			continue
		}

		snap, err := snapshotschema.ParseSnapshotPayload(raw)
		if err != nil {
			if errors.Is(err, snapshotschema.ErrUnexpectedShape) {
				l.logger.Warn().Err(err).Str("path", path).Msg("unexpected snapshot structure, skipping")
			} else {
				l.logger.Error().Err(err).Str("path", path).Msg("failed to parse snapshot, skipping")
			}
			continue
		}

		for _, item := range snap.Items {
			if item.Date == "" {
				item.Date = date
			}
			all = append(all, item)
		}
		filesLoaded++
	}

	l.logger.Info().
		Int("items", len(all)).
		Int("files", filesLoaded).
		Int("window_days", windowDays).
		Msg("snapshots loaded")
	return all
}
