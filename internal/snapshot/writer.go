// Package snapshot persists and loads the per-day article files under the
// news directory, one JSON file per calendar date.
package snapshot

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"tenguard.watch/trends/internal/article"
	"tenguard.watch/trends/internal/globaltime"
	"tenguard.watch/trends/internal/jsonfile"
	snapshotschema "tenguard.watch/trends/schema"
)

type Writer struct {
	dir    string
	logger zerolog.Logger
}

func NewWriter(dir string, logger zerolog.Logger) *Writer {
	return &Writer{dir: dir, logger: logger}
}

// Write replaces the snapshot file for date wholesale. Re-running the same
// day overwrites, never merges. Returns the written path.
func (w *Writer) Write(date string, items []article.Article) (string, error) {
	if items == nil {
		items = []article.Article{}
	}
	path := filepath.Join(w.dir, date+".json")
	snap := snapshotschema.Snapshot{Date: date, Items: items}
	if err := jsonfile.Write(path, snap); err != nil {
		return "", fmt.Errorf("write snapshot for %s: %w", date, err)
	}
	w.logger.Info().
		Str("path", path).
		Int("items", len(items)).
		Msg("snapshot written")
	return path, nil
}

// Backup copies the existing snapshot file for date to a timestamped
// sibling before an overwrite. Returns the backup path, or "" when there is
// nothing to back up.
func (w *Writer) Backup(date string) (string, error) {
	path := filepath.Join(w.dir, date+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("read %s for backup: %w", path, err)
	}

	backupPath := fmt.Sprintf("%s.backup_%s", path, globaltime.Now().Format("20060102_150405"))
	if err := os.WriteFile(backupPath, data, 0o644); err != nil {
		return "", fmt.Errorf("write backup %s: %w", backupPath, err)
	}
	w.logger.Info().Str("path", backupPath).Msg("backup created")
	return backupPath, nil
}
