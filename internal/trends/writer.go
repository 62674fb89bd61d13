package trends

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"tenguard.watch/trends/internal/globaltime"
	"tenguard.watch/trends/internal/jsonfile"
)

const (
	latestFileName = "trends.json"
	sampleFileName = "sample-trends.json"
)

// Writer persists metrics under the stats directory: a fixed-name latest
// record plus a dated archive record per run day.
type Writer struct {
	dir    string
	logger zerolog.Logger
}

func NewWriter(dir string, logger zerolog.Logger) *Writer {
	return &Writer{dir: dir, logger: logger}
}

func (w *Writer) LatestPath() string {
	return filepath.Join(w.dir, latestFileName)
}

func (w *Writer) ArchivePath(date string) string {
	return filepath.Join(w.dir, fmt.Sprintf("trends-%s.json", date))
}

// Persist writes the latest record and today's archive record. Re-running
// the same day overwrites that day's archive rather than accumulating.
func (w *Writer) Persist(metrics Metrics) error {
	latest := w.LatestPath()
	if err := jsonfile.Write(latest, metrics); err != nil {
		return fmt.Errorf("persist latest trends: %w", err)
	}
	w.logger.Info().Str("path", latest).Msg("trends written")

	archive := w.ArchivePath(globaltime.Today())
	if err := jsonfile.Write(archive, metrics); err != nil {
		return fmt.Errorf("persist archived trends: %w", err)
	}
	w.logger.Info().Str("path", archive).Msg("archived trends written")
	return nil
}

// PersistSample writes preview metrics to a separate sample file so the
// dashboard can be exercised without real snapshot history.
func (w *Writer) PersistSample(metrics Metrics) (string, error) {
	path := filepath.Join(w.dir, sampleFileName)
	if err := jsonfile.Write(path, metrics); err != nil {
		return "", fmt.Errorf("persist sample trends: %w", err)
	}
	w.logger.Info().Str("path", path).Msg("sample trends written")
	return path, nil
}

// ReadLatest loads the latest metrics record back from disk.
func ReadLatest(dir string) (Metrics, error) {
	path := filepath.Join(dir, latestFileName)
	raw, err := os.ReadFile(path)
	if err != nil {
		return Metrics{}, fmt.Errorf("read %s: %w", path, err)
	}
	var metrics Metrics
	if err := json.Unmarshal(raw, &metrics); err != nil {
		return Metrics{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return metrics, nil
}
