// Package runstatus records the outcome of the most recent update run for
// external status reporting.
package runstatus

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"tenguard.watch/trends/internal/globaltime"
	"tenguard.watch/trends/internal/jsonfile"
)

// Status is the run-status record consumed by the status-reporting
// collaborator. BackupFile is null when no backup was taken.
type Status struct {
	LastUpdate    string  `json:"last_update"`
	ArticlesCount int     `json:"articles_count"`
	BackupFile    *string `json:"backup_file"`
}

// New stamps a status record with the current time.
func New(articlesCount int, backupFile string) Status {
	status := Status{
		LastUpdate:    globaltime.Now().Format(time.RFC3339),
		ArticlesCount: articlesCount,
	}
	if backupFile != "" {
		status.BackupFile = &backupFile
	}
	return status
}

func Write(path string, status Status) error {
	if err := jsonfile.Write(path, status); err != nil {
		return fmt.Errorf("write run status: %w", err)
	}
	return nil
}

func Read(path string) (Status, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Status{}, fmt.Errorf("read %s: %w", path, err)
	}
	var status Status
	if err := json.Unmarshal(raw, &status); err != nil {
		return Status{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return status, nil
}
