package runstatus

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"tenguard.watch/trends/internal/globaltime"
)

func TestWriteAndReadStatus(t *testing.T) {
	globaltime.SetMockTime(time.Date(2025, 2, 1, 10, 30, 0, 0, time.UTC))
	t.Cleanup(globaltime.ResetTime)

	path := filepath.Join(t.TempDir(), "update_info.json")

	status := New(12, "news/2025-02-01.json.backup_20250201_103000")
	if err := Write(path, status); err != nil {
		t.Fatalf("Write: %v", err)
	}

	loaded, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if loaded.ArticlesCount != 12 {
		t.Fatalf("articles_count = %d, want 12", loaded.ArticlesCount)
	}
	if loaded.BackupFile == nil || *loaded.BackupFile != *status.BackupFile {
		t.Fatalf("backup_file mismatch: %v", loaded.BackupFile)
	}
	if !strings.HasPrefix(loaded.LastUpdate, "2025-02-01T10:30:00") {
		t.Fatalf("unexpected last_update %q", loaded.LastUpdate)
	}
}

func TestStatusNullBackup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "update_info.json")
	if err := Write(path, New(3, "")); err != nil {
		t.Fatalf("Write: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read status: %v", err)
	}
	if !strings.Contains(string(raw), `"backup_file": null`) {
		t.Fatalf("expected explicit null backup_file:\n%s", raw)
	}
}

func TestReadStatusMissing(t *testing.T) {
	if _, err := Read(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatalf("expected error for missing status file")
	}
}
